package pngchunk

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/meigma/pngchunk/internal/sizing"
)

// Signature is the fixed 8-byte header that starts every PNG stream.
const Signature = "\x89PNG\r\n\x1a\n"

// PNG is an ordered list of chunks behind the PNG signature.
//
// A PNG owns its chunk list. It is not safe for concurrent mutation.
type PNG struct {
	chunks []Chunk
}

// Header returns a copy of the PNG signature bytes.
func Header() []byte {
	return []byte(Signature)
}

// New builds a PNG from chunks. The slice is copied.
// It fails with ErrEmptySequence when chunks is empty.
func New(chunks []Chunk) (*PNG, error) {
	if len(chunks) == 0 {
		return nil, ErrEmptySequence
	}
	return &PNG{chunks: slices.Clone(chunks)}, nil
}

// Parse decodes a PNG stream held in memory.
//
// The stream must start with Signature. Records are then read until fewer
// than RecordOverhead bytes remain; see WithStrictTrailer for what happens to
// such leftovers. Any malformed record aborts the whole parse.
func Parse(data []byte, opts ...ParseOption) (*PNG, error) {
	cfg := newParseConfig(opts)

	if len(data) < len(Signature) || string(data[:len(Signature)]) != Signature {
		n := min(len(data), len(Signature))
		return nil, fmt.Errorf("%w: got % x", ErrInvalidHeader, data[:n])
	}

	p := &PNG{}
	offset := len(Signature)
	for len(data)-offset >= RecordOverhead {
		length := binary.BigEndian.Uint32(data[offset:])
		if cfg.maxChunkSize > 0 && length > cfg.maxChunkSize {
			return nil, fmt.Errorf("%w: chunk at offset %d declares %d bytes, limit is %d",
				ErrSizeOverflow, offset, length, cfg.maxChunkSize)
		}
		end, ok := sizing.RecordEnd(offset, RecordOverhead, length, len(data))
		if !ok {
			return nil, fmt.Errorf("%w: chunk at offset %d declares %d bytes, %d remain",
				ErrTruncatedChunk, offset, length, len(data)-offset-RecordOverhead)
		}
		if cfg.maxChunks > 0 && len(p.chunks) == cfg.maxChunks {
			return nil, fmt.Errorf("%w: limit is %d", ErrTooManyChunks, cfg.maxChunks)
		}

		c, err := ParseChunk(data[offset:end])
		if err != nil {
			return nil, fmt.Errorf("chunk %d at offset %d: %w", len(p.chunks), offset, err)
		}
		cfg.logger.Debug("parsed chunk",
			slog.Int("index", len(p.chunks)),
			slog.Int("offset", offset),
			slog.String("tag", c.Tag().String()),
			slog.Uint64("length", uint64(c.Length())))

		p.chunks = append(p.chunks, c)
		offset = end
	}

	if rest := len(data) - offset; rest > 0 {
		if cfg.strictTrailer {
			return nil, fmt.Errorf("%w: %d bytes at offset %d", ErrTrailingData, rest, offset)
		}
		cfg.logger.Debug("ignoring trailing bytes",
			slog.Int("offset", offset),
			slog.Int("count", rest))
	}
	return p, nil
}

// Append adds c after the last chunk. Duplicate tags are allowed.
func (p *PNG) Append(c Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByTag returns the first chunk with the given tag.
// ok is false when no chunk matches.
func (p *PNG) ChunkByTag(tag ChunkTag) (c Chunk, ok bool) {
	i := p.indexOf(tag)
	if i < 0 {
		return Chunk{}, false
	}
	return p.chunks[i], true
}

// RemoveFirstByTag removes and returns the first chunk with the given tag.
// It fails with ErrNotFound when no chunk matches.
func (p *PNG) RemoveFirstByTag(tag ChunkTag) (Chunk, error) {
	i := p.indexOf(tag)
	if i < 0 {
		return Chunk{}, fmt.Errorf("%w: %s", ErrNotFound, tag)
	}
	c := p.chunks[i]
	p.chunks = slices.Delete(p.chunks, i, i+1)
	return c, nil
}

func (p *PNG) indexOf(tag ChunkTag) int {
	return slices.IndexFunc(p.chunks, func(c Chunk) bool {
		return c.tag == tag
	})
}

// Len returns the number of chunks.
func (p *PNG) Len() int {
	return len(p.chunks)
}

// Chunks returns the chunks in order. The returned slice is a copy.
func (p *PNG) Chunks() []Chunk {
	return slices.Clone(p.chunks)
}

// All returns an iterator over chunk positions and chunks, in order.
func (p *PNG) All() iter.Seq2[int, Chunk] {
	return slices.All(p.chunks)
}

// Size returns the length of the serialised stream in bytes.
func (p *PNG) Size() int {
	n := len(Signature)
	for _, c := range p.chunks {
		n += c.recordSize()
	}
	return n
}

// Bytes serialises the PNG: the signature followed by every chunk record.
func (p *PNG) Bytes() []byte {
	buf := make([]byte, 0, p.Size())
	buf = append(buf, Signature...)
	for _, c := range p.chunks {
		buf = c.AppendTo(buf)
	}
	return buf
}

// WriteTo writes the serialised PNG to w.
func (p *PNG) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Bytes())
	return int64(n), err
}

// String lists every chunk on its own line.
func (p *PNG) String() string {
	var sb strings.Builder
	for i, c := range p.chunks {
		fmt.Fprintf(&sb, "Chunk [%d]: %s\n", i, c)
	}
	return sb.String()
}

// Interface compliance.
var (
	_ io.WriterTo  = (*PNG)(nil)
	_ fmt.Stringer = (*PNG)(nil)
	_ fmt.Stringer = Chunk{}
	_ fmt.Stringer = ChunkTag{}
)
