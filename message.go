package pngchunk

import (
	"fmt"

	"github.com/meigma/pngchunk/internal/codec"
)

// Compression identifies the algorithm applied to a message payload.
type Compression = codec.Compression

// Re-export compression constants.
const (
	CompressionNone = codec.CompressionNone
	CompressionZlib = codec.CompressionZlib
	CompressionZstd = codec.CompressionZstd
)

// ParseCompression maps "none", "zlib" or "zstd" to a Compression.
var ParseCompression = codec.ParseCompression

// NewMessageChunk builds a chunk that carries msg under tag, compressed with c.
//
// Unlike NewChunk, the tag must pass IsValid so the result survives Parse.
func NewMessageChunk(tag ChunkTag, msg []byte, c Compression) (Chunk, error) {
	if !tag.IsValid() {
		return Chunk{}, fmt.Errorf("%w: %q", ErrInvalidTag, tag.String())
	}
	payload, err := codec.Compress(c, msg)
	if err != nil {
		return Chunk{}, err
	}
	if len(payload) > MaxChunkLength {
		return Chunk{}, fmt.Errorf("%w: %d byte message for %s", ErrSizeOverflow, len(payload), tag)
	}
	return newChunk(tag, payload), nil
}

// Message returns the payload decompressed with c.
// Results larger than maxSize fail with ErrSizeOverflow; 0 disables the limit.
func (c Chunk) Message(comp Compression, maxSize uint64) ([]byte, error) {
	msg, err := codec.Decompress(comp, c.data, maxSize, ErrSizeOverflow)
	if err != nil {
		return nil, fmt.Errorf("%s message: %w", c.tag, err)
	}
	return msg, nil
}
