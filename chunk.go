package pngchunk

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/opencontainers/go-digest"

	"github.com/meigma/pngchunk/internal/crc"
	"github.com/meigma/pngchunk/internal/sizing"
)

const (
	lengthSize = 4
	tagSize    = 4
	crcSize    = 4

	// recordPrefix is the length field plus the tag.
	recordPrefix = lengthSize + tagSize

	// RecordOverhead is the size of a record with an empty payload.
	RecordOverhead = recordPrefix + crcSize
)

// MaxChunkLength is the largest payload a chunk may carry.
const MaxChunkLength = sizing.MaxChunkLength

// Chunk is a single PNG chunk: a tag, an owned payload and the CRC-32 over both.
//
// Chunk values are immutable. The CRC is computed when the chunk is built and
// always matches the tag and payload.
type Chunk struct {
	tag  ChunkTag
	data []byte
	crc  uint32
}

// NewChunk builds a chunk from tag and a copy of data.
//
// The tag is not validated; callers that accept tags from users should check
// IsValid first. Payloads longer than MaxChunkLength fail with ErrSizeOverflow.
func NewChunk(tag ChunkTag, data []byte) (Chunk, error) {
	if _, err := sizing.ToUint32(len(data), MaxChunkLength, ErrSizeOverflow); err != nil {
		return Chunk{}, fmt.Errorf("%w: %d byte payload for %s", err, len(data), tag)
	}
	return newChunk(tag, bytes.Clone(data)), nil
}

// newChunk takes ownership of data.
func newChunk(tag ChunkTag, data []byte) Chunk {
	if data == nil {
		data = []byte{}
	}
	return Chunk{
		tag:  tag,
		data: data,
		crc:  checksum(tag, data),
	}
}

// ParseChunk decodes one complete record: length, tag, payload and CRC.
//
// Bytes after the record are ignored. The stored CRC must match the CRC
// recomputed over the tag and payload.
func ParseChunk(record []byte) (Chunk, error) {
	if len(record) < recordPrefix {
		return Chunk{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncatedInput, len(record), recordPrefix)
	}
	length := binary.BigEndian.Uint32(record[:lengthSize])
	tag := ChunkTag(record[lengthSize:recordPrefix])

	end, ok := sizing.RecordEnd(0, RecordOverhead, length, len(record))
	if !ok {
		return Chunk{}, fmt.Errorf("%w: %s declares %d payload bytes, record has %d bytes",
			ErrTruncatedInput, tag, length, len(record))
	}
	if !tag.IsValid() {
		return Chunk{}, fmt.Errorf("%w: %q", ErrInvalidTag, tag.String())
	}
	if length > MaxChunkLength {
		return Chunk{}, fmt.Errorf("%w: %s declares %d payload bytes", ErrSizeOverflow, tag, length)
	}

	payloadEnd := end - crcSize
	data := bytes.Clone(record[recordPrefix:payloadEnd])
	stored := binary.BigEndian.Uint32(record[payloadEnd:end])

	c := newChunk(tag, data)
	if c.crc != stored {
		return Chunk{}, fmt.Errorf("%w: %s stored %08x, computed %08x", ErrChecksumMismatch, tag, stored, c.crc)
	}
	return c, nil
}

// Tag returns the chunk's type tag.
func (c Chunk) Tag() ChunkTag {
	return c.tag
}

// Length returns the payload length in bytes.
func (c Chunk) Length() uint32 {
	return uint32(len(c.data)) //nolint:gosec // bounded by MaxChunkLength at construction
}

// CRC returns the CRC-32 over the tag and payload.
func (c Chunk) CRC() uint32 {
	return c.crc
}

// Data returns a copy of the payload.
func (c Chunk) Data() []byte {
	return bytes.Clone(c.data)
}

// DataString returns the payload as a string without checking its encoding.
func (c Chunk) DataString() string {
	return string(c.data)
}

// Digest returns the sha256 digest of the payload.
func (c Chunk) Digest() digest.Digest {
	return digest.FromBytes(c.data)
}

// Equal reports whether c and other have the same tag and payload.
func (c Chunk) Equal(other Chunk) bool {
	return c.tag == other.tag && c.crc == other.crc && bytes.Equal(c.data, other.data)
}

// Bytes returns the wire record for the chunk.
func (c Chunk) Bytes() []byte {
	return c.AppendTo(make([]byte, 0, RecordOverhead+len(c.data)))
}

// AppendTo appends the wire record for the chunk to dst and returns the extended slice.
func (c Chunk) AppendTo(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, c.Length())
	dst = append(dst, c.tag[:]...)
	dst = append(dst, c.data...)
	return binary.BigEndian.AppendUint32(dst, c.crc)
}

// recordSize returns the number of bytes AppendTo writes.
func (c Chunk) recordSize() int {
	return RecordOverhead + len(c.data)
}

// String summarises the chunk without printing its payload.
func (c Chunk) String() string {
	return fmt.Sprintf("Chunk { length: %d, type: %s, data size: %d, crc: %d }",
		c.Length(), c.tag, len(c.data), c.crc)
}

func checksum(tag ChunkTag, data []byte) uint32 {
	return crc.Checksum(tag[:], data)
}
