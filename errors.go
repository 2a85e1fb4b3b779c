package pngchunk

import (
	"errors"

	"github.com/meigma/pngchunk/internal/codec"
)

// Sentinel errors for tag, chunk and container validation.
var (
	// ErrInvalidFormat is returned when a tag string is not exactly four ASCII letters.
	ErrInvalidFormat = errors.New("pngchunk: invalid chunk tag format")

	// ErrInvalidTag is returned when a parsed chunk carries a tag that fails IsValid.
	ErrInvalidTag = errors.New("pngchunk: invalid chunk tag")

	// ErrInvalidHeader is returned when a buffer is too short for, or does not
	// start with, the PNG signature.
	ErrInvalidHeader = errors.New("pngchunk: invalid PNG signature")

	// ErrTruncatedInput is returned when a single chunk record is shorter than
	// its declared length.
	ErrTruncatedInput = errors.New("pngchunk: truncated chunk record")

	// ErrTruncatedChunk is returned when a chunk inside a PNG stream declares
	// more bytes than the stream holds.
	ErrTruncatedChunk = errors.New("pngchunk: truncated chunk in stream")

	// ErrChecksumMismatch is returned when a record's stored CRC does not match
	// the CRC computed over its tag and payload.
	ErrChecksumMismatch = errors.New("pngchunk: checksum mismatch")

	// ErrEmptySequence is returned when a PNG is built from zero chunks.
	ErrEmptySequence = errors.New("pngchunk: empty chunk sequence")

	// ErrNotFound is returned when no chunk matches the requested tag.
	ErrNotFound = errors.New("pngchunk: chunk not found")

	// ErrSizeOverflow is returned when a length exceeds a supported or configured limit.
	ErrSizeOverflow = errors.New("pngchunk: size overflow")

	// ErrTooManyChunks is returned when a stream holds more chunks than allowed.
	ErrTooManyChunks = errors.New("pngchunk: too many chunks")

	// ErrTrailingData is returned in strict mode when bytes too short to form a
	// record follow the last chunk.
	ErrTrailingData = errors.New("pngchunk: trailing data after last chunk")
)

// Errors re-exported from internal/codec.
var (
	// ErrDecompression is returned when a message payload cannot be decompressed.
	ErrDecompression = codec.ErrDecompression

	// ErrUnknownCompression is returned for an unrecognised compression name or value.
	ErrUnknownCompression = codec.ErrUnknownCompression
)
