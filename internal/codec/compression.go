// Package codec compresses and decompresses message payloads.
package codec

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for message codecs.
var (
	// ErrDecompression is returned when a payload cannot be decompressed.
	ErrDecompression = errors.New("pngchunk: decompression failed")

	// ErrUnknownCompression is returned for an unrecognised compression name or value.
	ErrUnknownCompression = errors.New("pngchunk: unknown compression")
)

// Compression identifies the algorithm applied to a message payload.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZlib
	CompressionZstd
)

// String returns the human-readable name of the compression algorithm.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZlib:
		return "zlib"
	case CompressionZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// ParseCompression maps a name accepted on the command line to a Compression.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zlib", "deflate":
		return CompressionZlib, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}
