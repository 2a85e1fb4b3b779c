package codec

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"

	"github.com/meigma/pngchunk/internal/sizing"
)

var (
	// zstd encoders are safe for concurrent EncodeAll calls.
	encoderOnce sync.Once
	encoder     *zstd.Encoder
	encoderErr  error

	decoders = NewDecompressPool(0)
)

func zstdEncoder() (*zstd.Encoder, error) {
	encoderOnce.Do(func() {
		encoder, encoderErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	})
	return encoder, encoderErr
}

// Compress returns data compressed with c.
// CompressionNone returns a copy of data.
func Compress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return bytes.Clone(data), nil
	case CompressionZlib:
		var buf bytes.Buffer
		zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
		if err != nil {
			return nil, err
		}
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressionZstd:
		enc, err := zstdEncoder()
		if err != nil {
			return nil, err
		}
		return enc.EncodeAll(data, nil), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}

// Decompress reverses Compress.
// Outputs larger than maxSize fail with overflowErr; 0 disables the limit.
func Decompress(c Compression, data []byte, maxSize uint64, overflowErr error) ([]byte, error) {
	switch c {
	case CompressionNone:
		if maxSize > 0 && uint64(len(data)) > maxSize {
			return nil, overflowErr
		}
		return bytes.Clone(data), nil
	case CompressionZlib:
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
		}
		defer zr.Close()
		return readAll(zr, maxSize, overflowErr)
	case CompressionZstd:
		dec, release, err := decoders.Get(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
		}
		defer release()
		return readAll(dec, maxSize, overflowErr)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}

func readAll(r io.Reader, maxSize uint64, overflowErr error) ([]byte, error) {
	out, err := sizing.ReadAllWithLimit(r, maxSize, overflowErr)
	if err == overflowErr { //nolint:errorlint // sentinel passed in by caller
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
	}
	return out, nil
}
