// Package testutil builds PNG fixtures for tests.
//
// It works on raw bytes so that tests of the root package can use it without
// an import cycle.
package testutil

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/meigma/pngchunk/internal/crc"
)

// Signature is the PNG file signature.
const Signature = "\x89PNG\r\n\x1a\n"

// Record returns a well-formed chunk record for tag and data.
func Record(tag string, data []byte) []byte {
	return RecordWithCRC(tag, data, crc.Checksum([]byte(tag), data))
}

// RecordWithCRC returns a chunk record that stores crcValue as its checksum,
// whether or not it is correct.
func RecordWithCRC(tag string, data []byte, crcValue uint32) []byte {
	rec := make([]byte, 0, 12+len(data))
	rec = binary.BigEndian.AppendUint32(rec, uint32(len(data))) //nolint:gosec // test fixtures are small
	rec = append(rec, tag...)
	rec = append(rec, data...)
	return binary.BigEndian.AppendUint32(rec, crcValue)
}

// Stream concatenates the signature and records.
func Stream(records ...[]byte) []byte {
	buf := []byte(Signature)
	for _, r := range records {
		buf = append(buf, r...)
	}
	return buf
}

// TestingChunks returns three records with distinct tags and payloads.
func TestingChunks() [][]byte {
	return [][]byte{
		Record("FrSt", []byte("I am the first chunk")),
		Record("miDl", []byte("I am another chunk")),
		Record("LASt", []byte("I am the last chunk")),
	}
}

// Image returns a real w x h grayscale PNG produced by image/png.
func Image(t testing.TB, w, h int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y) % 256)}) //nolint:gosec // modulo 256
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode image: %v", err)
	}
	return buf.Bytes()
}

// WriteFile writes data to name inside a fresh temp directory and returns the path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
