package pngchunk

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/pngchunk/internal/testutil"
)

func TestNewMessageChunk_Plain(t *testing.T) {
	t.Parallel()

	c, err := NewMessageChunk(MustParseChunkTag("RuSt"), []byte(secretMessage), CompressionNone)
	require.NoError(t, err)
	assert.True(t, c.Equal(testChunk(t)))

	msg, err := c.Message(CompressionNone, 0)
	require.NoError(t, err)
	assert.Equal(t, secretMessage, string(msg))
}

func TestNewMessageChunk_RejectsInvalidTag(t *testing.T) {
	t.Parallel()

	for _, tag := range []ChunkTag{MustParseChunkTag("Rust"), ChunkTagFromBytes([4]byte{'R', 'u', '1', 't'})} {
		_, err := NewMessageChunk(tag, []byte("x"), CompressionNone)
		require.ErrorIs(t, err, ErrInvalidTag, tag.String())
	}
}

func TestNewMessageChunk_UnknownCompression(t *testing.T) {
	t.Parallel()

	_, err := NewMessageChunk(MustParseChunkTag("ruSt"), []byte("x"), Compression(9))
	require.ErrorIs(t, err, ErrUnknownCompression)
}

func TestMessage_RoundTripThroughPNG(t *testing.T) {
	t.Parallel()

	msg := bytes.Repeat([]byte("hidden in plain sight. "), 40)
	tag := MustParseChunkTag("ruSt")

	for _, comp := range []Compression{CompressionNone, CompressionZlib, CompressionZstd} {
		t.Run(comp.String(), func(t *testing.T) {
			t.Parallel()

			img, err := Parse(testutil.Image(t, 8, 8))
			require.NoError(t, err)

			c, err := NewMessageChunk(tag, msg, comp)
			require.NoError(t, err)
			img.Append(c)

			reparsed, err := Parse(img.Bytes())
			require.NoError(t, err)

			got, ok := reparsed.ChunkByTag(tag)
			require.True(t, ok)
			decoded, err := got.Message(comp, 0)
			require.NoError(t, err)
			assert.Equal(t, msg, decoded)
		})
	}
}

func TestMessage_Limit(t *testing.T) {
	t.Parallel()

	c, err := NewMessageChunk(MustParseChunkTag("ruSt"), bytes.Repeat([]byte("a"), 100), CompressionZlib)
	require.NoError(t, err)

	_, err = c.Message(CompressionZlib, 99)
	require.ErrorIs(t, err, ErrSizeOverflow)
}

func TestMessage_WrongCompression(t *testing.T) {
	t.Parallel()

	c, err := NewMessageChunk(MustParseChunkTag("ruSt"), []byte("plain text"), CompressionNone)
	require.NoError(t, err)

	_, err = c.Message(CompressionZstd, 0)
	require.ErrorIs(t, err, ErrDecompression)
}

func TestParseCompression_Reexport(t *testing.T) {
	t.Parallel()

	c, err := ParseCompression("zstd")
	require.NoError(t, err)
	assert.Equal(t, CompressionZstd, c)
}
