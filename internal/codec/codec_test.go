package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTooBig = errors.New("too big")

func TestCompression_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "zlib", CompressionZlib.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "unknown", Compression(99).String())
}

func TestParseCompression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Compression
	}{
		{"", CompressionNone},
		{"none", CompressionNone},
		{"zlib", CompressionZlib},
		{"Deflate", CompressionZlib},
		{" ZSTD ", CompressionZstd},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCompression(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCompression("lz4")
	require.ErrorIs(t, err, ErrUnknownCompression)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := map[string][]byte{
		"empty":      {},
		"short":      []byte("hello"),
		"repetitive": bytes.Repeat([]byte("secret message "), 500),
	}
	for _, c := range []Compression{CompressionNone, CompressionZlib, CompressionZstd} {
		for name, data := range inputs {
			t.Run(c.String()+"/"+name, func(t *testing.T) {
				t.Parallel()
				packed, err := Compress(c, data)
				require.NoError(t, err)

				got, err := Decompress(c, packed, 0, errTooBig)
				require.NoError(t, err)
				assert.Equal(t, len(data), len(got))
				assert.True(t, bytes.Equal(data, got))
			})
		}
	}
}

func TestCompress_ShrinksRepetitiveInput(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte("abcdefgh"), 1000)
	for _, c := range []Compression{CompressionZlib, CompressionZstd} {
		packed, err := Compress(c, data)
		require.NoError(t, err)
		assert.Less(t, len(packed), len(data)/10, c.String())
	}
}

func TestDecompress_Limit(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte("x"), 1024)
	for _, c := range []Compression{CompressionNone, CompressionZlib, CompressionZstd} {
		packed, err := Compress(c, data)
		require.NoError(t, err)

		_, err = Decompress(c, packed, 1023, errTooBig)
		require.ErrorIs(t, err, errTooBig, c.String())

		got, err := Decompress(c, packed, 1024, errTooBig)
		require.NoError(t, err, c.String())
		assert.Len(t, got, 1024)
	}
}

func TestDecompress_Garbage(t *testing.T) {
	t.Parallel()

	garbage := []byte("definitely not compressed")
	for _, c := range []Compression{CompressionZlib, CompressionZstd} {
		_, err := Decompress(c, garbage, 0, errTooBig)
		require.ErrorIs(t, err, ErrDecompression, c.String())
	}
}

func TestUnknownCompression(t *testing.T) {
	t.Parallel()

	_, err := Compress(Compression(7), []byte("x"))
	require.ErrorIs(t, err, ErrUnknownCompression)

	_, err = Decompress(Compression(7), []byte("x"), 0, errTooBig)
	require.ErrorIs(t, err, ErrUnknownCompression)
}

func TestDecompressPool_Reuse(t *testing.T) {
	t.Parallel()

	pool := NewDecompressPool(1 << 20)
	for i := range 5 {
		msg := bytes.Repeat([]byte{byte('a' + i)}, 100+i)
		packed, err := Compress(CompressionZstd, msg)
		require.NoError(t, err)

		dec, release, err := pool.Get(bytes.NewReader(packed))
		require.NoError(t, err)
		var out bytes.Buffer
		_, err = out.ReadFrom(dec)
		release()
		require.NoError(t, err)
		assert.Equal(t, msg, out.Bytes())
	}
}

func TestDecompressPool_Nil(t *testing.T) {
	t.Parallel()

	packed, err := Compress(CompressionZstd, []byte("nil pool"))
	require.NoError(t, err)

	var pool *DecompressPool
	dec, release, err := pool.Get(bytes.NewReader(packed))
	require.NoError(t, err)
	defer release()

	var out bytes.Buffer
	_, err = out.ReadFrom(dec)
	require.NoError(t, err)
	assert.Equal(t, "nil pool", out.String())
}
