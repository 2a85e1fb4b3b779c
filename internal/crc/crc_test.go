package crc

import (
	"bytes"
	"hash/crc32"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parts [][]byte
		want  uint32
	}{
		{"empty", nil, 0},
		{"IEND", [][]byte{[]byte("IEND")}, 0xAE426082},
		{"secret message", [][]byte{[]byte("RuSt"), []byte("This is where your secret message will be!")}, 2882656334},
		{"check string", [][]byte{[]byte("123456789")}, 0xCBF43926},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Checksum(tt.parts...))
		})
	}
}

func TestChecksum_MatchesStdlib(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42)) //nolint:gosec // deterministic test data
	for i := range 64 {
		buf := make([]byte, i*37)
		_, _ = rng.Read(buf)
		assert.Equal(t, crc32.ChecksumIEEE(buf), Checksum(buf), "length %d", len(buf))
	}
}

func TestChecksum_SplitInputIsEquivalent(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte("chunk"), 100)
	whole := Checksum(data)
	for split := 0; split <= len(data); split += 61 {
		assert.Equal(t, whole, Checksum(data[:split], data[split:]))
	}
}

func TestMakeTable_Deterministic(t *testing.T) {
	t.Parallel()

	fresh := MakeTable(Polynomial)
	require.Equal(t, *table, *fresh)

	std := crc32.MakeTable(crc32.IEEE)
	for i := range fresh {
		assert.Equal(t, std[i], fresh[i])
	}
}
