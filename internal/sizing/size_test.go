package sizing

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("overflow")

func TestToUint32(t *testing.T) {
	t.Parallel()

	got, err := ToUint32(42, MaxChunkLength, errTest)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), got)

	_, err = ToUint32(-1, MaxChunkLength, errTest)
	require.ErrorIs(t, err, errTest)

	_, err = ToUint32(11, 10, errTest)
	require.ErrorIs(t, err, errTest)

	got, err = ToUint32(10, 10, errTest)
	require.NoError(t, err)
	assert.Equal(t, uint32(10), got)
}

func TestRecordEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		offset   int
		overhead int
		length   uint32
		size     int
		want     int
		ok       bool
	}{
		{"exact fit", 8, 12, 0, 20, 20, true},
		{"with payload", 8, 12, 5, 30, 25, true},
		{"one byte short", 8, 12, 5, 24, 0, false},
		{"huge length", 8, 12, math.MaxUint32, 100, 0, false},
		{"offset past size", 50, 12, 0, 40, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := RecordEnd(tt.offset, tt.overhead, tt.length, tt.size)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadAllWithLimit(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte("x"), 100)

	got, err := ReadAllWithLimit(bytes.NewReader(data), 100, errTest)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	_, err = ReadAllWithLimit(bytes.NewReader(data), 99, errTest)
	require.ErrorIs(t, err, errTest)

	got, err = ReadAllWithLimit(bytes.NewReader(data), 0, errTest)
	require.NoError(t, err)
	assert.Len(t, got, 100)
}
