package pngchunk

import "fmt"

// propertyBit is bit 5 of a tag byte, the ASCII lowercase bit.
const propertyBit = 0x20

// ChunkTag is the 4-byte ASCII type code of a chunk.
//
// Tags are compared byte-wise with ==. The case of each letter is a flag:
// see IsCritical, IsPublic, IsReservedBitValid and IsSafeToCopy.
type ChunkTag [4]byte

// Well-known critical and ancillary tags.
var (
	TagIHDR = ChunkTag{'I', 'H', 'D', 'R'}
	TagIDAT = ChunkTag{'I', 'D', 'A', 'T'}
	TagIEND = ChunkTag{'I', 'E', 'N', 'D'}
	TagTEXT = ChunkTag{'t', 'E', 'X', 't'}
)

// ChunkTagFromBytes returns the tag made of b without checking it.
// Use IsValid to decide whether the result is a legal PNG tag.
func ChunkTagFromBytes(b [4]byte) ChunkTag {
	return ChunkTag(b)
}

// ParseChunkTag returns the tag spelled by s.
// It fails with ErrInvalidFormat unless s is exactly four ASCII letters.
// The reserved bit is not checked; call IsValid for that.
func ParseChunkTag(s string) (ChunkTag, error) {
	if len(s) != 4 {
		return ChunkTag{}, fmt.Errorf("%w: %q has length %d, want 4", ErrInvalidFormat, s, len(s))
	}
	var t ChunkTag
	for i := range len(s) {
		if !isLetter(s[i]) {
			return ChunkTag{}, fmt.Errorf("%w: %q has non-letter byte 0x%02x at %d", ErrInvalidFormat, s, s[i], i)
		}
		t[i] = s[i]
	}
	return t, nil
}

// MustParseChunkTag is like ParseChunkTag but panics on error.
func MustParseChunkTag(s string) ChunkTag {
	t, err := ParseChunkTag(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Bytes returns a copy of the four tag bytes.
func (t ChunkTag) Bytes() [4]byte {
	return t
}

// IsValid reports whether every byte is an ASCII letter and the reserved bit is clear.
func (t ChunkTag) IsValid() bool {
	for _, b := range t {
		if !isLetter(b) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

// IsCritical reports whether the ancillary bit (first byte) is clear.
func (t ChunkTag) IsCritical() bool {
	return t[0]&propertyBit == 0
}

// IsPublic reports whether the private bit (second byte) is clear.
func (t ChunkTag) IsPublic() bool {
	return t[1]&propertyBit == 0
}

// IsReservedBitValid reports whether the reserved bit (third byte) is clear.
func (t ChunkTag) IsReservedBitValid() bool {
	return t[2]&propertyBit == 0
}

// IsSafeToCopy reports whether the safe-to-copy bit (fourth byte) is set.
func (t ChunkTag) IsSafeToCopy() bool {
	return t[3]&propertyBit != 0
}

// String returns the tag bytes as ASCII text.
func (t ChunkTag) String() string {
	return string(t[:])
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
