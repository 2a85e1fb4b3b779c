// Package crc implements the CRC-32 used by PNG chunk records.
//
// The checksum is the ISO 3309 / ITU-T V.42 CRC: reflected polynomial
// 0xEDB88320, register seeded with 0xFFFFFFFF and inverted on output.
package crc

// Polynomial is the reflected CRC-32 polynomial.
const Polynomial = 0xEDB88320

// Table is a 256-entry lookup table for byte-at-a-time updates.
type Table [256]uint32

// table is built once during package initialisation and only read afterwards.
var table = MakeTable(Polynomial)

// MakeTable builds the lookup table for a reflected polynomial.
func MakeTable(poly uint32) *Table {
	t := new(Table)
	for n := range t {
		c := uint32(n) //nolint:gosec // n < 256
		for range 8 {
			if c&1 == 1 {
				c = poly ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		t[n] = c
	}
	return t
}

// Update feeds p into a running (non-inverted) register value.
func Update(crc uint32, t *Table, p []byte) uint32 {
	for _, b := range p {
		crc = t[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}

// Checksum returns the CRC-32 of the concatenation of parts.
func Checksum(parts ...[]byte) uint32 {
	c := ^uint32(0)
	for _, p := range parts {
		c = Update(c, table, p)
	}
	return ^c
}
