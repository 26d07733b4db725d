package pathcodec

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// WideCodec is the codec for wide-character platforms, where a path is a
// sequence of 16-bit code units. Each unit is serialized as two bytes,
// low byte first, so every encoding has even length.
//
// The round-trip guarantee holds for any valid UTF-8 path string. A Go
// string carrying invalid UTF-8 cannot represent a native wide path in
// the first place; Encode maps its invalid bytes to U+FFFD.
type WideCodec struct{}

// Encode serializes the path's UTF-16 code units little-endian.
func (WideCodec) Encode(path string) []byte {
	units := utf16.Encode([]rune(path))
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	return b
}

// Decode consumes bytes two at a time to reconstruct the code unit
// sequence. An odd-length input is a decode error, not a unit to be
// silently dropped.
func (WideCodec) Decode(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("%d bytes: %w", len(b), ErrOddLength)
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return string(utf16.Decode(units)), nil
}
