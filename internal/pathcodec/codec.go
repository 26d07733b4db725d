// Package pathcodec serializes filesystem paths into a byte-exact,
// platform-portable form so they can be embedded in persisted cache
// manifests and reread later.
//
// Native path representations differ by platform family: on byte-native
// platforms a path is an arbitrary byte sequence that need not be valid
// text, while on wide-character platforms it is a sequence of 16-bit
// code units. Each family gets its own Codec; the host platform's codec
// is selected once at build time as Default. Callers depend only on the
// Codec interface and never branch on the platform themselves.
package pathcodec

import "errors"

// ErrOddLength is returned when a wide-character encoding has an odd
// byte length. It indicates corruption of a persisted manifest rather
// than an environment problem, so it is distinct from any I/O error.
var ErrOddLength = errors.New("odd-length wide path encoding")

// Codec encodes a filesystem path to bytes and decodes it back exactly.
//
// The contract is a strict round trip: Decode(Encode(p)) is byte-for-byte
// equal to p for every path the host filesystem can produce. On
// byte-native platforms that includes paths with no valid text
// interpretation; on wide-character platforms the unit of exactness is
// the 16-bit code unit sequence. A lossy codec would make the cache
// silently misattribute or fail to find entries.
type Codec interface {
	Encode(path string) []byte
	Decode(b []byte) (string, error)
}
