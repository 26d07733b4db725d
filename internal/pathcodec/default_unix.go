//go:build !windows

package pathcodec

// Default is the codec for the host platform's native path representation.
var Default Codec = BytesCodec{}
