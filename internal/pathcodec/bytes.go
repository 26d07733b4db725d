package pathcodec

// BytesCodec is the codec for byte-native platforms, where a path is
// already an arbitrary byte sequence. Encoding is the identity transform
// over the path's raw bytes; decoding reinterprets the bytes as a path
// without validation. Go strings carry arbitrary bytes, so non-UTF-8
// paths round-trip exactly.
type BytesCodec struct{}

// Encode returns the path's raw bytes.
func (BytesCodec) Encode(path string) []byte {
	return []byte(path)
}

// Decode reinterprets the bytes as a path. It never fails.
func (BytesCodec) Decode(b []byte) (string, error) {
	return string(b), nil
}
