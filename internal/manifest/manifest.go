// Package manifest persists cache entry metadata: which source path a
// cached build came from and when it was built.
//
// The source path is stored through the platform path codec so manifests
// survive paths with no valid text interpretation, and the build time
// shares the clock package's unit and epoch so freshness comparisons are
// direct.
//
// Layout: 8 bytes big-endian build time in milliseconds, then the
// encoded path to end of file.
package manifest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/goscript-cli/goscript/internal/clock"
	"github.com/goscript-cli/goscript/internal/fsops"
	"github.com/goscript-cli/goscript/internal/pathcodec"
)

// FileName is the manifest file inside a cache entry directory.
const FileName = "manifest"

const headerLen = 8

// ErrTruncated indicates a manifest too short to hold its header. Like a
// codec decode error, it means the persisted data is corrupt, not that
// the environment failed.
var ErrTruncated = errors.New("manifest truncated")

// Manifest records the provenance of one cache entry.
type Manifest struct {
	// SourcePath is the script the entry was built from.
	SourcePath string

	// BuiltAtMillis is the build time in milliseconds since the UNIX epoch.
	BuiltAtMillis uint64
}

// Encode serializes a manifest using the given path codec.
func Encode(m Manifest, codec pathcodec.Codec) []byte {
	encoded := codec.Encode(m.SourcePath)
	b := make([]byte, headerLen+len(encoded))
	binary.BigEndian.PutUint64(b, m.BuiltAtMillis)
	copy(b[headerLen:], encoded)
	return b
}

// Decode deserializes a manifest. Corruption (a truncated header or a
// malformed path encoding) is reported distinctly from I/O errors.
func Decode(b []byte, codec pathcodec.Codec) (Manifest, error) {
	if len(b) < headerLen {
		return Manifest{}, fmt.Errorf("%d bytes: %w", len(b), ErrTruncated)
	}
	path, err := codec.Decode(b[headerLen:])
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to decode source path: %w", err)
	}
	return Manifest{
		SourcePath:    path,
		BuiltAtMillis: binary.BigEndian.Uint64(b),
	}, nil
}

// Store reads and writes manifests inside cache entry directories.
type Store struct {
	fs    fsops.FS
	codec pathcodec.Codec
}

// NewStore creates a Store over the given filesystem and codec.
func NewStore(fs fsops.FS, codec pathcodec.Codec) *Store {
	return &Store{fs: fs, codec: codec}
}

// Write persists a manifest atomically at path.
func (s *Store) Write(path string, m Manifest) error {
	if err := s.fs.AtomicWrite(path, Encode(m, s.codec), 0644); err != nil {
		return fmt.Errorf("failed to write manifest %q: %w", path, err)
	}
	return nil
}

// Read loads the manifest at path.
func (s *Store) Read(path string) (Manifest, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}
	return Decode(data, s.codec)
}

// Stale reports whether the cache entry behind m is out of date with
// respect to its open source file. A zero mtime (missing or unreadable
// metadata) counts as stale: rebuilding needlessly is safe, serving a
// stale build is not.
func Stale(m Manifest, clk clock.Clock, src *os.File) bool {
	mtime := clk.FileModifiedMillis(src)
	if mtime == 0 {
		return true
	}
	return mtime > m.BuiltAtMillis
}
