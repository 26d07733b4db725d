// Package clock provides the time source used for cache freshness checks.
//
// Wall-clock time and file modification time come from different OS
// facilities, but both are reported here as milliseconds since the UNIX
// epoch so they are directly comparable. Callers only use these values
// for coarse relative-freshness comparisons, so failures degrade to a
// zero sentinel (treated as "definitely stale") instead of an error.
package clock

import (
	"os"
	"time"
)

// Clock provides an abstraction for time operations to enable deterministic testing.
type Clock interface {
	// NowMillis returns the current wall-clock time in milliseconds since
	// the UNIX epoch. A pre-epoch system clock yields 0.
	NowMillis() uint64

	// FileModifiedMillis returns the last-modification time of an open file
	// in the same unit and epoch as NowMillis. A failed metadata query or
	// pre-epoch mtime yields 0.
	FileModifiedMillis(f *os.File) uint64
}

// RealClock implements Clock using the system clock and file metadata.
type RealClock struct{}

// NowMillis returns the current system time in milliseconds since the UNIX epoch.
func (c *RealClock) NowMillis() uint64 {
	ms := time.Now().UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}

// FileModifiedMillis returns the file's mtime in milliseconds since the UNIX epoch.
func (c *RealClock) FileModifiedMillis(f *os.File) uint64 {
	info, err := f.Stat()
	if err != nil {
		return 0
	}
	ms := info.ModTime().UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}

// FakeClock implements Clock with fixed values for testing.
type FakeClock struct {
	current uint64
	mtimes  map[string]uint64
}

// NewFakeClock creates a new FakeClock reporting the given current time.
func NewFakeClock(millis uint64) *FakeClock {
	return &FakeClock{
		current: millis,
		mtimes:  make(map[string]uint64),
	}
}

// NowMillis returns the fixed current time.
func (c *FakeClock) NowMillis() uint64 {
	return c.current
}

// FileModifiedMillis returns the mtime registered for the file's name, or 0.
func (c *FakeClock) FileModifiedMillis(f *os.File) uint64 {
	return c.mtimes[f.Name()]
}

// Set updates the fixed current time.
func (c *FakeClock) Set(millis uint64) {
	c.current = millis
}

// Advance moves the fixed current time forward by the given duration.
func (c *FakeClock) Advance(d time.Duration) {
	c.current += uint64(d.Milliseconds())
}

// SetFileModified registers the mtime reported for a file path.
func (c *FakeClock) SetFileModified(path string, millis uint64) {
	c.mtimes[path] = millis
}
