//go:build windows

package migrate

// Windows installs never used the nested layout; migration is a no-op
// with an empty report.
const legacyNestingPossible = false
