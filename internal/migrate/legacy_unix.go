//go:build !windows

package migrate

// The nested legacy layout only ever existed where GOSCRIPT_HOME drove
// cache placement.
const legacyNestingPossible = true
