//go:build debug

package templates

// debugAssertions gates test-harness hooks that must never be active in
// a release build.
const debugAssertions = true
