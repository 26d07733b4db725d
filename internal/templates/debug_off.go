//go:build !debug

package templates

const debugAssertions = false
