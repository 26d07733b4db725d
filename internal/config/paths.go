// Package config manages goscript configuration and filesystem paths.
//
// The cache root holds compiled-script caches (script-cache/, binary-cache/)
// and the config root holds user-editable data (script-templates/). Both are
// resolved from environment variables with a legacy-layout fallback; neither
// is created eagerly — whichever component first writes into them creates
// them. Optional tool settings load from a config file under the config root.
package config

import "os"

// Environment variables and well-known directory names.
const (
	// HomeEnv overrides where goscript keeps all of its data.
	HomeEnv = "GOSCRIPT_HOME"

	// LegacyDirName is the subdirectory where versions before the layout
	// change nested the cache under the override root.
	LegacyDirName = ".goscript"

	// ScriptCacheDir and BinaryCacheDir are the cache subdirectories
	// consumed by the build-cache subsystem.
	ScriptCacheDir = "script-cache"
	BinaryCacheDir = "binary-cache"

	// TemplateDirName is the config subdirectory consumed by the template
	// engine.
	TemplateDirName = "script-templates"
)

// Kind selects which directory to resolve.
type Kind int

const (
	// Cache is the directory for user- and machine-specific data which may
	// or may not persist across sessions.
	Cache Kind = iota

	// Config is the directory for user-editable configuration data.
	Config
)

// Resolver computes the cache and config directories for the current
// user and machine. Resolution consults only the environment; a missing
// directory on disk is not an error, since writers create directories
// lazily.
type Resolver struct {
	env EnvProvider
}

// NewResolver creates a Resolver over the given environment.
func NewResolver(env EnvProvider) *Resolver {
	return &Resolver{env: env}
}

// Resolve returns the absolute directory for the given kind.
func (r *Resolver) Resolve(kind Kind) (string, error) {
	switch kind {
	case Config:
		return r.configDir()
	default:
		return r.cacheDir()
	}
}

// CacheDir returns the directory under which compiled-script and
// dependency-resolution caches are stored.
func (r *Resolver) CacheDir() (string, error) {
	return r.cacheDir()
}

// ConfigDir returns the directory under which user-editable
// configuration such as templates is stored.
func (r *Resolver) ConfigDir() (string, error) {
	return r.configDir()
}

// dirExists reports whether a path exists, regardless of type.
func dirExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
