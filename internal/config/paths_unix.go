//go:build !windows

package config

import "path/filepath"

// userHomeEnv is the general user-home variable consulted when the
// override is unset.
const userHomeEnv = "HOME"

// cacheDir resolves the cache root.
//
// $GOSCRIPT_HOME wins when set, except that a legacy nested layout
// ($GOSCRIPT_HOME/.goscript still holding script-cache and/or
// binary-cache) is preferred until it has been migrated — old
// installations keep working across the upgrade. Without the override,
// the cache lives at $HOME/.goscript.
func (r *Resolver) cacheDir() (string, error) {
	if home, ok := r.env.LookupEnv(HomeEnv); ok {
		legacy := filepath.Join(home, LegacyDirName)
		if dirExists(legacy) {
			if dirExists(filepath.Join(legacy, ScriptCacheDir)) || dirExists(filepath.Join(legacy, BinaryCacheDir)) {
				return legacy, nil
			}
		}
		return home, nil
	}

	if home, ok := r.env.LookupEnv(userHomeEnv); ok {
		return filepath.Join(home, LegacyDirName), nil
	}

	return "", ErrNoHome
}

// configDir resolves the config root.
//
// The policy currently lands on the same directory as cacheDir, but the
// two are resolved independently on purpose: callers must not assume the
// coincidence is permanent, and keeping separate code paths lets the
// policies diverge without breaking anyone.
func (r *Resolver) configDir() (string, error) {
	if home, ok := r.env.LookupEnv(HomeEnv); ok {
		legacy := filepath.Join(home, LegacyDirName)
		if dirExists(legacy) {
			if dirExists(filepath.Join(legacy, ScriptCacheDir)) || dirExists(filepath.Join(legacy, BinaryCacheDir)) {
				return legacy, nil
			}
		}
		return home, nil
	}

	if home, ok := r.env.LookupEnv(userHomeEnv); ok {
		return filepath.Join(home, LegacyDirName), nil
	}

	return "", ErrNoHome
}
