//go:build windows

package config

import (
	"fmt"
	"path/filepath"
)

// Windows keeps machine-local data and roaming configuration in separate
// known folders, so the cache and config roots genuinely differ here.
const (
	localAppDataEnv   = "LOCALAPPDATA"
	roamingAppDataEnv = "APPDATA"

	appDirName = "goscript"
)

// cacheDir resolves the cache root under LocalAppData. GOSCRIPT_HOME
// still wins when set so test harnesses and portable installs behave the
// same on every platform.
func (r *Resolver) cacheDir() (string, error) {
	if home, ok := r.env.LookupEnv(HomeEnv); ok {
		return home, nil
	}
	if base, ok := r.env.LookupEnv(localAppDataEnv); ok {
		return filepath.Join(base, appDirName), nil
	}
	return "", fmt.Errorf("%s is not defined: %w", localAppDataEnv, ErrNoHome)
}

// configDir resolves the config root under RoamingAppData.
func (r *Resolver) configDir() (string, error) {
	if home, ok := r.env.LookupEnv(HomeEnv); ok {
		return home, nil
	}
	if base, ok := r.env.LookupEnv(roamingAppDataEnv); ok {
		return filepath.Join(base, appDirName), nil
	}
	return "", fmt.Errorf("%s is not defined: %w", roamingAppDataEnv, ErrNoHome)
}
