package config

import "os"

// EnvProvider abstracts process environment lookups so resolution logic
// stays pure and tests can supply deterministic values without mutating
// the real environment.
type EnvProvider interface {
	// LookupEnv retrieves the value of the environment variable named by
	// key, reporting whether it is set.
	LookupEnv(key string) (string, bool)
}

// OSEnv implements EnvProvider against the real process environment.
type OSEnv struct{}

// LookupEnv reads from the process environment.
func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv implements EnvProvider over a fixed map for testing.
type MapEnv map[string]string

// LookupEnv reads from the map.
func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
