package config

import "errors"

// ErrNoHome indicates that no usable home environment variable was
// available at resolution time. This is a configuration problem the user
// must fix, not an I/O failure, and it is fatal to the tool: nothing
// downstream can proceed without a cache/config location.
var ErrNoHome = errors.New("neither GOSCRIPT_HOME nor HOME is defined")
