package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// SettingsFileName is the optional settings file under the config root.
const SettingsFileName = "config.toml"

// Settings holds tool-level options. They tune logging and the fetch
// helper only — directory resolution is driven purely by the environment
// and is never influenced by this file.
type Settings struct {
	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// LogFile, when set, receives the JSON diagnostic log with rotation.
	// When empty the diagnostic log goes to stderr as text.
	LogFile string `mapstructure:"log_file"`

	// LogMaxSize is the rotation threshold in megabytes.
	LogMaxSize int `mapstructure:"log_max_size"`

	// LogMaxBackups is how many rotated files to keep.
	LogMaxBackups int `mapstructure:"log_max_backups"`

	// LogCompress enables compression of rotated files.
	LogCompress bool `mapstructure:"log_compress"`

	// FetchTimeout bounds remote script downloads.
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel:      "info",
		LogMaxSize:    10,
		LogMaxBackups: 3,
		LogCompress:   true,
		FetchTimeout:  30 * time.Second,
	}
}

// LoadSettings reads the settings file at path. A missing file is not an
// error: defaults apply.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s, viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc())); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return &s, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_max_size", d.LogMaxSize)
	v.SetDefault("log_max_backups", d.LogMaxBackups)
	v.SetDefault("log_compress", d.LogCompress)
	v.SetDefault("fetch_timeout", d.FetchTimeout.String())
}
