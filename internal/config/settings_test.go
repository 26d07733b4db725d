package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSettings(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		s, err := LoadSettings(filepath.Join(t.TempDir(), SettingsFileName))
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}

		want := DefaultSettings()
		if s.LogLevel != want.LogLevel {
			t.Errorf("LogLevel = %q, want %q", s.LogLevel, want.LogLevel)
		}
		if s.FetchTimeout != want.FetchTimeout {
			t.Errorf("FetchTimeout = %v, want %v", s.FetchTimeout, want.FetchTimeout)
		}
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), SettingsFileName)
		content := `log_level = "debug"
log_file = "/tmp/goscript.log"
log_max_backups = 7
fetch_timeout = "5s"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		s, err := LoadSettings(path)
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}

		if s.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want %q", s.LogLevel, "debug")
		}
		if s.LogFile != "/tmp/goscript.log" {
			t.Errorf("LogFile = %q", s.LogFile)
		}
		if s.LogMaxBackups != 7 {
			t.Errorf("LogMaxBackups = %d, want 7", s.LogMaxBackups)
		}
		if s.FetchTimeout != 5*time.Second {
			t.Errorf("FetchTimeout = %v, want 5s", s.FetchTimeout)
		}
	})

	t.Run("unset keys keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), SettingsFileName)
		if err := os.WriteFile(path, []byte(`log_level = "warn"`), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		s, err := LoadSettings(path)
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}

		if s.LogLevel != "warn" {
			t.Errorf("LogLevel = %q, want %q", s.LogLevel, "warn")
		}
		if s.LogMaxSize != DefaultSettings().LogMaxSize {
			t.Errorf("LogMaxSize = %d, want default %d", s.LogMaxSize, DefaultSettings().LogMaxSize)
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), SettingsFileName)
		if err := os.WriteFile(path, []byte(`log_level = `), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		if _, err := LoadSettings(path); err == nil {
			t.Error("LoadSettings of a malformed file should fail")
		}
	})
}
