// Package templates locates, loads, and expands script templates.
//
// Templates are user-editable .go files under the config root's
// script-templates directory, with built-in fallbacks for the common
// cases. A template is plain source text with #{name} placeholders that
// Expand substitutes.
package templates

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goscript-cli/goscript/internal/config"
	"github.com/goscript-cli/goscript/internal/fsops"
)

// Ext is the file extension of on-disk templates.
const Ext = ".go"

// debugPathEnv redirects template resolution for test harnesses. It is
// honored only in debug builds.
const debugPathEnv = "GOSCRIPT_DEBUG_TEMPLATE_PATH"

var placeholderRE = regexp.MustCompile(`#\{([A-Za-z_][A-Za-z0-9_]*)}`)

// Expand substitutes #{name} placeholders in src from subs. A
// placeholder with no substitution is an error the user can act on: it
// names a hole the caller did not fill.
func Expand(src string, subs map[string]string) (string, error) {
	var expandErr error

	result := placeholderRE.ReplaceAllStringFunc(src, func(m string) string {
		name := m[2 : len(m)-1]
		value, ok := subs[name]
		if !ok {
			if expandErr == nil {
				expandErr = fmt.Errorf("substitution `%s` in template is unknown", name)
			}
			return m
		}
		return value
	})

	if expandErr != nil {
		return "", expandErr
	}
	return result, nil
}

// Store resolves and reads templates from the config root.
type Store struct {
	resolver *config.Resolver
	fs       fsops.FS
	env      config.EnvProvider
}

// NewStore creates a Store.
func NewStore(resolver *config.Resolver, fs fsops.FS, env config.EnvProvider) *Store {
	return &Store{resolver: resolver, fs: fs, env: env}
}

// Dir returns the path to the template directory. The directory is not
// created here; flows that are about to write create it lazily.
func (s *Store) Dir() (string, error) {
	if debugAssertions {
		if path, ok := s.env.LookupEnv(debugPathEnv); ok {
			return path, nil
		}
	}

	cfg, err := s.resolver.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, config.TemplateDirName), nil
}

// EnsureDir creates the template directory if it does not exist and
// returns its path.
func (s *Store) EnsureDir() (string, error) {
	dir, err := s.Dir()
	if err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create template directory: %w", err)
	}
	return dir, nil
}

// Load returns the contents of the named template. On-disk templates
// shadow the built-in ones; a built-in is the fallback when no file
// exists.
func (s *Store) Load(name string) (string, error) {
	dir, err := s.Dir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name+Ext)
	data, readErr := s.fs.ReadFile(path)
	if readErr == nil {
		return string(data), nil
	}

	if text, ok := builtinTemplate(name); ok {
		return text, nil
	}

	return "", fmt.Errorf("template file `%s%s` does not exist in %s", name, Ext, dir)
}

// List returns the names of the on-disk templates.
func (s *Store) List() ([]string, error) {
	dir, err := s.Dir()
	if err != nil {
		return nil, err
	}

	info, err := s.fs.Lstat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list template directory `%s`: it does not exist", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cannot list template directory `%s`: it is not a directory", dir)
	}

	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read template directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Ext))
	}
	return names, nil
}
