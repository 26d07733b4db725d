package cli

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/goscript-cli/goscript/internal/clock"
	"github.com/goscript-cli/goscript/internal/config"
	"github.com/goscript-cli/goscript/internal/fsops"
	"github.com/goscript-cli/goscript/internal/logging"
	"github.com/goscript-cli/goscript/internal/migrate"
	"github.com/goscript-cli/goscript/internal/pathcodec"
	"github.com/goscript-cli/goscript/internal/templates"
)

// platform bundles real implementations of the platform-layer
// dependencies for command handlers.
type platform struct {
	env       config.EnvProvider
	fs        fsops.FS
	clk       clock.Clock
	codec     pathcodec.Codec
	resolver  *config.Resolver
	settings  *config.Settings
	logger    *logrus.Logger
	templates *templates.Store
	migrator  *migrate.Migrator
}

// newPlatform wires the real environment, filesystem, clock, and codec
// together. Settings are best-effort: when the config root cannot even
// be resolved the defaults apply, and the resolution error surfaces
// later from whichever command actually needs a directory.
func newPlatform() (*platform, error) {
	env := config.OSEnv{}
	fs := fsops.NewRealFS()
	resolver := config.NewResolver(env)

	settings := config.DefaultSettings()
	if cfgDir, err := resolver.ConfigDir(); err == nil {
		loaded, err := config.LoadSettings(filepath.Join(cfgDir, config.SettingsFileName))
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	logger, err := logging.Init(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	return &platform{
		env:       env,
		fs:        fs,
		clk:       &clock.RealClock{},
		codec:     pathcodec.Default,
		resolver:  resolver,
		settings:  settings,
		logger:    logger,
		templates: templates.NewStore(resolver, fs, env),
		migrator:  migrate.New(env, fs, logger),
	}, nil
}
