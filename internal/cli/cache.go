package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/goscript-cli/goscript/internal/config"
	"github.com/goscript-cli/goscript/internal/manifest"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and clear the script build cache",
}

var cacheLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cached scripts and their freshness",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlatform()
		if err != nil {
			return err
		}

		cacheRoot, err := p.resolver.CacheDir()
		if err != nil {
			return err
		}

		scriptCache := filepath.Join(cacheRoot, config.ScriptCacheDir)
		exists, err := p.fs.Exists(scriptCache)
		if err != nil {
			return err
		}
		if !exists {
			PrintInfo("No cached scripts.")
			return nil
		}

		entries, err := p.fs.ReadDir(scriptCache)
		if err != nil {
			return fmt.Errorf("failed to read cache %q: %w", scriptCache, err)
		}

		store := manifest.NewStore(p.fs, p.codec)
		listed := 0
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}

			m, err := store.Read(filepath.Join(scriptCache, entry.Name(), manifest.FileName))
			if err != nil {
				p.logger.WithField("entry", entry.Name()).WithError(err).Warn("unreadable cache manifest")
				continue
			}

			builtAt := time.UnixMilli(int64(m.BuiltAtMillis)).Format(time.RFC3339)
			PrintLabelValue(m.SourcePath, fmt.Sprintf("built %s (%s)", builtAt, freshness(p, m)))
			listed++
		}

		if listed == 0 {
			PrintInfo("No cached scripts.")
		}
		return nil
	},
}

// freshness classifies a cache entry against its source file. A source
// that cannot even be opened counts as stale.
func freshness(p *platform, m manifest.Manifest) string {
	src, err := os.Open(m.SourcePath)
	if err != nil {
		return "stale"
	}
	defer func() {
		_ = src.Close()
	}()

	if manifest.Stale(m, p.clk, src) {
		return "stale"
	}
	return "fresh"
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached build artifacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlatform()
		if err != nil {
			return err
		}

		cacheRoot, err := p.resolver.CacheDir()
		if err != nil {
			return err
		}

		for _, name := range []string{config.ScriptCacheDir, config.BinaryCacheDir} {
			dir := filepath.Join(cacheRoot, name)
			if err := p.fs.RemoveAll(dir); err != nil {
				return fmt.Errorf("failed to clear %q: %w", dir, err)
			}
		}

		PrintSuccess("Cache cleared")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheLsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
