package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goscript-cli/goscript/internal/migrate"
)

// rootCmd is the root command for goscript.
var rootCmd = &cobra.Command{
	Use:     "goscript",
	Version: "dev",
	Short:   "Cached script runner",
	Long: `goscript runs Go scripts and expressions through a persistent build cache.

Compiled artifacts live under a cache root resolved from GOSCRIPT_HOME (or HOME),
and user-editable templates live under the config root alongside it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return housekeep(cmd)
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// housekeep folds any legacy cache layout into the current one before a
// command runs. Migration is auxiliary: a failure is reported but never
// blocks the command itself.
func housekeep(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "migrate", "version", "help":
		// migrate runs explicitly with its own flags; the others touch no
		// directories at all.
		return nil
	}

	p, err := newPlatform()
	if err != nil {
		return err
	}

	report, err := p.migrator.Run(migrate.ForReal)
	for _, line := range report.Lines {
		PrintInfo(line)
	}
	if err != nil {
		p.logger.WithField("action", "migrate").WithError(err).Warn("cache migration failed")
		PrintWarning(fmt.Sprintf("Cache migration failed: %v", err))
	}
	return nil
}

func init() {
	// CLI & tooling commands
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the goscript version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(fetchCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
