package cli

import (
	"github.com/spf13/cobra"

	"github.com/goscript-cli/goscript/internal/migrate"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Fold a legacy cache layout into the current one",
	Long: `Move the contents of a pre-upgrade cache directory ($GOSCRIPT_HOME/.goscript)
up into $GOSCRIPT_HOME and remove the legacy directory once emptied.

Nothing is ever overwritten: a cache that already exists at the new location
is left in place on both sides and reported.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlatform()
		if err != nil {
			return err
		}

		mode := migrate.ForReal
		if migrateDryRun {
			mode = migrate.DryRun
		}

		report, runErr := p.migrator.Run(mode)
		if migrateDryRun && !report.Empty() {
			PrintSection("Dry Run")
		}
		for _, line := range report.Lines {
			PrintInfo(line)
		}
		if runErr != nil {
			return runErr
		}

		if report.Empty() {
			PrintInfo("Nothing to migrate.")
		} else if !migrateDryRun {
			PrintSuccess("Migration complete")
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "Report intended actions without touching the filesystem")
}
