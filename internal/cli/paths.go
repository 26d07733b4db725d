package cli

import (
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the resolved cache and config directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlatform()
		if err != nil {
			return err
		}

		cache, err := p.resolver.CacheDir()
		if err != nil {
			return err
		}
		cfg, err := p.resolver.ConfigDir()
		if err != nil {
			return err
		}
		tmpl, err := p.templates.Dir()
		if err != nil {
			return err
		}

		PrintLabelValue("Cache", cache)
		PrintLabelValue("Config", cfg)
		PrintLabelValue("Templates", tmpl)
		return nil
	},
}
