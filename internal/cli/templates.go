package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/goscript-cli/goscript/internal/templates"
)

var templatesShowPath bool

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage goscript expression templates",
}

var templatesDumpCmd = &cobra.Command{
	Use:   "dump <template>",
	Short: "Output the contents of a template to standard output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlatform()
		if err != nil {
			return err
		}

		text, err := p.templates.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlatform()
		if err != nil {
			return err
		}

		var names []string
		dir, err := p.templates.Dir()
		if err != nil {
			return err
		}
		if exists, err := p.fs.Exists(dir); err != nil {
			return err
		} else if exists {
			names, err = p.templates.List()
			if err != nil {
				return err
			}
		}

		// Built-ins are always available even with an empty directory.
		seen := make(map[string]bool, len(names))
		for _, name := range names {
			seen[name] = true
		}
		for _, name := range templates.BuiltinNames() {
			if !seen[name] {
				names = append(names, name)
			}
		}
		sort.Strings(names)

		for _, name := range names {
			PrintInfo(name)
		}
		return nil
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the template folder location, creating it if needed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlatform()
		if err != nil {
			return err
		}

		if templatesShowPath {
			dir, err := p.templates.Dir()
			if err != nil {
				return err
			}
			PrintInfo(dir)
			return nil
		}

		// The directory is created lazily, here, because this flow is the
		// one that hands it to the user to put files in.
		dir, err := p.templates.EnsureDir()
		if err != nil {
			return err
		}
		PrintLabelValue("Templates", dir)
		return nil
	},
}

func init() {
	templatesShowCmd.Flags().BoolVar(&templatesShowPath, "path", false, "Print the path without creating the directory")

	templatesCmd.AddCommand(templatesDumpCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)
}
