package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goscript-cli/goscript/internal/web"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Download a script source and print it to standard output",
	Long: `Download the source code behind a URL. GitHub and Gist page URLs are
resolved to their raw-content form first, so the browser URL works as-is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlatform()
		if err != nil {
			return err
		}

		fetcher := web.NewFetcher(p.settings.FetchTimeout)
		source, err := fetcher.DownloadScript(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Print(source)
		return nil
	},
}
