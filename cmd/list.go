package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ryoma-abe/site-launcher/internal/presentation"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the registered sites as JSON",
	Long: `Print the registry in display order as JSON, one entry per site with
its index, shortcut key, name and URL.

Examples:
  site-launcher list
  site-launcher list | jq '.[].key'`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	svc, _, cleanup, err := openService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	sites := svc.Load(cmd.Context())

	formatter := presentation.NewFormatter(os.Stdout)
	return formatter.FormatSites(presentation.FromDomainSites(sites))
}

func init() {
	rootCmd.AddCommand(listCmd)
}
