package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ryoma-abe/site-launcher/internal/presentation"
	"github.com/ryoma-abe/site-launcher/internal/registry"
	"github.com/ryoma-abe/site-launcher/internal/site"
)

var (
	addName string
	addURL  string
	addKey  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a site with a shortcut key",
	Long: `Register a site. A scheme-less URL gets https:// prepended; the key is
upper-cased and must be a single character in A-Z0-9 not already in use.
When --key is omitted, the first free key in scan order is assigned.

Examples:
  site-launcher add --name Google --url google.com --key g
  site-launcher add -n "Hacker News" -u news.ycombinator.com`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addName == "" || addURL == "" {
		return cmd.Help()
	}

	svc, _, cleanup, err := openService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	sites := svc.Load(cmd.Context())

	key := addKey
	if key == "" {
		key, err = registry.GenerateKey(sites, "")
		if err != nil {
			return err
		}
	}

	updated, err := svc.Add(cmd.Context(), site.Site{Name: addName, URL: addURL, Key: key}, sites)
	if err != nil {
		return err
	}

	formatter := presentation.NewFormatter(os.Stdout)
	return formatter.FormatSites(presentation.FromDomainSites(updated))
}

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "site name (required)")
	addCmd.Flags().StringVarP(&addURL, "url", "u", "", "site URL (required)")
	addCmd.Flags().StringVarP(&addKey, "key", "k", "", "shortcut key (default: first free key)")
	rootCmd.AddCommand(addCmd)
}
