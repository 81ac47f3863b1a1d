package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryoma-abe/site-launcher/internal/pending"
)

var (
	suggestName string
	suggestURL  string
	suggestKey  string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Propose a site for later confirmation",
	Long: `Store a proposed site without registering it. The next run of
'site-launcher manage' consumes the proposal exactly once and opens its
form prefilled: a free shortcut key is picked automatically, and a URL
that is already registered switches the form into edit mode.

Meant for external triggers (browser context-menu scripts, shell
aliases) that want the user to confirm before anything is saved.

Examples:
  site-launcher suggest --url example.com
  site-launcher suggest -u example.com -n Example -k e`,
	RunE: runSuggest,
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if suggestURL == "" {
		return cmd.Help()
	}

	_, st, cleanup, err := openService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	proposal := pending.Proposal{
		Name:         suggestName,
		URL:          suggestURL,
		PreferredKey: suggestKey,
	}
	if err := pending.Put(cmd.Context(), st, proposal); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "proposal stored; run 'site-launcher manage' to confirm")
	return nil
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestName, "name", "n", "", "suggested site name")
	suggestCmd.Flags().StringVarP(&suggestURL, "url", "u", "", "suggested URL (required)")
	suggestCmd.Flags().StringVarP(&suggestKey, "key", "k", "", "preferred shortcut key")
	rootCmd.AddCommand(suggestCmd)
}
