package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ryoma-abe/site-launcher/internal/presentation"
	"github.com/ryoma-abe/site-launcher/internal/transfer"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the registry from a JSON document",
	Long: `Read a JSON file - either an export document or a bare array of
{name, url, key} records - sanitize and deduplicate it, and replace the
whole registry with the result. This is a full overwrite, not a merge.

Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	var (
		text []byte
		err  error
	)
	if args[0] == "-" {
		text, err = io.ReadAll(cmd.InOrStdin())
	} else {
		text, err = os.ReadFile(args[0]) //nolint:gosec // G304: user-supplied import path
	}
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	imported, err := transfer.Import(text)
	if err != nil {
		return err
	}

	svc, _, cleanup, err := openService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	updated, err := svc.Replace(cmd.Context(), imported)
	if err != nil {
		return err
	}

	formatter := presentation.NewFormatter(os.Stdout)
	return formatter.FormatSites(presentation.FromDomainSites(updated))
}

func init() {
	rootCmd.AddCommand(importCmd)
}
