package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ryoma-abe/site-launcher/internal/transfer"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the registry as a JSON document",
	Long: `Write the registry as a versioned, pretty-printed JSON document:

  {"version": 1, "exportedAt": "...", "sites": [...]}

With no file argument the document goes to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, _, cleanup, err := openService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	sites := svc.Load(cmd.Context())
	doc, err := transfer.Export(sites, time.Now())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		_, err = os.Stdout.Write(doc)
		return err
	}
	if err := os.WriteFile(args[0], doc, 0o644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d sites to %s\n", len(sites), args[0])
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
