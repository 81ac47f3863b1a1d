package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ryoma-abe/site-launcher/internal/presentation"
)

var removeCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a site by its list position",
	Long: `Remove the site at the given zero-based index, as shown by
'site-launcher list'. An out-of-bounds index leaves the registry
unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return cmd.Help()
	}

	svc, _, cleanup, err := openService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	sites := svc.Load(cmd.Context())
	updated, err := svc.RemoveByIndex(cmd.Context(), index, sites)
	if err != nil {
		return err
	}

	formatter := presentation.NewFormatter(os.Stdout)
	return formatter.FormatSites(presentation.FromDomainSites(updated))
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
