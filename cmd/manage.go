package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ryoma-abe/site-launcher/internal/pending"
	"github.com/ryoma-abe/site-launcher/internal/ui/manageview"
)

var manageCmd = &cobra.Command{
	Use:   "manage",
	Short: "Add, edit and delete sites interactively",
	Long: `Open the options surface: an editable list of registered sites.

If an external trigger left a proposed site behind (see 'site-launcher
suggest'), the add/edit form opens prefilled with it. A proposal whose
URL is already registered edits the existing entry instead of adding a
duplicate.`,
	RunE: runManage,
}

func runManage(cmd *cobra.Command, args []string) error {
	svc, st, cleanup, err := openService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	sites := svc.Load(cmd.Context())
	model := manageview.New(svc, sites)

	// Consume a proposed site exactly once, if one is waiting.
	if proposal, ok := pending.Take(cmd.Context(), st); ok {
		model = model.WithPrefill(pending.Resolve(proposal, sites))
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(manageCmd)
}
