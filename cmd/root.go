package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ryoma-abe/site-launcher/internal/config"
	"github.com/ryoma-abe/site-launcher/internal/launcher"
	"github.com/ryoma-abe/site-launcher/internal/log"
	"github.com/ryoma-abe/site-launcher/internal/site"
	"github.com/ryoma-abe/site-launcher/internal/sitestore"
	"github.com/ryoma-abe/site-launcher/internal/store"
	"github.com/ryoma-abe/site-launcher/internal/ui/launcherview"
	"github.com/ryoma-abe/site-launcher/internal/ui/manageview"
	"github.com/ryoma-abe/site-launcher/internal/ui/styles"
	"github.com/ryoma-abe/site-launcher/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugMode bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "site-launcher",
	Short:   "Bind single-key shortcuts to sites and open them instantly",
	Long: `A terminal launcher for your sites: give each URL a single-character
shortcut key, then recall it with one keypress from the popup.`,
	Version: version,
	RunE:    runLauncher,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/site-launcher/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"write a debug log to the data directory")
	rootCmd.PersistentFlags().String("data-dir", "",
		"directory holding the site database")
	rootCmd.Flags().Bool("no-auto-refresh", false,
		"disable automatic refresh when the database changes")

	// Bind flags to viper
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("data_dir", defaults.DataDir)
	viper.SetDefault("browser", defaults.Browser)
	viper.SetDefault("auto_refresh", defaults.AutoRefresh)
	viper.SetDefault("auto_refresh_debounce", defaults.AutoRefreshDebounce)
	viper.SetDefault("ui.show_urls", defaults.UI.ShowURLs)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.success", defaults.Theme.Success)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(home, ".config", "site-launcher"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the default one
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "site-launcher", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)

	if err := applyTheme(cfg.Theme); err != nil {
		fmt.Fprintf(os.Stderr, "ignoring theme: %v\n", err)
	}
}

// applyTheme pushes configured color overrides into the UI styles.
func applyTheme(theme config.ThemeConfig) error {
	return styles.Apply(styles.ThemeConfig{
		Highlight: theme.Highlight,
		Subtle:    theme.Subtle,
		Error:     theme.Error,
		Success:   theme.Success,
	})
}

// openService connects the store, runs the one-time legacy migration,
// and returns the registry service. The returned cleanup closes the
// store.
func openService(cmd *cobra.Command) (*sitestore.Service, *store.SQLiteStore, func(), error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, nil, nil, fmt.Errorf("creating data directory: %w", err)
	}

	if debugMode || os.Getenv("SITE_LAUNCHER_DEBUG") != "" {
		if cleanup, err := log.Init(filepath.Join(cfg.DataDir, "debug.log")); err == nil {
			cobra.OnFinalize(cleanup)
		}
	} else {
		log.SetEnabled(false)
	}

	st, err := store.NewSQLiteStore(cfg.DBPath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening site database: %w", err)
	}

	svc := sitestore.NewService(st)
	if err := svc.MigrateLegacy(cmd.Context(), cfg.LegacySitesPath()); err != nil {
		log.ErrorErr(log.CatStore, "Legacy migration failed", err)
	}

	return svc, st, func() { _ = st.Close() }, nil
}

func runLauncher(cmd *cobra.Command, args []string) error {
	svc, st, cleanup, err := openService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	sites := svc.Load(cmd.Context())

	// Handle --no-auto-refresh flag (negated logic)
	if noAutoRefresh, _ := cmd.Flags().GetBool("no-auto-refresh"); noAutoRefresh {
		cfg.AutoRefresh = false
	}

	var changes <-chan struct{}
	var w *watcher.Watcher
	if cfg.AutoRefresh {
		w, err = watcher.New(watcher.Config{
			DBPath:      st.Path(),
			DebounceDur: cfg.AutoRefreshDebounce,
		})
		if err == nil {
			if ch, startErr := w.Start(); startErr == nil {
				changes = ch
				defer func() { _ = w.Stop() }()
			}
		}
	}

	open := launcher.New(cfg.Browser)
	load := func() []site.Site { return svc.Load(cmd.Context()) }

	model := launcherview.New(sites, open, load, changes).
		SetShowURLs(cfg.UI.ShowURLs)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if final, ok := finalModel.(launcherview.Model); ok && final.WantManage {
		manage := manageview.New(svc, final.Sites())
		if _, err := tea.NewProgram(manage, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("running program: %w", err)
		}
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
