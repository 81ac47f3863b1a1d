// Package launcherview is the popup surface: every registered site on
// one screen, one keypress to open it.
package launcherview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryoma-abe/site-launcher/internal/keys"
	"github.com/ryoma-abe/site-launcher/internal/log"
	"github.com/ryoma-abe/site-launcher/internal/site"
	"github.com/ryoma-abe/site-launcher/internal/ui/styles"
)

// Opener opens a site URL in the browser.
type Opener interface {
	Open(url string) error
}

// changedMsg signals that another surface saved the registry.
type changedMsg struct{}

// Model holds the launcher popup state.
//
// The model owns its own snapshot of the registry, loaded once at
// start-up and re-loaded when the change channel fires. It never
// mutates the registry.
type Model struct {
	sites    []site.Site
	selected int
	keymap   keys.LauncherKeyMap
	opener   Opener
	load     func() []site.Site
	changes  <-chan struct{}
	showURLs bool
	errMsg   string

	width  int
	height int

	// WantManage is set when the user asked to switch to the options
	// surface; the caller checks it after the program exits.
	WantManage bool
}

// New creates the launcher popup over the given snapshot.
// load is called to refresh the snapshot when changes fires; either may
// be nil to disable auto-refresh.
func New(sites []site.Site, opener Opener, load func() []site.Site, changes <-chan struct{}) Model {
	return Model{
		sites:    sites,
		keymap:   keys.DefaultLauncherKeyMap(),
		opener:   opener,
		load:     load,
		changes:  changes,
		showURLs: true,
	}
}

// SetShowURLs toggles URL rendering next to site names.
func (m Model) SetShowURLs(show bool) Model {
	m.showURLs = show
	return m
}

// Sites returns the current snapshot, for tests and the manage handoff.
func (m Model) Sites() []site.Site {
	return m.sites
}

// Init starts waiting for registry changes.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

// Update handles messages. It returns tea.Model because this model
// runs as the program root.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case changedMsg:
		if m.load != nil {
			m.sites = m.load()
			if m.selected >= len(m.sites) {
				m.selected = len(m.sites) - 1
			}
			log.Debug(log.CatUI, "Launcher refreshed", "count", len(m.sites))
		}
		return m, m.waitForChange()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Manage):
			m.WantManage = true
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Up):
			if m.selected > 0 {
				m.selected--
			}

		case key.Matches(msg, m.keymap.Down):
			if m.selected < len(m.sites)-1 {
				m.selected++
			}

		case key.Matches(msg, m.keymap.Open):
			return m.open(m.selected)

		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			for i, s := range m.sites {
				if site.KeysEqual(s.Key, string(msg.Runes[0])) {
					return m.open(i)
				}
			}
		}
	}
	return m, nil
}

// open launches the site at index and quits on success.
func (m Model) open(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.sites) {
		return m, nil
	}
	s := m.sites[index]
	if err := m.opener.Open(s.URL); err != nil {
		m.errMsg = fmt.Sprintf("could not open %s", s.Name)
		return m, nil
	}
	return m, tea.Quit
}

// View renders the site list with shortcut key badges.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Sites"))
	b.WriteString("\n\n")

	if len(m.sites) == 0 {
		b.WriteString(styles.HelpStyle.Render("no sites registered"))
		b.WriteString("\n")
	}

	for i, s := range m.sites {
		indicator := " "
		if i == m.selected {
			indicator = styles.SelectionIndicatorStyle.Render(">")
		}
		line := fmt.Sprintf("%s %s %s",
			indicator,
			styles.KeyBadgeStyle.Render("["+s.Key+"]"),
			styles.NameStyle.Render(s.Name),
		)
		if m.showURLs {
			line += " " + styles.URLStyle.Render(s.URL)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("press a key to open · tab manage · esc quit"))

	box := styles.BoxStyle.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
