// Package manageview is the options surface: an editable list of
// registered sites with an add/edit form.
package manageview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryoma-abe/site-launcher/internal/keys"
	"github.com/ryoma-abe/site-launcher/internal/pending"
	"github.com/ryoma-abe/site-launcher/internal/registry"
	"github.com/ryoma-abe/site-launcher/internal/site"
	"github.com/ryoma-abe/site-launcher/internal/sitestore"
	"github.com/ryoma-abe/site-launcher/internal/ui/styles"
)

// uiMode selects between the list and the form.
type uiMode int

const (
	modeList uiMode = iota
	modeForm
)

// Model holds the options surface state.
//
// The model owns its own registry snapshot, loaded once at start-up.
// Every mutation goes through the sitestore service against that
// snapshot and replaces it with the returned sequence.
type Model struct {
	svc      *sitestore.Service
	sites    []site.Site
	selected int
	keymap   keys.ManageKeyMap
	formKeys keys.FormKeyMap

	mode uiMode
	form formState

	status    string
	statusErr bool

	width  int
	height int
}

// New creates the options surface over the given snapshot.
func New(svc *sitestore.Service, sites []site.Site) Model {
	return Model{
		svc:      svc,
		sites:    sites,
		keymap:   keys.DefaultManageKeyMap(),
		formKeys: keys.DefaultFormKeyMap(),
	}
}

// WithPrefill opens the form immediately, seeded from a resolved
// proposed site. An EditIndex >= 0 switches the form into edit mode.
func (m Model) WithPrefill(pre pending.Prefill) Model {
	m.mode = modeForm
	m.form = newFormState(pre.Name, pre.URL, pre.Key, pre.EditIndex, pre.EditIndex < 0)
	if pre.EditIndex >= 0 {
		m.status = "this URL is already registered; editing the existing entry"
	}
	return m
}

// Sites returns the current snapshot, for tests.
func (m Model) Sites() []site.Site {
	return m.sites
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.mode == modeForm {
		return m.form.focusCmd()
	}
	return nil
}

// Update handles messages. It returns tea.Model because this model
// runs as the program root.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		return m, nil
	}

	if m.mode == modeForm {
		return m.updateForm(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keymap.Quit), key.Matches(keyMsg, m.keymap.Escape):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keymap.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(keyMsg, m.keymap.Down):
		if m.selected < len(m.sites)-1 {
			m.selected++
		}

	case key.Matches(keyMsg, m.keymap.Add):
		suggested, err := registry.GenerateKey(m.sites, "")
		if err != nil {
			m.status = "all 36 shortcut keys are in use"
			m.statusErr = true
			return m, nil
		}
		m.mode = modeForm
		m.form = newFormState("", "", suggested, -1, false)
		m.status = ""
		return m, m.form.focusCmd()

	case key.Matches(keyMsg, m.keymap.Edit):
		if len(m.sites) == 0 {
			return m, nil
		}
		s := m.sites[m.selected]
		m.mode = modeForm
		m.form = newFormState(s.Name, s.URL, s.Key, m.selected, false)
		m.status = ""
		return m, m.form.focusCmd()

	case key.Matches(keyMsg, m.keymap.Delete):
		if len(m.sites) == 0 {
			return m, nil
		}
		removed := m.sites[m.selected].Name
		updated, err := m.svc.RemoveByIndex(context.Background(), m.selected, m.sites)
		m.sites = updated
		if m.selected >= len(m.sites) && m.selected > 0 {
			m.selected--
		}
		if err != nil {
			m.status = err.Error()
			m.statusErr = true
		} else {
			m.status = fmt.Sprintf("removed %s", removed)
			m.statusErr = false
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.formKeys.Cancel):
		m.mode = modeList
		m.status = ""
		m.statusErr = false
		return m, nil

	case key.Matches(keyMsg, m.formKeys.Submit):
		return m.submit()

	case key.Matches(keyMsg, m.formKeys.NextField):
		m.form = m.form.cycleFocus(1)
		return m, m.form.focusCmd()

	case key.Matches(keyMsg, m.formKeys.PrevField):
		m.form = m.form.cycleFocus(-1)
		return m, m.form.focusCmd()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submit runs the mutation the form was opened for: replace when
// editing, upsert when confirming a proposal, plain add otherwise.
func (m Model) submit() (tea.Model, tea.Cmd) {
	candidate := m.form.site()
	ctx := context.Background()

	var (
		updated []site.Site
		err     error
	)
	switch {
	case m.form.editIndex >= 0:
		updated, err = m.svc.ReplaceAt(ctx, m.form.editIndex, candidate, m.sites)
	case m.form.upsert:
		updated, err = m.svc.UpsertByKey(ctx, candidate, m.sites)
	default:
		updated, err = m.svc.Add(ctx, candidate, m.sites)
	}

	m.sites = updated
	if err != nil {
		// Storage failures keep the applied mutation visible; any other
		// failure keeps the form open for correction.
		if errors.Is(err, registry.ErrStorageUnavailable) {
			m.mode = modeList
		}
		m.status = err.Error()
		m.statusErr = true
		return m, nil
	}

	m.mode = modeList
	m.status = fmt.Sprintf("saved %s", candidate.Name)
	m.statusErr = false
	return m, nil
}

// View renders the list or the form.
func (m Model) View() string {
	var body string
	if m.mode == modeForm {
		body = m.form.view()
		if m.status != "" {
			style := styles.SuccessStyle
			if m.statusErr {
				style = styles.ErrorStyle
			}
			body += "\n" + style.Render(m.status)
		}
	} else {
		body = m.listView()
	}

	box := styles.BoxStyle.Render(body)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) listView() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Manage Sites"))
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
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indicator,
			styles.KeyBadgeStyle.Render("["+s.Key+"]"),
			styles.NameStyle.Render(s.Name),
			styles.URLStyle.Render(s.URL),
		))
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(styles.ErrorStyle.Render(m.status))
		} else {
			b.WriteString(styles.SuccessStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("a add · e edit · d delete · q quit"))
	return b.String()
}
