package manageview

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryoma-abe/site-launcher/internal/pending"
	"github.com/ryoma-abe/site-launcher/internal/site"
	"github.com/ryoma-abe/site-launcher/internal/sitestore"
	"github.com/ryoma-abe/site-launcher/internal/testutil"
)

func newTestModel(t *testing.T, sites []site.Site) (Model, *sitestore.Service) {
	t.Helper()
	svc := sitestore.NewService(testutil.NewTestStore(t))
	if sites != nil {
		_, err := svc.Replace(context.Background(), sites)
		require.NoError(t, err)
	}
	return New(svc, sites), svc
}

func sitesFixture() []site.Site {
	return []site.Site{
		{Name: "Google", URL: "https://www.google.com", Key: "G"},
		{Name: "GitHub", URL: "https://github.com", Key: "H"},
	}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// typeString feeds a string rune-by-rune into the focused form field.
func typeString(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(runeMsg(r))
	}
	return m
}

func TestAddFlow_SavesNewSite(t *testing.T) {
	m, svc := newTestModel(t, sitesFixture())

	var model tea.Model = m
	model, _ = model.Update(runeMsg('a'))
	require.Equal(t, modeForm, model.(Model).mode)
	assert.Equal(t, "A", model.(Model).form.inputs[fieldKey].Value(),
		"add form should suggest the next free key")

	model = typeString(model, "Lobsters")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = typeString(model, "lobste.rs")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := model.(Model)
	assert.Equal(t, modeList, got.mode)
	assert.False(t, got.statusErr)
	require.Len(t, got.Sites(), 3)
	assert.Equal(t, site.Site{Name: "Lobsters", URL: "https://lobste.rs", Key: "A"}, got.Sites()[2])

	persisted := svc.Load(context.Background())
	assert.Equal(t, got.Sites(), persisted)
}

func TestAddFlow_DuplicateKeyKeepsFormOpen(t *testing.T) {
	m, _ := newTestModel(t, sitesFixture())

	var model tea.Model = m
	model, _ = model.Update(runeMsg('a'))
	model = typeString(model, "Gitea")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = typeString(model, "gitea.example")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	// Overwrite the suggested key with one already in use.
	mm := model.(Model)
	mm.form.inputs[fieldKey].SetValue("g")
	model, _ = mm.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := model.(Model)
	assert.Equal(t, modeForm, got.mode, "validation failure keeps the form open")
	assert.True(t, got.statusErr)
	assert.Len(t, got.Sites(), 2)
}

func TestEditFlow_KeepsOwnKey(t *testing.T) {
	m, svc := newTestModel(t, sitesFixture())

	var model tea.Model = m
	model, _ = model.Update(runeMsg('j')) // select GitHub
	model, _ = model.Update(runeMsg('e'))

	got := model.(Model)
	require.Equal(t, modeForm, got.mode)
	assert.Equal(t, 1, got.form.editIndex)
	assert.Equal(t, "GitHub", got.form.inputs[fieldName].Value())

	// Rename without touching the key.
	edit := model.(Model)
	edit.form.inputs[fieldName].SetValue("Hub")
	model, _ = edit.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got = model.(Model)
	assert.Equal(t, modeList, got.mode)
	assert.Equal(t, "Hub", got.Sites()[1].Name)
	assert.Equal(t, "H", got.Sites()[1].Key)
	assert.Equal(t, got.Sites(), svc.Load(context.Background()))
}

func TestDeleteRemovesSelected(t *testing.T) {
	m, svc := newTestModel(t, sitesFixture())

	var model tea.Model = m
	model, _ = model.Update(runeMsg('j'))
	model, _ = model.Update(runeMsg('d'))

	got := model.(Model)
	require.Len(t, got.Sites(), 1)
	assert.Equal(t, "Google", got.Sites()[0].Name)
	assert.Equal(t, 0, got.selected, "selection clamps after deleting the last row")
	assert.Contains(t, got.status, "GitHub")
	assert.Equal(t, got.Sites(), svc.Load(context.Background()))
}

func TestDeleteOnEmptyListIsNoop(t *testing.T) {
	m, _ := newTestModel(t, nil)

	model, cmd := m.Update(runeMsg('d'))

	assert.Nil(t, cmd)
	assert.Empty(t, model.(Model).Sites())
}

func TestEscapeCancelsForm(t *testing.T) {
	m, _ := newTestModel(t, sitesFixture())

	var model tea.Model = m
	model, _ = model.Update(runeMsg('a'))
	model = typeString(model, "half-typed")
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})

	got := model.(Model)
	assert.Equal(t, modeList, got.mode)
	assert.Len(t, got.Sites(), 2, "cancelled form must not mutate the registry")
}

func TestWithPrefill_AddMode(t *testing.T) {
	m, _ := newTestModel(t, sitesFixture())

	got := m.WithPrefill(pending.Prefill{Name: "Example", URL: "example.com", Key: "E", EditIndex: -1})

	require.Equal(t, modeForm, got.mode)
	assert.Equal(t, -1, got.form.editIndex)
	assert.True(t, got.form.upsert)
	assert.Equal(t, "Example", got.form.inputs[fieldName].Value())
	assert.Equal(t, "E", got.form.inputs[fieldKey].Value())
}

func TestWithPrefill_UpsertReplacesByKey(t *testing.T) {
	m, svc := newTestModel(t, sitesFixture())

	var model tea.Model = m.WithPrefill(pending.Prefill{Name: "Gmail", URL: "mail.google.com", Key: "G", EditIndex: -1})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := model.(Model)
	assert.Equal(t, modeList, got.mode)
	require.Len(t, got.Sites(), 2, "upsert replaces the key holder instead of failing")
	assert.Equal(t, "Gmail", got.Sites()[0].Name)
	assert.Equal(t, "https://mail.google.com", got.Sites()[0].URL)
	assert.Equal(t, got.Sites(), svc.Load(context.Background()))
}

func TestWithPrefill_EditModeShowsNotice(t *testing.T) {
	m, _ := newTestModel(t, sitesFixture())

	got := m.WithPrefill(pending.Prefill{Name: "GitHub", URL: "https://github.com", Key: "H", EditIndex: 1})

	assert.Equal(t, 1, got.form.editIndex)
	assert.False(t, got.form.upsert)
	assert.Contains(t, got.View(), "already registered")
}

func TestView_ListShowsSitesAndStatus(t *testing.T) {
	m, _ := newTestModel(t, sitesFixture())

	view := m.View()
	assert.Contains(t, view, "Manage Sites")
	assert.Contains(t, view, "Google")
	assert.Contains(t, view, "https://github.com")
}
