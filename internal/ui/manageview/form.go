package manageview

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryoma-abe/site-launcher/internal/site"
	"github.com/ryoma-abe/site-launcher/internal/ui/styles"
)

// Field order within the form.
const (
	fieldName = iota
	fieldURL
	fieldKey
	fieldCount
)

// formState holds the add/edit form inputs.
type formState struct {
	inputs  [fieldCount]textinput.Model
	focused int

	// editIndex is the list position being edited, or -1 for add.
	editIndex int
	// upsert replaces any entry sharing the key instead of failing;
	// used when confirming a proposed site.
	upsert bool
}

// newFormState builds a form seeded with the given values.
func newFormState(name, url, key string, editIndex int, upsert bool) formState {
	f := formState{editIndex: editIndex, upsert: upsert}

	labels := [fieldCount]struct {
		placeholder string
		value       string
		limit       int
	}{
		{placeholder: "Site name", value: name, limit: site.MaxNameLength},
		{placeholder: "https://example.com", value: url},
		{placeholder: "A-Z or 0-9", value: key, limit: 1},
	}

	for i, l := range labels {
		ti := textinput.New()
		ti.Placeholder = l.placeholder
		ti.Prompt = ""
		ti.Width = 36
		if l.limit > 0 {
			ti.CharLimit = l.limit
		}
		if l.value != "" {
			ti.SetValue(l.value)
		}
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Focus()
	return f
}

// site builds the candidate Site from the raw field values.
// Validation happens in the registry engine, not here.
func (f formState) site() site.Site {
	return site.Site{
		Name: f.inputs[fieldName].Value(),
		URL:  f.inputs[fieldURL].Value(),
		Key:  f.inputs[fieldKey].Value(),
	}
}

// cycleFocus moves focus by delta, wrapping around.
func (f formState) cycleFocus(delta int) formState {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + delta + fieldCount) % fieldCount
	f.inputs[f.focused].Focus()
	return f
}

// focusCmd returns the cursor blink command for the focused field.
func (f formState) focusCmd() tea.Cmd {
	return textinput.Blink
}

// update forwards a message to the focused input.
func (f formState) update(msg tea.Msg) (formState, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return f, cmd
}

// view renders the form.
func (f formState) view() string {
	title := "Add Site"
	if f.editIndex >= 0 {
		title = "Edit Site"
	}

	labels := [fieldCount]string{"Name", "URL", "Key"}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")
	for i, label := range labels {
		marker := "  "
		if i == f.focused {
			marker = styles.SelectionIndicatorStyle.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(styles.NameStyle.Render(label))
		b.WriteString("\n  ")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("enter save · tab next field · esc cancel"))
	return b.String()
}
