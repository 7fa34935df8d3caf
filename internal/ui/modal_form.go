package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
)

// formModalWidth is the outer width of the add/edit box, borders included.
const formModalWidth = 64

const formFooter = "(Esc) exit | (Tab) next | (Shift + Tab) previous"

// renderFormModal draws the three labelled inputs of f inside a box.
// The inputs are rebuilt from f on every call, so rendering has no side effects.
func renderFormModal(title string, f *FieldForm, extraHint string) string {
	inner := formModalWidth - Styles.Box.GetHorizontalFrameSize()
	var b strings.Builder
	b.WriteString(Styles.Title.Render(title))
	b.WriteString("\n")
	for i, field := range f.Fields {
		b.WriteString("\n")
		label := Styles.Muted
		if i == f.Active {
			label = Styles.Selected
		}
		b.WriteString(label.Render(field.Label))
		b.WriteString("\n")
		b.WriteString(fieldInput(field.Value, i == f.Active, inner).View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Styles.Hint.Render(formFooter))
	if extraHint != "" {
		b.WriteString("\n")
		b.WriteString(Styles.Hint.Render(extraHint))
	}
	return Styles.Box.Width(formModalWidth - Styles.Box.GetHorizontalMargins() - Styles.Box.GetHorizontalBorderSize()).Render(b.String())
}

func fieldInput(value string, active bool, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = width - len(ti.Prompt) - 1
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)
	if active {
		ti.Focus()
	} else {
		ti.Blur()
		ti.Prompt = "  "
	}
	return ti
}
