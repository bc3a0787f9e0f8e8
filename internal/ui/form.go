package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"backoffice/internal/features"
	"backoffice/internal/ui/views"
)

// recordForm is the create or edit screen of a record
type recordForm struct {
	title  string
	id     string // empty when creating
	fields []features.FormField
	inputs []textinput.Model
	focus  int
	err    string
}

func newRecordForm(title, id string, fields []features.FormField) *recordForm {
	f := &recordForm{
		title:  title,
		id:     id,
		fields: fields,
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, field := range fields {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.CharLimit = 120
		ti.Width = 32
		ti.Placeholder = field.Hint
		ti.SetValue(field.Value)
		f.inputs[i] = ti
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// move shifts focus by delta, wrapping around
func (f *recordForm) move(delta int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

// update feeds msg to the focused input
func (f *recordForm) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// values returns the typed text keyed by field
func (f *recordForm) values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for i, field := range f.fields {
		out[field.Key] = f.inputs[i].Value()
	}
	return out
}

func (f *recordForm) view() *views.FormView {
	fv := &views.FormView{Title: f.title, Error: f.err}
	for i, field := range f.fields {
		fv.Fields = append(fv.Fields, views.FormFieldView{
			Label:    field.Label,
			Input:    f.inputs[i].View(),
			Hint:     field.Hint,
			Required: field.Required,
			Focused:  i == f.focus,
		})
	}
	return fv
}
