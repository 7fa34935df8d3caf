package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"wgtui/internal/peer"
)

// FormMode tells a submit whether to add a peer or update one.
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

func (m FormMode) String() string {
	switch m {
	case FormCreate:
		return "Create"
	case FormEdit:
		return "Edit"
	default:
		return "Unknown"
	}
}

// Field indexes into FieldForm.Fields.
const (
	FieldName = iota
	FieldAddress
	FieldPublicKey
)

// FormField is one labelled text input.
type FormField struct {
	Label string
	Value string
}

// FieldForm is the editable state of a peer form: three text fields with one active.
// Editing never validates; checks happen on submit.
type FieldForm struct {
	Fields []FormField
	Active int
	Mode   FormMode
	// Source is the peer being edited, captured when the form opened. Nil in create mode.
	Source *peer.Peer
	// SourceIndex is the table row Source occupied when the form opened.
	SourceIndex int
}

// NewFieldForm returns an empty form with the Name field active.
func NewFieldForm(mode FormMode) *FieldForm {
	return &FieldForm{
		Fields: []FormField{
			{Label: "Name"},
			{Label: "Address"},
			{Label: "Public Key"},
		},
		Mode:        mode,
		SourceIndex: -1,
	}
}

// FieldFormFromPeer returns an edit form seeded from p, which sits at row index.
func FieldFormFromPeer(p peer.Peer, index int) *FieldForm {
	f := NewFieldForm(FormEdit)
	for i, v := range p.Fields() {
		f.Fields[i].Value = v
	}
	src := p
	f.Source = &src
	f.SourceIndex = index
	return f
}

// ActiveField returns the field receiving input.
func (f *FieldForm) ActiveField() *FormField {
	return &f.Fields[f.Active]
}

// NextField activates the following field, wrapping to the first.
func (f *FieldForm) NextField() {
	f.Active = (f.Active + 1) % len(f.Fields)
}

// PrevField activates the preceding field, wrapping to the last.
func (f *FieldForm) PrevField() {
	f.Active = (f.Active + len(f.Fields) - 1) % len(f.Fields)
}

// PushChar appends r to the active field.
func (f *FieldForm) PushChar(r rune) {
	f.ActiveField().Value += string(r)
}

// Backspace removes the last character of the active field.
func (f *FieldForm) Backspace() {
	field := f.ActiveField()
	if field.Value == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(field.Value)
	field.Value = field.Value[:len(field.Value)-size]
}

// SetValue overwrites field i.
func (f *FieldForm) SetValue(i int, s string) {
	if i < 0 || i >= len(f.Fields) {
		return
	}
	f.Fields[i].Value = s
}

// ToPeer builds a peer from the current field values.
func (f *FieldForm) ToPeer() peer.Peer {
	return peer.Normalize(peer.Peer{
		Name:      f.Fields[FieldName].Value,
		Address:   f.Fields[FieldAddress].Value,
		PublicKey: f.Fields[FieldPublicKey].Value,
	})
}

// Check reports empty fields. Format checks are left to the peer source.
func (f *FieldForm) Check() error {
	var missing []string
	for _, field := range f.Fields {
		if strings.TrimSpace(field.Value) == "" {
			missing = append(missing, field.Label)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s required", peer.ErrInvalid, strings.Join(missing, ", "))
}

