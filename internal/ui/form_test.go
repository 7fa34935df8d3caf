package ui

import (
	"errors"
	"testing"

	"wgtui/internal/peer"
)

func TestFieldForm_FieldRotation(t *testing.T) {
	f := NewFieldForm(FormCreate)
	for start := 0; start < len(f.Fields); start++ {
		f.Active = start
		for i := 0; i < 3; i++ {
			f.NextField()
		}
		if f.Active != start {
			t.Errorf("NextField x3 from %d: got %d", start, f.Active)
		}
		for i := 0; i < 3; i++ {
			f.PrevField()
		}
		if f.Active != start {
			t.Errorf("PrevField x3 from %d: got %d", start, f.Active)
		}
	}

	f.Active = 0
	f.PrevField()
	if f.Active != FieldPublicKey {
		t.Errorf("PrevField from Name: got %d, want %d", f.Active, FieldPublicKey)
	}
}

func TestFieldForm_Editing(t *testing.T) {
	f := NewFieldForm(FormCreate)
	for _, r := range "zoë" {
		f.PushChar(r)
	}
	if got := f.Fields[FieldName].Value; got != "zoë" {
		t.Errorf("Name = %q, want zoë", got)
	}
	f.Backspace()
	if got := f.Fields[FieldName].Value; got != "zo" {
		t.Errorf("Backspace should remove one rune, got %q", got)
	}

	f.NextField()
	f.Backspace()
	if got := f.Fields[FieldAddress].Value; got != "" {
		t.Errorf("Backspace on empty field: got %q", got)
	}
	if got := f.Fields[FieldName].Value; got != "zo" {
		t.Errorf("editing Address changed Name to %q", got)
	}
}

func TestFieldFormFromPeer(t *testing.T) {
	p := peer.Peer{Name: "alice", Address: "10.0.0.5", PublicKey: "pubkeyXYZ"}
	f := FieldFormFromPeer(p, 3)

	if f.Mode != FormEdit || f.Active != 0 {
		t.Errorf("unexpected mode %v / active %d", f.Mode, f.Active)
	}
	if got := f.ToPeer(); got != p {
		t.Errorf("ToPeer = %+v, want %+v", got, p)
	}
	if f.Source == nil || *f.Source != p || f.SourceIndex != 3 {
		t.Errorf("source not captured: %+v at %d", f.Source, f.SourceIndex)
	}

	// The captured source is a copy, not an alias of the form values.
	f.SetValue(FieldName, "mallory")
	if f.Source.Name != "alice" {
		t.Errorf("editing the form changed the captured source to %q", f.Source.Name)
	}
}

func TestFieldForm_Check(t *testing.T) {
	f := NewFieldForm(FormCreate)
	f.SetValue(FieldName, "alice")
	f.SetValue(FieldAddress, "  ")

	err := f.Check()
	if !errors.Is(err, peer.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if want := "invalid peer: Address, Public Key required"; err.Error() != want {
		t.Errorf("Check() = %q, want %q", err.Error(), want)
	}

	f.SetValue(FieldAddress, "10.0.0.5")
	f.SetValue(FieldPublicKey, "k")
	if err := f.Check(); err != nil {
		t.Errorf("complete form: unexpected error %v", err)
	}
}
