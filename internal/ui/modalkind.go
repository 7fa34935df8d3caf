package ui

// ModalKind names which modal, if any, owns keyboard input.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalCreate
	ModalEdit
	ModalConfirmDelete
)

func (k ModalKind) String() string {
	switch k {
	case ModalNone:
		return "None"
	case ModalCreate:
		return "Create"
	case ModalEdit:
		return "Edit"
	case ModalConfirmDelete:
		return "ConfirmDelete"
	default:
		return "Unknown"
	}
}

// KindOf returns the kind of m; a nil modal is ModalNone.
func KindOf(m Modal) ModalKind {
	if m == nil {
		return ModalNone
	}
	return m.Kind()
}
