package ui

// Focus names the main-view surface that receives navigation keys.
type Focus int

const (
	FocusPeers Focus = iota
	FocusLogs
)

func (f Focus) String() string {
	switch f {
	case FocusPeers:
		return "Peers"
	case FocusLogs:
		return "Logs"
	default:
		return "Unknown"
	}
}

// FocusManager tracks and rotates focus across panels.
type FocusManager struct {
	Current  Focus   // Currently focused panel
	Order    []Focus // Tab order for focus rotation
	OnChange func(from, to Focus)
}

// NewFocusManager creates a manager over order, focused on its first entry.
func NewFocusManager(order ...Focus) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next panel in order.
// Returns the new current focus.
func (f *FocusManager) Next() Focus {
	return f.rotate(1)
}

// Prev moves focus to the previous panel in order.
func (f *FocusManager) Prev() Focus {
	return f.rotate(-1)
}

func (f *FocusManager) rotate(step int) Focus {
	n := len(f.Order)
	if n == 0 {
		return f.Current
	}
	idx := f.indexOf(f.Current)
	if idx < 0 {
		idx = 0
		step = 0
	}
	return f.set(f.Order[((idx+step)%n+n)%n])
}

// SetFocus sets focus to the given panel.
// Returns true if it exists in order.
func (f *FocusManager) SetFocus(to Focus) bool {
	if f.indexOf(to) < 0 {
		return false
	}
	f.set(to)
	return true
}

func (f *FocusManager) set(to Focus) Focus {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
	return f.Current
}

func (f *FocusManager) indexOf(id Focus) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
