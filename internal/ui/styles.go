package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, focused borders
	ColorDanger    = "196" // Red - for warnings, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for unfocused borders
	ColorWarning   = "208" // Orange - for warning details
	ColorOK        = "42"  // Green - for connected peers
)

// Styles contains shared style definitions used across panels and modals.
var Styles = struct {
	// Title styles
	Title        lipgloss.Style // Bold accent color - for main titles
	TitleWarning lipgloss.Style // Bold danger color - for warning titles

	// Box styles
	Box       lipgloss.Style // Modal box with rounded border (highlight border)
	BoxDanger lipgloss.Style // Delete confirmation box (danger border)

	// Panel styles
	Header        lipgloss.Style // Top bar
	Footer        lipgloss.Style // Bottom bar
	PanelFocused  lipgloss.Style // Peer table / log list holding focus
	PanelBlurred  lipgloss.Style // Peer table / log list without focus
	PanelTitle    lipgloss.Style // Title drawn on the first row of a panel
	TableHeader   lipgloss.Style // Peer table column headers
	TableSelected lipgloss.Style // Selected peer row

	// Text styles
	Selected  lipgloss.Style // Highlighted/selected items (bold highlight color)
	Muted     lipgloss.Style // Dimmed text (muted color)
	Normal    lipgloss.Style // Normal text (text color)
	Hint      lipgloss.Style // Help/hint text (muted color)
	Status    lipgloss.Style // Status messages (accent color)
	Error     lipgloss.Style // Error messages (danger color)
	Connected lipgloss.Style // Connected log entries
	Empty     lipgloss.Style // Empty state text (muted, italic)
	Label     lipgloss.Style // Modal label/content (default)
	Details   lipgloss.Style // Warning details (warning color)
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 2).
		Margin(0, 1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(0, 2).
		Margin(0, 1).
		Align(lipgloss.Center),
	Header: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Align(lipgloss.Center),
	Footer: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	PanelFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	PanelBlurred: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)),
	PanelTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TableHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color(ColorDim)),
	TableSelected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Connected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorOK)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}
