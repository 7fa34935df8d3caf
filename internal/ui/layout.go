package ui

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Size is the width and height of a rendered block.
type Size struct {
	W, H int
}

const (
	headerRows = 3
	footerRows = 3
	// peerShare is the percentage of the body width given to the peer table.
	peerShare = 60
)

// Layout is the arrangement of the screen for one frame.
type Layout struct {
	Header  Rect
	Body    Rect
	Footer  Rect
	Peers   Rect
	Logs    Rect
	Overlay Rect // zero when no modal is open
}

// ComputeLayout splits a width x height screen into header, body and footer,
// splits the body 60/40 between peers and logs, and centres an overlay of the
// given size (zero for none), clipped to the screen.
func ComputeLayout(width, height int, overlay Size) Layout {
	width = max(width, 0)
	height = max(height, 0)

	header := min(headerRows, height)
	footer := min(footerRows, height-header)
	body := height - header - footer

	l := Layout{
		Header: Rect{X: 0, Y: 0, W: width, H: header},
		Body:   Rect{X: 0, Y: header, W: width, H: body},
		Footer: Rect{X: 0, Y: header + body, W: width, H: footer},
	}
	peersW := width * peerShare / 100
	l.Peers = Rect{X: 0, Y: l.Body.Y, W: peersW, H: body}
	l.Logs = Rect{X: peersW, Y: l.Body.Y, W: width - peersW, H: body}

	if overlay.W > 0 && overlay.H > 0 {
		w := min(overlay.W, width)
		h := min(overlay.H, height)
		l.Overlay = Rect{X: (width - w) / 2, Y: (height - h) / 2, W: w, H: h}
	}
	return l
}

// Panels returns the focusable body panels in tab order.
func (l Layout) Panels() []Panel {
	return []Panel{
		{ID: FocusPeers, Title: "Peers", Bounds: l.Peers},
		{ID: FocusLogs, Title: "Logs", Bounds: l.Logs},
	}
}
