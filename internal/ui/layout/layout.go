package layout

import "github.com/charmbracelet/lipgloss"

// Direction selects which side of the content frame the panel sits on.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Placement describes the panel as the widget sees it: the unclamped
// width held in state and the bounds the layout clamps it to.
type Placement struct {
	Direction Direction
	Width     int
	MinWidth  int
	MaxWidth  int
	Visible   bool
}

// PanelLayout holds calculated dimensions for the panel/frame split.
type PanelLayout struct {
	Width  int
	Height int

	Direction  Direction
	PanelWidth int
	FrameWidth int

	ContentHeight int // height minus status bar

	PanelVisible bool
}

const statusBarHeight = 1

// Calculate computes the panel layout from terminal dimensions. The
// placement width is clamped to [MinWidth, MaxWidth] here and nowhere
// else; the widget state keeps whatever the pointer math produced.
func Calculate(width, height int, p Placement) PanelLayout {
	l := PanelLayout{
		Width:         width,
		Height:        height,
		Direction:     p.Direction,
		PanelVisible:  p.Visible,
		ContentHeight: height - statusBarHeight,
	}

	if l.ContentHeight < 1 {
		l.ContentHeight = 1
	}

	if !p.Visible {
		l.FrameWidth = max(width, 0)
		return l
	}

	l.PanelWidth = Clamp(p.Width, p.MinWidth, p.MaxWidth)
	if l.PanelWidth > width {
		l.PanelWidth = width
	}
	if l.PanelWidth < 0 {
		l.PanelWidth = 0
	}
	l.FrameWidth = width - l.PanelWidth
	return l
}

// Compose joins the rendered panel and frame in the order dictated by
// the direction: panel first for Left, frame first for Right.
func Compose(dir Direction, panel, frame string) string {
	first, second := panel, frame
	if dir == Right {
		first, second = frame, panel
	}
	switch {
	case first == "":
		return second
	case second == "":
		return first
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, first, second)
}

// Clamp bounds v to [lo, hi]. The lower bound wins when lo > hi, which
// matches how min-width beats max-width in a flex layout.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
