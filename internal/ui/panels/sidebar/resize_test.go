package sidebar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sidepane/internal/ui/layout"
	"github.com/sadopc/sidepane/internal/ui/msgs"
)

// leftSidebar returns a draggable left sidebar whose panel starts at
// x=100 and whose gutter covers columns 294-299.
func leftSidebar() (Model, *fakeLocator) {
	m, loc := newTestSidebar(Options{Direction: layout.Left, Draggable: true})
	loc.bounds[m.PanelID()] = Bounds{Left: 100, Top: 0, Right: 300, Bottom: 40}
	loc.bounds[m.GutterID()] = Bounds{Left: 294, Top: 0, Right: 300, Bottom: 40}
	return m, loc
}

// rightSidebar returns a draggable right sidebar whose panel ends at
// x=500 and whose gutter covers columns 300-305.
func rightSidebar() (Model, *fakeLocator) {
	m, loc := newTestSidebar(Options{Direction: layout.Right, Draggable: true})
	loc.bounds[m.PanelID()] = Bounds{Left: 300, Top: 0, Right: 500, Bottom: 40}
	loc.bounds[m.GutterID()] = Bounds{Left: 300, Top: 0, Right: 306, Bottom: 40}
	return m, loc
}

func TestResize_LeftScenario(t *testing.T) {
	m, _ := leftSidebar()

	m, _ = m.Update(press(296, 10))
	if !m.Resizing() {
		t.Fatal("press on gutter should start resizing")
	}

	m, _ = m.Update(move(250, 10))
	if m.Width() != 150 {
		t.Fatalf("Width() = %d, want 150", m.Width())
	}

	m, _ = m.Update(move(90, 10))
	if m.Width() != -10 {
		t.Fatalf("Width() = %d, want -10 (unclamped)", m.Width())
	}

	m, _ = m.Update(release(90, 10))
	if m.Resizing() {
		t.Fatal("release should stop resizing")
	}
	if m.Width() != -10 {
		t.Fatalf("Width() = %d after release, want -10", m.Width())
	}

	m, _ = m.Update(move(200, 10))
	if m.Width() != -10 {
		t.Fatalf("Width() = %d after idle motion, want -10", m.Width())
	}
}

func TestResize_RightScenario(t *testing.T) {
	m, _ := rightSidebar()

	m, _ = m.Update(press(302, 5))
	m, _ = m.Update(move(420, 5))
	if m.Width() != 80 {
		t.Fatalf("Width() = %d, want 80", m.Width())
	}
}

func TestResize_WidthTracksEveryMotion(t *testing.T) {
	tests := []struct {
		name  string
		setup func() (Model, *fakeLocator)
		grab  int
		want  func(x int) int
	}{
		{"left", leftSidebar, 296, func(x int) int { return x - 100 }},
		{"right", rightSidebar, 302, func(x int) int { return 500 - x }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := tt.setup()
			m, _ = m.Update(press(tt.grab, 0))
			for _, x := range []int{0, 50, 120, 333, 499, 800} {
				m, _ = m.Update(move(x, 3))
				if got := m.Width(); got != tt.want(x) {
					t.Fatalf("motion to %d: Width() = %d, want %d", x, got, tt.want(x))
				}
			}
		})
	}
}

func TestResize_ReleaseAnywhereStops(t *testing.T) {
	for _, x := range []int{-5, 0, 150, 296, 1000} {
		m, _ := leftSidebar()
		m, _ = m.Update(press(296, 1))
		m, cmd := m.Update(release(x, 30))
		if m.Resizing() {
			t.Fatalf("release at %d should stop resizing", x)
		}
		got := collect(cmd)
		if len(got) != 1 {
			t.Fatalf("release produced %d messages, want 1", len(got))
		}
		if _, ok := got[0].(msgs.ResizeEndedMsg); !ok {
			t.Fatalf("expected ResizeEndedMsg, got %T", got[0])
		}
	}
}

func TestResize_ReleaseWhileIdleIsQuiet(t *testing.T) {
	m, _ := leftSidebar()
	m, cmd := m.Update(release(10, 10))
	if cmd != nil {
		t.Fatal("release while idle should not emit")
	}
	if m.Resizing() {
		t.Fatal("release while idle should leave the widget idle")
	}
}

func TestResize_PressOutsideGutterIgnored(t *testing.T) {
	m, _ := leftSidebar()

	m, cmd := m.Update(press(150, 10))
	if m.Resizing() || cmd != nil {
		t.Fatal("press inside the panel but off the gutter should not resize")
	}

	m, _ = m.Update(press(296, 41))
	if m.Resizing() {
		t.Fatal("press below the gutter should not resize")
	}
}

func TestResize_NonLeftButtonIgnored(t *testing.T) {
	m, _ := leftSidebar()
	m, _ = m.Update(tea.MouseMsg{X: 296, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.Resizing() {
		t.Fatal("wheel events should not start a resize")
	}
}

func TestResize_NotDraggable(t *testing.T) {
	m, loc := newTestSidebar(Options{Draggable: false})
	loc.bounds[m.PanelID()] = Bounds{Left: 100, Right: 300, Bottom: 40}
	loc.bounds[m.GutterID()] = Bounds{Left: 294, Right: 300, Bottom: 40}

	m, cmd := m.Update(press(296, 10))
	if m.Resizing() || cmd != nil {
		t.Fatal("press should not start a resize when not draggable")
	}

	m, _ = m.Update(hover(296, 10))
	if m.Hovering() {
		t.Fatal("non-draggable sidebar has no gutter to hover")
	}
}

func TestResize_UnrenderedPanelIsNoop(t *testing.T) {
	m, loc := leftSidebar()
	m, _ = m.Update(press(296, 1))
	delete(loc.bounds, m.PanelID())

	m, cmd := m.Update(move(250, 1))
	if m.Width() != 200 {
		t.Fatalf("Width() = %d, want unchanged 200", m.Width())
	}
	if cmd != nil {
		t.Fatal("no width message expected without panel bounds")
	}
	if !m.Resizing() {
		t.Fatal("missing bounds should not end the resize")
	}
}

func TestResize_UnmountedIgnoresEvents(t *testing.T) {
	m, _ := leftSidebar()
	m.Unmount()

	m, cmd := m.Update(press(296, 1))
	if m.Resizing() || cmd != nil {
		t.Fatal("unmounted sidebar should ignore presses")
	}
}

func TestResize_UnmountResetsState(t *testing.T) {
	m, _ := leftSidebar()
	m, _ = m.Update(press(296, 1))
	m, _ = m.Update(move(296, 1)) // hovering and resizing
	m, _ = m.Update(move(180, 1))

	m.Unmount()
	if m.Resizing() || m.Hovering() {
		t.Fatal("unmount should clear resize and hover state")
	}
	if m.Width() != 200 {
		t.Fatalf("Width() = %d after unmount, want configured 200", m.Width())
	}

	m.Mount()
	if !m.Mounted() {
		t.Fatal("expected mounted")
	}
}

func TestResize_MotionAfterReleaseInSameBatch(t *testing.T) {
	m, _ := leftSidebar()
	m, _ = m.Update(press(296, 1))
	m, _ = m.Update(move(200, 1))

	for _, ev := range []tea.MouseMsg{release(200, 1), move(260, 1)} {
		m, _ = m.Update(ev)
	}
	if m.Width() != 100 {
		t.Fatalf("Width() = %d, want 100; motion after release must not resize", m.Width())
	}
}

func TestResize_EmitsResizedMessages(t *testing.T) {
	m, _ := leftSidebar()
	m, _ = m.Update(press(296, 1))
	_, cmd := m.Update(move(250, 1))

	got := collect(cmd)
	var resized *msgs.PanelResizedMsg
	for _, msg := range got {
		if r, ok := msg.(msgs.PanelResizedMsg); ok {
			resized = &r
		}
	}
	if resized == nil || resized.Width != 150 {
		t.Fatalf("expected PanelResizedMsg{Width: 150}, got %#v", got)
	}
}

func TestHover_TogglesOnEnterAndLeave(t *testing.T) {
	m, _ := leftSidebar()
	start := m.Width()

	m, cmd := m.Update(hover(297, 4))
	if !m.Hovering() {
		t.Fatal("entering the gutter should set hovering")
	}
	got := collect(cmd)
	if len(got) != 1 {
		t.Fatalf("enter produced %d messages, want 1", len(got))
	}
	if h, ok := got[0].(msgs.GutterHoverMsg); !ok || !h.Hovering {
		t.Fatalf("expected GutterHoverMsg{Hovering: true}, got %#v", got[0])
	}

	m, cmd = m.Update(hover(298, 5))
	if cmd != nil {
		t.Fatal("moving within the gutter should not emit")
	}

	m, cmd = m.Update(hover(120, 5))
	if m.Hovering() {
		t.Fatal("leaving the gutter should clear hovering")
	}
	if got := collect(cmd); len(got) != 1 {
		t.Fatalf("leave produced %d messages, want 1", len(got))
	}

	if m.Width() != start {
		t.Fatalf("hover changed width from %d to %d", start, m.Width())
	}
}

func TestHover_IndependentOfResizing(t *testing.T) {
	m, _ := leftSidebar()
	m, _ = m.Update(hover(296, 1))
	m, _ = m.Update(press(296, 1))
	if !m.Hovering() || !m.Resizing() {
		t.Fatal("expected hovering and resizing together")
	}
	m, _ = m.Update(release(296, 1))
	if !m.Hovering() {
		t.Fatal("release should not clear hovering")
	}
}

func TestCaptures(t *testing.T) {
	m, _ := leftSidebar()

	if !m.Captures(press(150, 3)) {
		t.Fatal("press inside the panel should be captured")
	}
	if m.Captures(press(350, 3)) {
		t.Fatal("press outside the panel should pass through")
	}
	if m.Captures(hover(150, 3)) {
		t.Fatal("motion is never captured")
	}

	m.Unmount()
	if m.Captures(press(150, 3)) {
		t.Fatal("unmounted panel captures nothing")
	}
}

func TestUpdate_IgnoresNonMouse(t *testing.T) {
	m, _ := leftSidebar()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.Resizing() {
		t.Fatal("key messages should be ignored")
	}
}
