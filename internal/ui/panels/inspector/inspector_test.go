package inspector

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/sidepane/internal/ui/layout"
	"github.com/sadopc/sidepane/internal/ui/panels/sidebar"
	"github.com/sadopc/sidepane/internal/ui/theme"
)

func newTestInspector() *Model {
	th := theme.Default()
	m := New(th, theme.NewStyles(th))
	m.SetSize(30, 20)
	return m
}

func testSidebar(opts sidebar.Options) sidebar.Model {
	th := theme.Default()
	sb := sidebar.New(opts, nil, th, theme.NewStyles(th))
	sb.Mount()
	return sb
}

func TestInspector_ViewBeforeSize(t *testing.T) {
	th := theme.Default()
	m := New(th, theme.NewStyles(th))
	if got := m.View(); got != "" {
		t.Fatalf("unsized inspector should render nothing, got %q", got)
	}
}

func TestInspector_SyncShowsState(t *testing.T) {
	m := newTestInspector()
	m.Sync(testSidebar(sidebar.Options{
		Direction:   layout.Right,
		Width:       400,
		MinWidth:    20,
		MaxWidth:    60,
		Draggable:   true,
		GutterStyle: sidebar.Dotted,
		GutterWidth: 1,
	}))

	view := m.View()
	for _, want := range []string{"right", "400", "60", "20/60", "yes", "dotted 1x20", "idle"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q:\n%s", want, view)
		}
	}
}

func TestInspector_History(t *testing.T) {
	m := newTestInspector()
	m.Sync(testSidebar(sidebar.Options{Draggable: true}))

	if !strings.Contains(m.View(), "drag the gutter") {
		t.Fatal("fresh inspector should show the hint")
	}

	m.RecordStart()
	m.RecordMove(200, 150)
	m.RecordMove(150, 1200)
	m.RecordEnd()

	if m.Sessions() != 1 {
		t.Fatalf("Sessions() = %d, want 1", m.Sessions())
	}
	if m.Travel() != 1100 {
		t.Fatalf("Travel() = %d, want 1100", m.Travel())
	}
	view := m.View()
	if !strings.Contains(view, "1,100 cells dragged") {
		t.Errorf("travel should be rendered with thousands separators:\n%s", view)
	}
	if !strings.Contains(view, "1 drags done") {
		t.Errorf("view should count finished drags:\n%s", view)
	}
}

func TestInspector_HistoryWhileResizing(t *testing.T) {
	m := newTestInspector()
	m.RecordStart()
	m.RecordMove(10, 14)
	m.resizing = true

	view := m.View()
	if !strings.Contains(view, "1st drag, 4 so far") {
		t.Errorf("active drag should be numbered with an ordinal:\n%s", view)
	}
	if !strings.Contains(view, "resizing") {
		t.Errorf("state should read resizing:\n%s", view)
	}
}

func TestInspector_RecordStartResetsCurrentDrag(t *testing.T) {
	m := newTestInspector()
	m.RecordStart()
	m.RecordMove(0, 5)
	m.RecordEnd()
	m.RecordStart()

	if m.lastDrag != 0 {
		t.Fatalf("lastDrag = %d, want 0 after RecordStart", m.lastDrag)
	}
	if m.Travel() != 5 {
		t.Fatalf("Travel() = %d, want 5", m.Travel())
	}
}

func TestInspector_SizedBySidebar(t *testing.T) {
	th := theme.Default()
	m := New(th, theme.NewStyles(th))
	sb := testSidebar(sidebar.Options{Width: 30, MinWidth: 10, MaxWidth: 40, Draggable: true, GutterWidth: 2})
	sb.SetContent(m)
	sb.SetSize(30, 12)

	w, h := m.Size()
	if w != 28 || h != 12 {
		t.Fatalf("Size() = %dx%d, want 28x12", w, h)
	}
}

func TestInspector_ViewFitsWidth(t *testing.T) {
	m := newTestInspector()
	m.SetSize(8, 20)
	m.Sync(testSidebar(sidebar.Options{}))

	for i, line := range strings.Split(m.View(), "\n") {
		if w := lipgloss.Width(line); w > 8 {
			t.Errorf("line %d is %d cells wide, want <= 8: %q", i, w, line)
		}
	}
}
