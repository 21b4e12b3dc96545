package sidebar

import zone "github.com/lrstanley/bubblezone"

// Bounds is a rendered rectangle in terminal cells. Right and Bottom are
// exclusive, so Right-Left is the rendered width.
type Bounds struct {
	Left, Top, Right, Bottom int
}

// Contains reports whether the cell (x, y) lies inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.Left && x < b.Right && y >= b.Top && y < b.Bottom
}

// Locator marks rendered regions and reports where they ended up on
// screen. The widget only reads bounds; it never owns them.
type Locator interface {
	Mark(id, s string) string
	Locate(id string) (Bounds, bool)
}

// ZoneLocator is a Locator backed by a bubblezone manager. The host must
// pass its final view through the same manager's Scan.
type ZoneLocator struct {
	manager *zone.Manager
}

// NewZoneLocator wraps m.
func NewZoneLocator(m *zone.Manager) ZoneLocator {
	return ZoneLocator{manager: m}
}

func (l ZoneLocator) Mark(id, s string) string {
	return l.manager.Mark(id, s)
}

func (l ZoneLocator) Locate(id string) (Bounds, bool) {
	z := l.manager.Get(id)
	if z == nil || z.IsZero() {
		return Bounds{}, false
	}
	return Bounds{
		Left:   z.StartX,
		Top:    z.StartY,
		Right:  z.EndX + 1,
		Bottom: z.EndY + 1,
	}, true
}
