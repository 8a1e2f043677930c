// Package pack places axis-aligned rectangles into a square area using a
// recursive guillotine partition. Placement is greedy and not optimal;
// callers that need a guaranteed fit retry at a larger size.
package pack

// Position is an assigned top-left placement, y increasing downward.
type Position struct {
	X int
	Y int
}

// Item is one rectangle to be placed. Width and height are fixed at
// construction; a position is assigned at most once, by a successful
// Region.Pack.
type Item struct {
	width  int
	height int
	pos    Position
	placed bool
}

// NewItem returns an unplaced item of the given size.
func NewItem(width, height int) *Item {
	return &Item{width: width, height: height}
}

func (it *Item) Width() int  { return it.width }
func (it *Item) Height() int { return it.height }

// Perimeter returns 2*(width+height), the sort key for pack ordering.
func (it *Item) Perimeter() int {
	return 2 * (it.width + it.height)
}

// Position returns the assigned placement and whether one has been assigned.
func (it *Item) Position() (Position, bool) {
	return it.pos, it.placed
}

// Placed reports whether the item has been packed.
func (it *Item) Placed() bool { return it.placed }

func (it *Item) place(x, y int) {
	it.pos = Position{X: x, Y: y}
	it.placed = true
}
