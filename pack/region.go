package pack

// Region is one node of the guillotine partition: a free rectangular area
// that can hold at most one item. Placing an item splits the remainder into
// two child regions, created exactly once and never resized.
type Region struct {
	x      int
	y      int
	width  int
	height int
	item   *Item
	sub1   *Region
	sub2   *Region
}

// NewRegion returns an empty region covering the given area.
func NewRegion(x, y, width, height int) *Region {
	return &Region{x: x, y: y, width: width, height: height}
}

func (r *Region) Width() int  { return r.width }
func (r *Region) Height() int { return r.height }

// Pack tries to place the item in this subtree. An empty region that fits
// the item takes it and splits its free remainder with a guillotine cut:
// sub1 is the strip directly below the item (item width, leftover height),
// sub2 is the area to the right (leftover width, full region height).
// An occupied region recurses into sub1, then sub2. Returns false if the
// item fits nowhere in the subtree; the item is untouched in that case.
func (r *Region) Pack(it *Item) bool {
	if it.placed {
		panic("pack: item is already placed")
	}
	if r.item == nil {
		if it.width > r.width || it.height > r.height {
			return false
		}
		it.place(r.x, r.y)
		r.item = it
		r.sub1 = NewRegion(r.x, r.y+it.height, it.width, r.height-it.height)
		r.sub2 = NewRegion(r.x+it.width, r.y, r.width-it.width, r.height)
		return true
	}
	return r.sub1.Pack(it) || r.sub2.Pack(it)
}

// Items returns every placed item in this subtree in pre-order
// (self, below-strip, right remainder).
func (r *Region) Items() []*Item {
	if r.item == nil {
		return nil
	}
	items := []*Item{r.item}
	items = append(items, r.sub1.Items()...)
	items = append(items, r.sub2.Items()...)
	return items
}
