// Package grid computes the camp/booth slot grid shown during rental
// booking: which numbered slots exist, which group owns each one, and which
// are selectable for the requested date range.
package grid

// Columns is the fixed width of the rendered grid. Rows are derived from the
// highest slot id; the column count never changes with slot distribution.
const Columns = 10

// Group is a slot group as published by the catalog.
type Group struct {
	IDs         []int
	Name        string
	Color       string
	Description string
	Price       *float64
	Insurance   *float64
	Area        *float64
	Capacity    int
}

// Ref is the metadata of the group owning a slot.
type Ref struct {
	Name        string
	Color       string
	Description string
	Price       *float64
	Insurance   *float64
	Area        *float64
	Capacity    int
}

// BuildIndex flattens every group's ids into a slot id -> owning group
// lookup. Groups are not guaranteed disjoint; when two groups claim the same
// id the later group wins. That matches the upstream schema's looseness and
// is deliberately not an error.
func BuildIndex(groups []Group) map[int]Ref {
	index := make(map[int]Ref)
	for _, g := range groups {
		ref := Ref{
			Name:        g.Name,
			Color:       g.Color,
			Description: g.Description,
			Price:       g.Price,
			Insurance:   g.Insurance,
			Area:        g.Area,
			Capacity:    g.Capacity,
		}
		for _, id := range g.IDs {
			if id <= 0 {
				continue
			}
			index[id] = ref
		}
	}
	return index
}

// Rows returns how many 10-column rows the grid needs: ceil(maxID/10), zero
// when no group declares any slot.
func Rows(groups []Group) int {
	maxID := 0
	for _, g := range groups {
		for _, id := range g.IDs {
			if id > maxID {
				maxID = id
			}
		}
	}
	return (maxID + Columns - 1) / Columns
}

// Available reports whether a slot can be booked: it must belong to a group
// and must not appear in the booked set. Slots without an owning group are
// never bookable regardless of booking status.
func Available(id int, index map[int]Ref, booked map[int]bool) bool {
	if _, ok := index[id]; !ok {
		return false
	}
	return !booked[id]
}

// BookedSet turns the flat booked-id list from storage into a membership set.
func BookedSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// Cell is one rendered grid position.
type Cell struct {
	ID         int
	Assigned   bool
	Booked     bool
	Selectable bool
	Group      *Ref
}

// Cells renders every position from 1 through Rows*Columns. In-range cells
// with no owning group are present but non-interactive.
func Cells(groups []Group, booked map[int]bool) []Cell {
	index := BuildIndex(groups)
	total := Rows(groups) * Columns
	cells := make([]Cell, 0, total)
	for id := 1; id <= total; id++ {
		cell := Cell{ID: id}
		if ref, ok := index[id]; ok {
			refCopy := ref
			cell.Assigned = true
			cell.Group = &refCopy
			cell.Booked = booked[id]
			cell.Selectable = !cell.Booked
		}
		cells = append(cells, cell)
	}
	return cells
}
