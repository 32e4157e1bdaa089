package grid

// Selection is the set of slot ids a visitor has picked. It lives only for
// the booking dialog's lifetime and is never persisted; transitions return a
// new value and leave the input untouched.
type Selection map[int]bool

// Toggle flips a slot's membership. Unselectable slots (unassigned or
// booked) are a no-op and the original selection is returned unchanged.
func Toggle(sel Selection, id int, index map[int]Ref, booked map[int]bool) Selection {
	if !Available(id, index, booked) {
		return sel
	}
	next := make(Selection, len(sel)+1)
	for k, v := range sel {
		next[k] = v
	}
	if next[id] {
		delete(next, id)
	} else {
		next[id] = true
	}
	return next
}

// IDs returns the selected slot ids in ascending order-independent form.
func (s Selection) IDs() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

// UnitSelection maps an apartment unit type to the quantity picked.
type UnitSelection map[string]int

// Adjust changes a unit's quantity by delta, clamped to [0, max] (max <= 0
// means unlimited). A quantity of zero removes the unit from the selection.
func Adjust(sel UnitSelection, unitType string, delta, max int) UnitSelection {
	next := make(UnitSelection, len(sel)+1)
	for k, v := range sel {
		next[k] = v
	}
	qty := next[unitType] + delta
	if qty < 0 {
		qty = 0
	}
	if max > 0 && qty > max {
		qty = max
	}
	if qty == 0 {
		delete(next, unitType)
	} else {
		next[unitType] = qty
	}
	return next
}
