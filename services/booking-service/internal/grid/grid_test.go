package grid

import "testing"

func fp(v float64) *float64 { return &v }

func TestBuildIndex_LaterGroupWinsOnCollision(t *testing.T) {
	groups := []Group{
		{IDs: []int{1, 2, 3}, Color: "#fff"},
		{IDs: []int{3, 4}, Color: "#000"},
	}
	index := BuildIndex(groups)
	if len(index) != 4 {
		t.Fatalf("expected 4 indexed slots, got %d", len(index))
	}
	if index[1].Color != "#fff" {
		t.Fatalf("slot 1 belongs to the first group, got color %q", index[1].Color)
	}
	if index[3].Color != "#000" {
		t.Fatalf("slot 3 collision resolves to the later group, got color %q", index[3].Color)
	}
}

func TestBuildIndex_IgnoresNonPositiveIDs(t *testing.T) {
	index := BuildIndex([]Group{{IDs: []int{0, -2, 5}}})
	if len(index) != 1 {
		t.Fatalf("expected only slot 5 indexed, got %d entries", len(index))
	}
}

func TestRows(t *testing.T) {
	if rows := Rows(nil); rows != 0 {
		t.Fatalf("no groups means no rows, got %d", rows)
	}
	if rows := Rows([]Group{{IDs: []int{1, 10}}}); rows != 1 {
		t.Fatalf("max id 10 fits one row, got %d", rows)
	}
	if rows := Rows([]Group{{IDs: []int{7}}, {IDs: []int{23}}}); rows != 3 {
		t.Fatalf("max id 23 needs 3 rows, got %d", rows)
	}
}

func TestAvailable(t *testing.T) {
	index := BuildIndex([]Group{{IDs: []int{1, 2, 3, 4, 5}}})
	booked := BookedSet([]int{2, 4})

	for _, id := range []int{1, 3, 5} {
		if !Available(id, index, booked) {
			t.Fatalf("slot %d should be available", id)
		}
	}
	for _, id := range []int{2, 4} {
		if Available(id, index, booked) {
			t.Fatalf("slot %d is booked", id)
		}
	}
	// Slot 6 has no owning group: never bookable even though not booked.
	if Available(6, index, booked) {
		t.Fatal("unassigned slot must not be bookable")
	}
}

func TestCells_RendersUnassignedInRange(t *testing.T) {
	groups := []Group{{IDs: []int{1, 12}, Price: fp(250)}}
	cells := Cells(groups, BookedSet([]int{12}))
	if len(cells) != 20 {
		t.Fatalf("max id 12 renders 2 full rows (20 cells), got %d", len(cells))
	}
	if !cells[0].Assigned || !cells[0].Selectable {
		t.Fatalf("cell 1 should be assigned and selectable: %+v", cells[0])
	}
	if cells[1].Assigned || cells[1].Selectable {
		t.Fatalf("cell 2 is present but unassigned: %+v", cells[1])
	}
	if !cells[11].Assigned || cells[11].Selectable || !cells[11].Booked {
		t.Fatalf("cell 12 is booked: %+v", cells[11])
	}
	if cells[0].Group == nil || cells[0].Group.Price == nil || *cells[0].Group.Price != 250 {
		t.Fatalf("assigned cell carries group metadata: %+v", cells[0].Group)
	}
}

func TestToggle(t *testing.T) {
	index := BuildIndex([]Group{{IDs: []int{1, 2, 3}}})
	booked := BookedSet([]int{2})

	sel := Selection{}
	sel = Toggle(sel, 1, index, booked)
	if !sel[1] {
		t.Fatal("slot 1 should be selected after toggle on")
	}

	// Toggling a booked slot is a no-op.
	next := Toggle(sel, 2, index, booked)
	if len(next) != 1 || !next[1] {
		t.Fatalf("booked slot toggle must not change selection: %v", next)
	}

	// Toggling an unassigned slot is a no-op.
	next = Toggle(sel, 9, index, booked)
	if len(next) != 1 {
		t.Fatalf("unassigned slot toggle must not change selection: %v", next)
	}

	// Toggle off removes the slot.
	next = Toggle(sel, 1, index, booked)
	if len(next) != 0 {
		t.Fatalf("toggle off should remove slot: %v", next)
	}
	// The original selection is untouched.
	if !sel[1] {
		t.Fatal("transitions must not mutate their input")
	}
}

func TestAdjust_ClampsQuantity(t *testing.T) {
	sel := UnitSelection{}
	sel = Adjust(sel, "studio", 1, 2)
	sel = Adjust(sel, "studio", 1, 2)
	sel = Adjust(sel, "studio", 1, 2)
	if sel["studio"] != 2 {
		t.Fatalf("quantity clamps at the unit count, got %d", sel["studio"])
	}

	sel = Adjust(sel, "studio", -1, 2)
	if sel["studio"] != 1 {
		t.Fatalf("expected 1 after decrement, got %d", sel["studio"])
	}

	sel = Adjust(sel, "studio", -5, 2)
	if _, ok := sel["studio"]; ok {
		t.Fatalf("zero quantity removes the unit entirely: %v", sel)
	}

	// Decrementing an absent unit stays absent.
	sel = Adjust(sel, "suite", -1, 0)
	if len(sel) != 0 {
		t.Fatalf("expected empty selection, got %v", sel)
	}
}
