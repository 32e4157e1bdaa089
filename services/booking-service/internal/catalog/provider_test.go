package catalog

import (
	"testing"
)

func TestDecodeSnapshot(t *testing.T) {
	payload := []byte(`{
		"property": {
			"id": "p-1",
			"owner_id": "o-1",
			"status": "active",
			"category": "camp",
			"offer_type": "rent",
			"currency": "SAR",
			"insurance": 500,
			"groups": [
				{"ids": [1, 2, 3], "name": "front", "price": 900, "insurance": 250}
			],
			"units": [
				{"type": "studio", "title": "Studio", "count": 4}
			],
			"tour_windows": [
				{"from": "2026-03-01T09:00:00Z", "to": "2026-03-01T17:00:00Z"}
			]
		}
	}`)

	facts, err := decodeSnapshot(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if facts.PropertyID != "p-1" || facts.OwnerID != "o-1" || facts.Status != "active" {
		t.Fatalf("identity fields wrong: %+v", facts)
	}
	if facts.Insurance == nil || *facts.Insurance != 500 {
		t.Fatalf("insurance = %v", facts.Insurance)
	}
	if len(facts.Groups) != 1 || len(facts.Groups[0].IDs) != 3 || facts.Groups[0].Name != "front" {
		t.Fatalf("groups = %+v", facts.Groups)
	}
	if facts.Groups[0].Insurance == nil || *facts.Groups[0].Insurance != 250 {
		t.Fatalf("group insurance = %v", facts.Groups[0].Insurance)
	}
	if len(facts.Units) != 1 || facts.Units[0].Type != "studio" || facts.Units[0].Count != 4 {
		t.Fatalf("units = %+v", facts.Units)
	}
	if len(facts.Windows) != 1 || facts.Windows[0].From.Hour() != 9 {
		t.Fatalf("windows = %+v", facts.Windows)
	}
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	if _, err := decodeSnapshot([]byte("not json")); err == nil {
		t.Fatal("expected error")
	}
}
