package model

import (
	"encoding/json"
	"testing"
)

func TestNumeric_AcceptsNumberAndString(t *testing.T) {
	var u ApartmentUnit
	raw := `{"type":"studio","count":3,"rates":[{"period":"day","enabled":true,"price":"150.5"},{"period":"week","enabled":false,"price":900}]}`
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got := u.Rates[0].Price.Float(); got == nil || *got != 150.5 {
		t.Fatalf("quoted price should decode to 150.5, got %v", got)
	}
	if got := u.Rates[1].Price.Float(); got == nil || *got != 900 {
		t.Fatalf("plain price should decode to 900, got %v", got)
	}
}

func TestNumeric_NullAndEmptyString(t *testing.T) {
	var r PeriodRate
	if err := json.Unmarshal([]byte(`{"period":"day","price":null}`), &r); err != nil {
		t.Fatalf("null price must decode: %v", err)
	}
	if r.Price != nil {
		t.Fatalf("null should leave the pointer nil, got %v", *r.Price)
	}
	if err := json.Unmarshal([]byte(`{"period":"day","price":"abc"}`), &r); err == nil {
		t.Fatal("non-numeric string must fail to decode")
	}
}

func TestNumeric_FloatOnNil(t *testing.T) {
	var n *Numeric
	if n.Float() != nil {
		t.Fatal("nil Numeric converts to nil float")
	}
}
