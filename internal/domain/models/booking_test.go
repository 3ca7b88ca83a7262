package models

import (
	"encoding/json"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want ReservationKind
	}{
		{"1", KindFlight},
		{" Flights ", KindFlight},
		{"hotel", KindHotel},
		{"2", KindHotel},
		{"buses", KindBus},
		{"3", KindBus},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseKind("train"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestReservationKindJSON(t *testing.T) {
	b, err := json.Marshal(ReservationAggregate{Kind: KindBus, ResID: "B1", Booked: 2})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"kind":"bus","res_id":"B1","booked":2}` {
		t.Fatalf("got %s", b)
	}
}

func TestInventorySnapshotLookupKeysByKind(t *testing.T) {
	snap := InventorySnapshot{
		{Kind: KindFlight, ResID: "X1"}: {ResID: "X1", Total: 10, Available: 9},
		{Kind: KindBus, ResID: "X1"}:    {ResID: "X1", Total: 4, Available: 4},
	}
	if rec, ok := snap.Lookup(KindBus, "X1"); !ok || rec.Total != 4 {
		t.Fatalf("bus lookup = %+v, %v", rec, ok)
	}
	if _, ok := snap.Lookup(KindHotel, "X1"); ok {
		t.Fatalf("hotel X1 must not exist")
	}
}
