package checks

import (
	"fmt"

	"touring/internal/domain/models"
)

// InventoryLookup resolves the inventory row for a reservation target.
type InventoryLookup func(kind models.ReservationKind, resID string) (models.InventoryRecord, bool)

// Discrepancy describes one aggregate that does not match inventory.
type Discrepancy struct {
	Kind      models.ReservationKind `json:"kind"`
	ResID     string                 `json:"res_id"`
	Booked    uint32                 `json:"booked"`
	Missing   bool                   `json:"missing"`
	Total     uint32                 `json:"total"`
	Available uint32                 `json:"available"`
}

func (d Discrepancy) String() string {
	if d.Missing {
		return fmt.Sprintf("%s %s: %d reservations but no inventory row", d.Kind, d.ResID, d.Booked)
	}
	return fmt.Sprintf("%s %s: %d reservations, total %d, available %d", d.Kind, d.ResID, d.Booked, d.Total, d.Available)
}

// CheckInventory reports whether every aggregate matches its inventory row,
// i.e. total - available == booked. It stops at the first mismatch or missing
// row.
func CheckInventory(aggregates []models.ReservationAggregate, lookup InventoryLookup) bool {
	for _, agg := range aggregates {
		if _, ok := verify(agg, lookup); !ok {
			return false
		}
	}
	return true
}

// AuditInventory checks every aggregate and returns all mismatches. It agrees
// with CheckInventory: the result is empty exactly when CheckInventory is true.
func AuditInventory(aggregates []models.ReservationAggregate, lookup InventoryLookup) []Discrepancy {
	var out []Discrepancy
	for _, agg := range aggregates {
		if d, ok := verify(agg, lookup); !ok {
			out = append(out, d)
		}
	}
	return out
}

func verify(agg models.ReservationAggregate, lookup InventoryLookup) (Discrepancy, bool) {
	d := Discrepancy{Kind: agg.Kind, ResID: agg.ResID, Booked: agg.Booked}
	if lookup == nil {
		d.Missing = true
		return d, false
	}
	rec, found := lookup(agg.Kind, agg.ResID)
	if !found {
		d.Missing = true
		return d, false
	}
	d.Total, d.Available = rec.Total, rec.Available
	// available > total would wrap in unsigned arithmetic
	if rec.Available > rec.Total {
		return d, false
	}
	return d, rec.Total-rec.Available == agg.Booked
}
