package models

// ReservationAggregate is the number of reservations for one (kind, id),
// grouped across all customers.
type ReservationAggregate struct {
	Kind   ReservationKind `json:"kind"`
	ResID  string          `json:"res_id"`
	Booked uint32          `json:"booked"`
}

// InventoryRecord holds total and remaining capacity for one bookable entity.
type InventoryRecord struct {
	ResID     string `json:"res_id"`
	Total     uint32 `json:"total"`
	Available uint32 `json:"available"`
}

// InventoryKey addresses an InventoryRecord.
type InventoryKey struct {
	Kind  ReservationKind
	ResID string
}

// InventorySnapshot is a point-in-time copy of every inventory row.
type InventorySnapshot map[InventoryKey]InventoryRecord

// Lookup returns the record for (kind, id) if present.
func (s InventorySnapshot) Lookup(kind ReservationKind, resID string) (InventoryRecord, bool) {
	rec, ok := s[InventoryKey{Kind: kind, ResID: resID}]
	return rec, ok
}
