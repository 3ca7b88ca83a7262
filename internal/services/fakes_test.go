package services

import (
	"errors"

	"touring/internal/domain"
	"touring/internal/domain/models"
)

var errStore = errors.New("store down")

type fakeCustomers struct {
	byID map[int64]models.Customer
	err  error
}

func (f *fakeCustomers) Exists(id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeCustomers) GetByID(id int64) (models.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return models.Customer{}, domain.NotFoundError{Resource: "customer"}
	}
	return c, nil
}

func (f *fakeCustomers) Create(c models.Customer) error {
	if _, ok := f.byID[c.ID]; ok {
		return domain.ConflictError{Resource: "customer", Msg: "id already registered"}
	}
	if f.byID == nil {
		f.byID = map[int64]models.Customer{}
	}
	f.byID[c.ID] = c
	return nil
}

type fakeCatalog struct {
	flights []models.FlightLeg
	snap    models.InventorySnapshot
	err     error
}

func (f *fakeCatalog) ListFlights() ([]models.FlightLeg, error) { return f.flights, f.err }
func (f *fakeCatalog) ListHotels() ([]models.HotelStay, error)  { return nil, f.err }
func (f *fakeCatalog) ListBuses() ([]models.BusLeg, error)      { return nil, f.err }
func (f *fakeCatalog) InventorySnapshot() (models.InventorySnapshot, error) {
	return f.snap, f.err
}

type bookCall struct {
	customerID int64
	kind       models.ReservationKind
	resID      string
}

type fakeReservations struct {
	path   models.TravelPath
	aggs   []models.ReservationAggregate
	booked []bookCall
	cancel []bookCall
	err    error
}

func (f *fakeReservations) Book(customerID int64, kind models.ReservationKind, resID string) error {
	if f.err != nil {
		return f.err
	}
	f.booked = append(f.booked, bookCall{customerID, kind, resID})
	return nil
}

func (f *fakeReservations) Cancel(customerID int64, kind models.ReservationKind, resID string) error {
	if f.err != nil {
		return f.err
	}
	f.cancel = append(f.cancel, bookCall{customerID, kind, resID})
	return nil
}

func (f *fakeReservations) FlightsByCustomer(int64) ([]models.FlightLeg, error) {
	return f.path.Flights, f.err
}
func (f *fakeReservations) HotelsByCustomer(int64) ([]models.HotelStay, error) {
	return f.path.Hotels, f.err
}
func (f *fakeReservations) BusesByCustomer(int64) ([]models.BusLeg, error) {
	return f.path.Buses, f.err
}
func (f *fakeReservations) Aggregates() ([]models.ReservationAggregate, error) {
	return f.aggs, f.err
}

func alice() *fakeCustomers {
	return &fakeCustomers{byID: map[int64]models.Customer{7: {ID: 7, Name: "Alice"}}}
}
