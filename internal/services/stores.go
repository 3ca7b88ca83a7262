package services

import "touring/internal/domain/models"

// CustomerStore is implemented by repositories.CustomerRepository.
type CustomerStore interface {
	Exists(id int64) (bool, error)
	GetByID(id int64) (models.Customer, error)
	Create(c models.Customer) error
}

// CatalogStore is implemented by repositories.CatalogRepository.
type CatalogStore interface {
	ListFlights() ([]models.FlightLeg, error)
	ListHotels() ([]models.HotelStay, error)
	ListBuses() ([]models.BusLeg, error)
	InventorySnapshot() (models.InventorySnapshot, error)
}

// ReservationStore is implemented by repositories.ReservationRepository.
type ReservationStore interface {
	Book(customerID int64, kind models.ReservationKind, resID string) error
	Cancel(customerID int64, kind models.ReservationKind, resID string) error
	FlightsByCustomer(customerID int64) ([]models.FlightLeg, error)
	HotelsByCustomer(customerID int64) ([]models.HotelStay, error)
	BusesByCustomer(customerID int64) ([]models.BusLeg, error)
	Aggregates() ([]models.ReservationAggregate, error)
}
