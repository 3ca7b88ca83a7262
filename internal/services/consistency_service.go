package services

import (
	"database/sql"
	"fmt"

	"touring/internal/checks"
	"touring/internal/domain"
	"touring/internal/domain/models"
	"touring/internal/metrics"
	"touring/internal/repositories"
	"touring/internal/utils"
)

// ConsistencyService reconciles reservation counts against inventory.
type ConsistencyService struct {
	Catalog      CatalogStore
	Reservations ReservationStore
	Metrics      *metrics.Registry
}

func NewConsistencyService(db *sql.DB, m *metrics.Registry) ConsistencyService {
	return ConsistencyService{
		Catalog:      repositories.CatalogRepository{DB: db},
		Reservations: repositories.ReservationRepository{DB: db},
		Metrics:      m,
	}
}

// Run reports whether every reservation aggregate matches inventory.
// The error is only set when the snapshot could not be read.
func (s ConsistencyService) Run() (bool, error) {
	aggs, snap, err := s.load()
	if err != nil {
		return false, err
	}
	ok := checks.CheckInventory(aggs, snap.Lookup)
	if s.Metrics != nil {
		s.Metrics.ConsistencyChecks.WithLabelValues(metrics.Result(ok)).Inc()
	}
	utils.LogEvent("", "dbcc", "check", fmt.Sprintf("aggregates=%d inventory=%d consistent=%t", len(aggs), len(snap), ok))
	return ok, nil
}

// Verify is Run folded into a single error; an inconsistent database yields
// domain.ErrInconsistent.
func (s ConsistencyService) Verify() error {
	ok, err := s.Run()
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInconsistent
	}
	return nil
}

// Audit lists every aggregate that disagrees with inventory.
func (s ConsistencyService) Audit() ([]checks.Discrepancy, error) {
	aggs, snap, err := s.load()
	if err != nil {
		return nil, err
	}
	found := checks.AuditInventory(aggs, snap.Lookup)
	for _, d := range found {
		utils.LogEvent("", "dbcc", "discrepancy", d.String())
	}
	return found, nil
}

func (s ConsistencyService) load() ([]models.ReservationAggregate, models.InventorySnapshot, error) {
	aggs, err := s.Reservations.Aggregates()
	if err != nil {
		return nil, nil, domain.InternalError{Msg: "load reservation aggregates", Err: err}
	}
	snap, err := s.Catalog.InventorySnapshot()
	if err != nil {
		return nil, nil, domain.InternalError{Msg: "load inventory snapshot", Err: err}
	}
	return aggs, snap, nil
}
