package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "touring/internal/config"
	"touring/internal/domain"
	"touring/internal/domain/models"
)

type ReservationRepository struct {
	DB *sql.DB
}

func (r ReservationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Book takes one unit of kind/resID for the customer. The inventory row is
// locked for the duration so num_available and the reservation row move
// together.
func (r ReservationRepository) Book(customerID int64, kind models.ReservationKind, resID string) error {
	t, err := tableFor(kind)
	if err != nil {
		return domain.ValidationError{Field: "kind", Msg: err.Error()}
	}

	tx, err := r.db().Begin()
	if err != nil {
		return fmt.Errorf("begin booking: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// ids compare case-insensitively in MySQL; store the catalog's spelling
	var (
		catalogID string
		available uint32
	)
	err = tx.QueryRow(
		fmt.Sprintf(`SELECT %s, num_available FROM %s WHERE %s=? FOR UPDATE`, t.idCol, t.name, t.idCol), resID,
	).Scan(&catalogID, &available)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: kind.String(), ID: resID, Err: err}
	}
	if err != nil {
		return fmt.Errorf("lock %s %s: %w", kind, resID, err)
	}
	if available == 0 {
		return domain.ConflictError{Resource: kind.String(), Msg: catalogID + " is sold out"}
	}

	if _, err := tx.Exec(
		fmt.Sprintf(`UPDATE %s SET num_available = num_available - 1 WHERE %s=?`, t.name, t.idCol), catalogID,
	); err != nil {
		return fmt.Errorf("take %s %s: %w", kind, catalogID, err)
	}
	if _, err := tx.Exec(
		`INSERT INTO reservations (customer_id, res_type, res_id) VALUES (?, ?, ?)`,
		customerID, uint8(kind), catalogID,
	); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit booking: %w", err)
	}
	return nil
}

// Cancel removes one of the customer's reservations for kind/resID and
// returns the unit to inventory.
func (r ReservationRepository) Cancel(customerID int64, kind models.ReservationKind, resID string) error {
	t, err := tableFor(kind)
	if err != nil {
		return domain.ValidationError{Field: "kind", Msg: err.Error()}
	}

	tx, err := r.db().Begin()
	if err != nil {
		return fmt.Errorf("begin cancel: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		reservationID int64
		storedID      string
	)
	err = tx.QueryRow(`
		SELECT id, res_id FROM reservations
		WHERE customer_id=? AND res_type=? AND res_id=?
		ORDER BY id LIMIT 1 FOR UPDATE
	`, customerID, uint8(kind), resID).Scan(&reservationID, &storedID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: kind.String() + " reservation", ID: resID, Err: err}
	}
	if err != nil {
		return fmt.Errorf("find reservation: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM reservations WHERE id=?`, reservationID); err != nil {
		return fmt.Errorf("delete reservation %d: %w", reservationID, err)
	}
	res, err := tx.Exec(
		fmt.Sprintf(`UPDATE %s SET num_available = num_available + 1 WHERE %s=? AND num_available < %s`, t.name, t.idCol, t.totalCol),
		storedID,
	)
	if err != nil {
		return fmt.Errorf("release %s %s: %w", kind, storedID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release %s %s: %w", kind, storedID, err)
	}
	if n == 0 {
		return domain.ConflictError{Resource: kind.String(), Msg: storedID + " has no booked unit to release"}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cancel: %w", err)
	}
	return nil
}

func (r ReservationRepository) FlightsByCustomer(customerID int64) ([]models.FlightLeg, error) {
	rows, err := r.db().Query(`
		SELECT f.flight_num, f.price, f.from_city, f.arrive_city
		FROM flights f
		JOIN reservations r ON r.res_id = f.flight_num
		WHERE r.customer_id=? AND r.res_type=?
		ORDER BY r.id
	`, customerID, uint8(models.KindFlight))
	if err != nil {
		return nil, fmt.Errorf("flights of customer %d: %w", customerID, err)
	}
	return scanFlights(rows)
}

func (r ReservationRepository) HotelsByCustomer(customerID int64) ([]models.HotelStay, error) {
	rows, err := r.db().Query(`
		SELECT h.hotel_num, h.location, h.price
		FROM hotels h
		JOIN reservations r ON r.res_id = h.hotel_num
		WHERE r.customer_id=? AND r.res_type=?
		ORDER BY r.id
	`, customerID, uint8(models.KindHotel))
	if err != nil {
		return nil, fmt.Errorf("hotels of customer %d: %w", customerID, err)
	}
	return scanHotels(rows)
}

func (r ReservationRepository) BusesByCustomer(customerID int64) ([]models.BusLeg, error) {
	rows, err := r.db().Query(`
		SELECT b.bus_num, b.location, b.price
		FROM buses b
		JOIN reservations r ON r.res_id = b.bus_num
		WHERE r.customer_id=? AND r.res_type=?
		ORDER BY r.id
	`, customerID, uint8(models.KindBus))
	if err != nil {
		return nil, fmt.Errorf("buses of customer %d: %w", customerID, err)
	}
	return scanBuses(rows)
}

// Aggregates counts reservations per (res_type, res_id) across all customers.
func (r ReservationRepository) Aggregates() ([]models.ReservationAggregate, error) {
	rows, err := r.db().Query(`
		SELECT res_type, res_id, COUNT(*)
		FROM reservations
		GROUP BY res_type, res_id
		ORDER BY res_type, res_id
	`)
	if err != nil {
		return nil, fmt.Errorf("aggregate reservations: %w", err)
	}
	defer rows.Close()

	out := []models.ReservationAggregate{}
	for rows.Next() {
		var (
			kind uint8
			agg  models.ReservationAggregate
		)
		if err := rows.Scan(&kind, &agg.ResID, &agg.Booked); err != nil {
			return out, fmt.Errorf("scan aggregate: %w", err)
		}
		agg.Kind = models.ReservationKind(kind)
		out = append(out, agg)
	}
	return out, rows.Err()
}
