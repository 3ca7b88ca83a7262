package repositories

import (
	"database/sql"
	"fmt"

	intconfig "touring/internal/config"
	intdb "touring/internal/db"
	"touring/internal/domain/models"
)

// inventoryTable maps a reservation kind onto its catalog table.
type inventoryTable struct {
	name     string
	idCol    string
	totalCol string
}

var inventoryTables = map[models.ReservationKind]inventoryTable{
	models.KindFlight: {name: intdb.TableFlights, idCol: "flight_num", totalCol: "num_seat"},
	models.KindHotel:  {name: intdb.TableHotels, idCol: "hotel_num", totalCol: "num_rooms"},
	models.KindBus:    {name: intdb.TableBuses, idCol: "bus_num", totalCol: "num_bus"},
}

func tableFor(kind models.ReservationKind) (inventoryTable, error) {
	t, ok := inventoryTables[kind]
	if !ok {
		return inventoryTable{}, fmt.Errorf("no inventory table for %s", kind)
	}
	return t, nil
}

type CatalogRepository struct {
	DB *sql.DB
}

func (r CatalogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CatalogRepository) ListFlights() ([]models.FlightLeg, error) {
	rows, err := r.db().Query(`SELECT flight_num, price, from_city, arrive_city FROM flights ORDER BY flight_num`)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	return scanFlights(rows)
}

func (r CatalogRepository) ListHotels() ([]models.HotelStay, error) {
	rows, err := r.db().Query(`SELECT hotel_num, location, price FROM hotels ORDER BY hotel_num`)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	return scanHotels(rows)
}

func (r CatalogRepository) ListBuses() ([]models.BusLeg, error) {
	rows, err := r.db().Query(`SELECT bus_num, location, price FROM buses ORDER BY bus_num`)
	if err != nil {
		return nil, fmt.Errorf("list buses: %w", err)
	}
	return scanBuses(rows)
}

// InventorySnapshot reads every inventory row, one query per kind.
func (r CatalogRepository) InventorySnapshot() (models.InventorySnapshot, error) {
	snap := models.InventorySnapshot{}
	for _, kind := range models.Kinds {
		t, err := tableFor(kind)
		if err != nil {
			return nil, err
		}
		query := fmt.Sprintf(`SELECT %s, %s, num_available FROM %s`, t.idCol, t.totalCol, t.name)
		if err := r.readInventory(query, kind, snap); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

func (r CatalogRepository) readInventory(query string, kind models.ReservationKind, snap models.InventorySnapshot) error {
	rows, err := r.db().Query(query)
	if err != nil {
		return fmt.Errorf("read %s inventory: %w", kind, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec models.InventoryRecord
		if err := rows.Scan(&rec.ResID, &rec.Total, &rec.Available); err != nil {
			return fmt.Errorf("scan %s inventory: %w", kind, err)
		}
		snap[models.InventoryKey{Kind: kind, ResID: rec.ResID}] = rec
	}
	return rows.Err()
}

func scanFlights(rows *sql.Rows) ([]models.FlightLeg, error) {
	defer rows.Close()
	out := []models.FlightLeg{}
	for rows.Next() {
		var f models.FlightLeg
		if err := rows.Scan(&f.FlightNum, &f.Price, &f.FromCity, &f.ArriveCity); err != nil {
			return out, fmt.Errorf("scan flight: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func scanHotels(rows *sql.Rows) ([]models.HotelStay, error) {
	defer rows.Close()
	out := []models.HotelStay{}
	for rows.Next() {
		var h models.HotelStay
		if err := rows.Scan(&h.HotelNum, &h.Location, &h.Price); err != nil {
			return out, fmt.Errorf("scan hotel: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func scanBuses(rows *sql.Rows) ([]models.BusLeg, error) {
	defer rows.Close()
	out := []models.BusLeg{}
	for rows.Next() {
		var b models.BusLeg
		if err := rows.Scan(&b.BusNum, &b.Location, &b.Price); err != nil {
			return out, fmt.Errorf("scan bus: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
