package repositories

import (
	"errors"
	"testing"

	"touring/internal/domain"
	"touring/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestInventorySnapshotReadsEveryKind(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT flight_num, num_seat, num_available FROM flights").
		WillReturnRows(sqlmock.NewRows([]string{"flight_num", "num_seat", "num_available"}).
			AddRow("F1", 10, 7))
	mock.ExpectQuery("SELECT hotel_num, num_rooms, num_available FROM hotels").
		WillReturnRows(sqlmock.NewRows([]string{"hotel_num", "num_rooms", "num_available"}).
			AddRow("H1", 5, 5))
	mock.ExpectQuery("SELECT bus_num, num_bus, num_available FROM buses").
		WillReturnRows(sqlmock.NewRows([]string{"bus_num", "num_bus", "num_available"}).
			AddRow("F1", 2, 1))

	snap, err := CatalogRepository{DB: db}.InventorySnapshot()
	if err != nil {
		t.Fatalf("InventorySnapshot: %v", err)
	}
	rec, ok := snap.Lookup(models.KindFlight, "F1")
	if !ok || rec.Total != 10 || rec.Available != 7 {
		t.Fatalf("flight F1 = %+v, %v", rec, ok)
	}
	if rec, ok := snap.Lookup(models.KindBus, "F1"); !ok || rec.Total != 2 {
		t.Fatalf("bus F1 must be keyed separately from flight F1: %+v", rec)
	}
	if _, ok := snap.Lookup(models.KindHotel, "H2"); ok {
		t.Fatalf("unexpected hotel H2")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInventorySnapshotPropagatesErrors(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM flights").WillReturnError(errors.New("gone"))

	if _, err := (CatalogRepository{DB: db}).InventorySnapshot(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestListCatalog(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM flights ORDER BY flight_num").
		WillReturnRows(sqlmock.NewRows([]string{"flight_num", "price", "from_city", "arrive_city"}).
			AddRow("F1", 900, "Beijing", "Shanghai"))
	mock.ExpectQuery("FROM hotels ORDER BY hotel_num").
		WillReturnRows(sqlmock.NewRows([]string{"hotel_num", "location", "price"}).
			AddRow("H1", "Shanghai", 300).
			AddRow("H2", "Beijing", 200))
	mock.ExpectQuery("FROM buses ORDER BY bus_num").
		WillReturnRows(sqlmock.NewRows([]string{"bus_num", "location", "price"}).
			AddRow("B1", "Beijing", 20))

	repo := CatalogRepository{DB: db}
	if f, err := repo.ListFlights(); err != nil || len(f) != 1 || f[0].Price != 900 {
		t.Fatalf("flights = %+v, err = %v", f, err)
	}
	if h, err := repo.ListHotels(); err != nil || len(h) != 2 {
		t.Fatalf("hotels = %+v, err = %v", h, err)
	}
	if b, err := repo.ListBuses(); err != nil || len(b) != 1 || b[0].Location != "Beijing" {
		t.Fatalf("buses = %+v, err = %v", b, err)
	}
}

func TestCustomerRepository(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM customers").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT name FROM customers").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Li Lei"))
	mock.ExpectQuery("SELECT name FROM customers").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))
	mock.ExpectExec("INSERT INTO customers").WithArgs(int64(3), "Li Lei").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectExec("INSERT INTO customers").WithArgs(int64(5), "Han Meimei").
		WillReturnResult(sqlmock.NewResult(5, 1))

	repo := CustomerRepository{DB: db}
	if ok, err := repo.Exists(3); err != nil || !ok {
		t.Fatalf("Exists(3) = %v, %v", ok, err)
	}
	if c, err := repo.GetByID(3); err != nil || c.Name != "Li Lei" {
		t.Fatalf("GetByID(3) = %+v, %v", c, err)
	}
	if _, err := repo.GetByID(4); !domain.IsNotFound(err) {
		t.Fatalf("GetByID(4) should be not found, got %v", err)
	}
	if err := repo.Create(models.Customer{ID: 3, Name: "Li Lei"}); !domain.IsConflict(err) {
		t.Fatalf("duplicate id should conflict, got %v", err)
	}
	if err := repo.Create(models.Customer{ID: 5, Name: "Han Meimei"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
