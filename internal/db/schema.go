package db

import (
	"database/sql"
	"fmt"

	"touring/internal/utils"
)

// Table names shared by the repositories.
const (
	TableCustomers    = "customers"
	TableFlights      = "flights"
	TableHotels       = "hotels"
	TableBuses        = "buses"
	TableReservations = "reservations"
)

type tableDDL struct {
	name string
	ddl  string
}

var schema = []tableDDL{
	{TableCustomers, `
CREATE TABLE IF NOT EXISTS customers (
	id BIGINT NOT NULL PRIMARY KEY,
	name VARCHAR(255) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`},
	{TableFlights, `
CREATE TABLE IF NOT EXISTS flights (
	flight_num VARCHAR(50) NOT NULL PRIMARY KEY,
	price BIGINT NOT NULL DEFAULT 0,
	num_seat INT UNSIGNED NOT NULL DEFAULT 0,
	num_available INT UNSIGNED NOT NULL DEFAULT 0,
	from_city VARCHAR(100) NOT NULL,
	arrive_city VARCHAR(100) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`},
	{TableHotels, `
CREATE TABLE IF NOT EXISTS hotels (
	hotel_num VARCHAR(50) NOT NULL PRIMARY KEY,
	location VARCHAR(100) NOT NULL,
	price BIGINT NOT NULL DEFAULT 0,
	num_rooms INT UNSIGNED NOT NULL DEFAULT 0,
	num_available INT UNSIGNED NOT NULL DEFAULT 0
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`},
	{TableBuses, `
CREATE TABLE IF NOT EXISTS buses (
	bus_num VARCHAR(50) NOT NULL PRIMARY KEY,
	location VARCHAR(100) NOT NULL,
	price BIGINT NOT NULL DEFAULT 0,
	num_bus INT UNSIGNED NOT NULL DEFAULT 0,
	num_available INT UNSIGNED NOT NULL DEFAULT 0
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`},
	{TableReservations, `
CREATE TABLE IF NOT EXISTS reservations (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	customer_id BIGINT NOT NULL,
	res_type TINYINT UNSIGNED NOT NULL,
	res_id VARCHAR(50) NOT NULL,
	KEY idx_customer (customer_id, res_type),
	KEY idx_target (res_type, res_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`},
}

// EnsureSchema creates any missing table. Existing tables are left alone.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("db not available")
	}
	for _, t := range schema {
		if HasTable(db, t.name) {
			continue
		}
		if _, err := db.Exec(t.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
		utils.LogEvent("", "db", "create_table", t.name)
	}
	return nil
}
