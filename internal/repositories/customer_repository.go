package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	intconfig "touring/internal/config"
	"touring/internal/domain"
	"touring/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

type CustomerRepository struct {
	DB *sql.DB
}

func (r CustomerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CustomerRepository) Exists(id int64) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM customers WHERE id=?`, id).Scan(&n); err != nil {
		return false, fmt.Errorf("count customer %d: %w", id, err)
	}
	return n > 0, nil
}

func (r CustomerRepository) GetByID(id int64) (models.Customer, error) {
	c := models.Customer{ID: id}
	err := r.db().QueryRow(`SELECT name FROM customers WHERE id=? LIMIT 1`, id).Scan(&c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, domain.NotFoundError{Resource: "customer", ID: strconv.FormatInt(id, 10), Err: err}
	}
	if err != nil {
		return models.Customer{}, fmt.Errorf("get customer %d: %w", id, err)
	}
	return c, nil
}

// Create inserts a customer; a taken id is a ConflictError.
func (r CustomerRepository) Create(c models.Customer) error {
	_, err := r.db().Exec(`INSERT INTO customers (id, name) VALUES (?, ?)`, c.ID, c.Name)
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return domain.ConflictError{Resource: "customer", Msg: "id already registered", Err: err}
	}
	if err != nil {
		return fmt.Errorf("insert customer %d: %w", c.ID, err)
	}
	return nil
}
