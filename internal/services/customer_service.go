package services

import (
	"database/sql"
	"fmt"

	"touring/internal/domain"
	"touring/internal/domain/models"
	"touring/internal/repositories"
	"touring/internal/utils"
)

type CustomerService struct {
	Customers CustomerStore
}

func NewCustomerService(db *sql.DB) CustomerService {
	return CustomerService{Customers: repositories.CustomerRepository{DB: db}}
}

// Login opens a session for an existing customer.
func (s CustomerService) Login(id int64) (domain.Session, error) {
	if id <= 0 {
		return domain.Session{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	c, err := s.Customers.GetByID(id)
	if err != nil {
		return domain.Session{}, err
	}
	utils.LogEvent("", "customer", "login", fmt.Sprintf("customer=%d", id))
	return domain.Session{CustomerID: c.ID, Name: c.Name}, nil
}

// SignUp registers a new customer and opens a session for them.
func (s CustomerService) SignUp(id int64, name string) (domain.Session, error) {
	if id <= 0 {
		return domain.Session{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	name = utils.NormalizeSpace(name)
	if name == "" {
		return domain.Session{}, domain.ValidationError{Field: "name", Msg: "empty"}
	}
	if err := s.Customers.Create(models.Customer{ID: id, Name: name}); err != nil {
		return domain.Session{}, err
	}
	utils.LogEvent("", "customer", "sign_up", fmt.Sprintf("customer=%d", id))
	return domain.Session{CustomerID: id, Name: name}, nil
}
