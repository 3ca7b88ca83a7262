package domain

// Session carries the logged-in customer through every operation.
type Session struct {
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name,omitempty"`
}

// Valid reports whether the session names a customer.
func (s Session) Valid() bool {
	return s.CustomerID > 0
}
