package domain

import "time"

// Company is a tenant. It exclusively owns its users, records and relations;
// deleting a company cascades to all of them at the storage layer.
type Company struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Street      string    `json:"street,omitempty"`
	HouseNumber string    `json:"house_number,omitempty"`
	PostalCode  string    `json:"postal_code,omitempty"`
	City        string    `json:"city,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
