package domain

import "time"

// Record is a named entity owned by exactly one company. The owning company
// never changes after creation.
type Record struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Group       string    `json:"group"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRecord creates a record with the current timestamp. The ID is assigned
// by the repository on insert.
func NewRecord(companyID int64, name, description, group string) *Record {
	return &Record{
		CompanyID:   companyID,
		Name:        name,
		Description: description,
		Group:       group,
		CreatedAt:   time.Now().UTC(),
	}
}
