package repository

import (
	"context"

	"vipgraph/internal/domain"
)

// Repository defines the interface for tenant graph data access.
//
// Every method acquires a connection from the underlying pool for the
// duration of the call and releases it on every exit path; no connection or
// transaction ever spans two calls.
type Repository interface {
	// Companies
	CreateCompany(ctx context.Context, c *domain.Company) error
	GetCompany(ctx context.Context, id int64) (*domain.Company, error) // nil, nil when absent
	ListCompanies(ctx context.Context) ([]domain.Company, error)       // newest first

	// Users
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id int64) (*domain.User, error)            // nil, nil when absent
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error) // nil, nil when absent
	ListUsers(ctx context.Context) ([]domain.User, error)

	// Records
	CreateRecord(ctx context.Context, r *domain.Record) error
	ListRecords(ctx context.Context, companyID int64) ([]domain.Record, error) // newest first
	// CountRecords returns how many of ids are records owned by companyID,
	// without fetching the full rows.
	CountRecords(ctx context.Context, companyID int64, ids []int64) (int, error)

	// Relations. InsertRelation reports false without error when the
	// canonical pair already exists; the uniqueness check is atomic at the
	// storage layer. DeleteRelation reports false when no relation with
	// that id exists under companyID.
	InsertRelation(ctx context.Context, rel *domain.Relation) (bool, error)
	DeleteRelation(ctx context.Context, companyID, id int64) (bool, error)
	ListRelations(ctx context.Context, companyID int64) ([]domain.Relation, error)

	// Close releases resources
	Close() error
}
