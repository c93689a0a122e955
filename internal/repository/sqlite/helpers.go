package sqlite

import (
	"database/sql"
	"strings"

	"vipgraph/internal/domain"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ============================================================================
// Null Type Conversion Helpers
// ============================================================================

// nullToInt64 safely converts sql.NullInt64 to int64
func nullToInt64(ni sql.NullInt64) int64 {
	if ni.Valid {
		return ni.Int64
	}
	return 0
}

// int64ToNull converts int64 to sql.NullInt64, treating 0 as NULL
func int64ToNull(v int64) sql.NullInt64 {
	if v == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: v, Valid: true}
}

// boolToInt converts bool to the 0/1 form SQLite stores
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// placeholders returns n comma-separated SQL placeholders
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// isUniqueViolation reports whether err is a SQLite unique constraint error
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// ============================================================================
// Row Scanners
// ============================================================================
//
// Column order must match between each *Columns constant and its scan
// function; SELECT queries always use the constants.

const companyColumns = `id, name, street, house_number, postal_code, city, created_at`

func scanCompany(s rowScanner) (*domain.Company, error) {
	var c domain.Company
	if err := s.Scan(&c.ID, &c.Name, &c.Street, &c.HouseNumber, &c.PostalCode, &c.City, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}

const userColumns = `id, email, password_hash, is_superadmin, company_id`

func scanUser(s rowScanner) (*domain.User, error) {
	var (
		u         domain.User
		super     int
		companyID sql.NullInt64
	)
	if err := s.Scan(&u.ID, &u.Email, &u.PasswordHash, &super, &companyID); err != nil {
		return nil, err
	}
	u.IsSuperadmin = super != 0
	u.CompanyID = nullToInt64(companyID)
	return &u, nil
}

const recordColumns = `id, company_id, name, description, group_name, created_at`

func scanRecord(s rowScanner) (*domain.Record, error) {
	var r domain.Record
	if err := s.Scan(&r.ID, &r.CompanyID, &r.Name, &r.Description, &r.Group, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.CreatedAt = r.CreatedAt.UTC()
	return &r, nil
}

const relationColumns = `id, a_id, b_id, company_id, created_at`

func scanRelation(s rowScanner) (*domain.Relation, error) {
	var rel domain.Relation
	if err := s.Scan(&rel.ID, &rel.A, &rel.B, &rel.CompanyID, &rel.CreatedAt); err != nil {
		return nil, err
	}
	rel.CreatedAt = rel.CreatedAt.UTC()
	return &rel, nil
}
