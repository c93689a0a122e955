package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"vipgraph/internal/domain"

	_ "modernc.org/sqlite"
)

// Repository implements repository.Repository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository
func New(dbPath string) (*Repository, error) {
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An in-memory database exists per connection; pin the pool to one so
	// every caller sees the same store.
	if strings.Contains(dbPath, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS companies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		street TEXT NOT NULL DEFAULT '',
		house_number TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_superadmin INTEGER NOT NULL DEFAULT 0,
		company_id INTEGER REFERENCES companies(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		company_id INTEGER NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		group_name TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS relations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		a_id INTEGER NOT NULL REFERENCES records(id) ON DELETE CASCADE,
		b_id INTEGER NOT NULL REFERENCES records(id) ON DELETE CASCADE,
		company_id INTEGER NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (a_id, b_id)
	);

	CREATE INDEX IF NOT EXISTS idx_users_company ON users(company_id);
	CREATE INDEX IF NOT EXISTS idx_records_company ON records(company_id);
	CREATE INDEX IF NOT EXISTS idx_relations_company ON relations(company_id);
	`

	_, err := r.db.Exec(schema)
	return err
}

// CreateCompany inserts a company and assigns its id
func (r *Repository) CreateCompany(ctx context.Context, c *domain.Company) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO companies (name, street, house_number, postal_code, city, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.Name, c.Street, c.HouseNumber, c.PostalCode, c.City, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert company: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read company id: %w", err)
	}
	c.ID = id
	return nil
}

// GetCompany retrieves a single company by ID, nil when absent
func (r *Repository) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+companyColumns+` FROM companies WHERE id = ?
	`, id)

	c, err := scanCompany(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query company: %w", err)
	}
	return c, nil
}

// ListCompanies returns all companies, newest first
func (r *Repository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+companyColumns+` FROM companies ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	companies := make([]domain.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

// CreateUser inserts a user and assigns its id
func (r *Repository) CreateUser(ctx context.Context, u *domain.User) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (email, password_hash, is_superadmin, company_id)
		VALUES (?, ?, ?, ?)
	`, u.Email, u.PasswordHash, boolToInt(u.IsSuperadmin), int64ToNull(u.CompanyID))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	u.ID = id
	return nil
}

// GetUser retrieves a single user by ID, nil when absent
func (r *Repository) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = ?
	`, id)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// GetUserByEmail retrieves a single user by email, nil when absent
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE email = ?
	`, email)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// ListUsers returns all users, newest first
func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+` FROM users ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// CreateRecord inserts a record and assigns its id
func (r *Repository) CreateRecord(ctx context.Context, rec *domain.Record) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO records (company_id, name, description, group_name, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, rec.CompanyID, rec.Name, rec.Description, rec.Group, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read record id: %w", err)
	}
	rec.ID = id
	return nil
}

// ListRecords returns a company's records, newest first
func (r *Repository) ListRecords(ctx context.Context, companyID int64) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+recordColumns+` FROM records
		WHERE company_id = ?
		ORDER BY created_at DESC, id DESC
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// CountRecords returns how many of ids are records owned by companyID
func (r *Repository) CountRecords(ctx context.Context, companyID int64, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`
		SELECT COUNT(*) FROM records
		WHERE company_id = ? AND id IN (%s)
	`, placeholders(len(ids)))

	args := make([]interface{}, 0, len(ids)+1)
	args = append(args, companyID)
	for _, id := range ids {
		args = append(args, id)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// InsertRelation inserts a canonical-form relation. Reports false without
// error when the pair already exists; the ON CONFLICT clause makes the
// check-and-insert atomic against the unique (a_id, b_id) index, so a
// concurrent duplicate insert lands here as a no-op rather than an error.
func (r *Repository) InsertRelation(ctx context.Context, rel *domain.Relation) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO relations (a_id, b_id, company_id, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (a_id, b_id) DO NOTHING
	`, rel.A, rel.B, rel.CompanyID, rel.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert relation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("failed to read relation id: %w", err)
	}
	rel.ID = id
	return true, nil
}

// DeleteRelation removes a relation scoped to companyID. A foreign
// company's relation id is indistinguishable from a missing one.
func (r *Repository) DeleteRelation(ctx context.Context, companyID, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM relations WHERE id = ? AND company_id = ?
	`, id, companyID)
	if err != nil {
		return false, fmt.Errorf("failed to delete relation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

// ListRelations returns a company's relations in stable id order
func (r *Repository) ListRelations(ctx context.Context, companyID int64) ([]domain.Relation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+relationColumns+` FROM relations
		WHERE company_id = ?
		ORDER BY id
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query relations: %w", err)
	}
	defer rows.Close()

	relations := make([]domain.Relation, 0)
	for rows.Next() {
		rel, err := scanRelation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan relation: %w", err)
		}
		relations = append(relations, *rel)
	}
	return relations, rows.Err()
}

// DeleteCompany removes a company; users, records and relations cascade
func (r *Repository) DeleteCompany(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
