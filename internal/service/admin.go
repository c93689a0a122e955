package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"vipgraph/internal/domain"
	"vipgraph/internal/repository"
)

// AdminService provides the superadmin company and user administration.
type AdminService struct {
	repo repository.Repository
}

// NewAdminService creates a new admin service
func NewAdminService(repo repository.Repository) *AdminService {
	return &AdminService{repo: repo}
}

// CreateCompany registers a new tenant.
func (s *AdminService) CreateCompany(ctx context.Context, auth domain.AuthContext, name, street, houseNumber, postalCode, city string) (*domain.Company, error) {
	if !auth.IsSuperadmin {
		return nil, fmt.Errorf("company creation requires superadmin: %w", domain.ErrAuthorization)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("company name is required: %w", domain.ErrValidation)
	}

	c := &domain.Company{
		Name:        name,
		Street:      strings.TrimSpace(street),
		HouseNumber: strings.TrimSpace(houseNumber),
		PostalCode:  strings.TrimSpace(postalCode),
		City:        strings.TrimSpace(city),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.CreateCompany(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCompanies returns all tenants, newest first.
func (s *AdminService) ListCompanies(ctx context.Context, auth domain.AuthContext) ([]domain.Company, error) {
	if !auth.IsSuperadmin {
		return nil, fmt.Errorf("company listing requires superadmin: %w", domain.ErrAuthorization)
	}
	return s.repo.ListCompanies(ctx)
}

// CreateUser registers an account. Superadmins carry no company; company
// users must name an existing one.
func (s *AdminService) CreateUser(ctx context.Context, auth domain.AuthContext, email, password string, companyID int64, isSuperadmin bool) (*domain.User, error) {
	if !auth.IsSuperadmin {
		return nil, fmt.Errorf("user creation requires superadmin: %w", domain.ErrAuthorization)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", domain.ErrValidation)
	}

	if isSuperadmin {
		companyID = 0
	} else {
		if companyID == 0 {
			return nil, fmt.Errorf("company is required for company users: %w", domain.ErrValidation)
		}
		company, err := s.repo.GetCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, fmt.Errorf("company %d does not exist: %w", companyID, domain.ErrValidation)
		}
	}

	if existing, err := s.repo.GetUserByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	u := &domain.User{
		Email:        email,
		IsSuperadmin: isSuperadmin,
		CompanyID:    companyID,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ListUsers returns all accounts, newest first.
func (s *AdminService) ListUsers(ctx context.Context, auth domain.AuthContext) ([]domain.User, error) {
	if !auth.IsSuperadmin {
		return nil, fmt.Errorf("user listing requires superadmin: %w", domain.ErrAuthorization)
	}
	return s.repo.ListUsers(ctx)
}

// EnsureSuperadmin creates the initial superadmin account if the email is
// not taken yet. Called once at startup, before any request is served.
func (s *AdminService) EnsureSuperadmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	u := &domain.User{Email: email, IsSuperadmin: true}
	if err := u.SetPassword(password); err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return err
	}

	log.Printf("Created initial superadmin: %s", email)
	return nil
}
