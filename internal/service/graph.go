package service

import (
	"context"
	"fmt"

	"vipgraph/internal/domain"
	"vipgraph/internal/repository"
)

// GraphService produces the serialization-ready graph projection for the
// live view.
type GraphService struct {
	repo repository.Repository
}

// NewGraphService creates a new graph service
func NewGraphService(repo repository.Repository) *GraphService {
	return &GraphService{repo: repo}
}

// GetGraph returns one company's full node and edge set.
//
// Non-superadmins are pinned to their own company: requestedCompanyID is
// ignored, so no crafted request can read another tenant's graph. A
// superadmin must name the company explicitly; there is no default.
func (s *GraphService) GetGraph(ctx context.Context, auth domain.AuthContext, requestedCompanyID int64) (*domain.GraphSnapshot, error) {
	companyID := requestedCompanyID
	if !auth.IsSuperadmin {
		companyID = auth.CompanyID
	} else if companyID == 0 {
		return nil, fmt.Errorf("company_id required: %w", domain.ErrAuthorization)
	}
	if companyID == 0 {
		return nil, fmt.Errorf("caller has no company: %w", domain.ErrAuthorization)
	}

	records, err := s.repo.ListRecords(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	relations, err := s.repo.ListRelations(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list relations: %w", err)
	}

	return domain.DeriveGraph(companyID, records, relations), nil
}
