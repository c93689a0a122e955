package service

import (
	"context"
	"fmt"
	"strings"

	"vipgraph/internal/domain"
	"vipgraph/internal/repository"
)

// RecordService provides tenant-scoped record and relation operations.
type RecordService struct {
	repo     repository.Repository
	eventBus *EventBus
}

// NewRecordService creates a new record service
func NewRecordService(repo repository.Repository, eventBus *EventBus) *RecordService {
	return &RecordService{
		repo:     repo,
		eventBus: eventBus,
	}
}

// CreateRecord creates a record under the caller's company.
func (s *RecordService) CreateRecord(ctx context.Context, auth domain.AuthContext, name, description, group string) (*domain.Record, error) {
	if !auth.CanActAsCompanyUser() {
		return nil, fmt.Errorf("record creation requires a company user: %w", domain.ErrAuthorization)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", domain.ErrValidation)
	}

	rec := domain.NewRecord(auth.CompanyID, name, strings.TrimSpace(description), strings.TrimSpace(group))
	if err := s.repo.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}

	s.eventBus.Publish(Event{
		Type:      EventRecordCreated,
		CompanyID: auth.CompanyID,
		Payload:   rec,
	})

	return rec, nil
}

// ListRecords returns the caller's company records, newest first.
func (s *RecordService) ListRecords(ctx context.Context, auth domain.AuthContext) ([]domain.Record, error) {
	if !auth.CanActAsCompanyUser() {
		return nil, fmt.Errorf("record listing requires a company user: %w", domain.ErrAuthorization)
	}
	return s.repo.ListRecords(ctx, auth.CompanyID)
}

// CreateRelation connects two of the caller's records with an undirected
// relation. Repeating the call for the same pair, in either argument order,
// is a safe no-op: the second return value reports whether a new relation
// was created (false means the pair already existed).
func (s *RecordService) CreateRelation(ctx context.Context, auth domain.AuthContext, id1, id2 int64) (*domain.Relation, bool, error) {
	if !auth.CanActAsCompanyUser() {
		return nil, false, fmt.Errorf("relation creation requires a company user: %w", domain.ErrAuthorization)
	}

	if id1 == id2 {
		return nil, false, domain.ErrSelfRelation
	}

	lo, hi := domain.NormalizePair(id1, id2)

	// Both endpoints must be records of the caller's company. A count of
	// matches covers missing and foreign ids alike.
	count, err := s.repo.CountRecords(ctx, auth.CompanyID, []int64{lo, hi})
	if err != nil {
		return nil, false, fmt.Errorf("validate endpoints: %w", err)
	}
	if count != 2 {
		return nil, false, domain.ErrInvalidEndpoints
	}

	rel := domain.NewRelation(auth.CompanyID, lo, hi)
	created, err := s.repo.InsertRelation(ctx, rel)
	if err != nil {
		return nil, false, err
	}
	if !created {
		return rel, false, nil
	}

	s.eventBus.Publish(Event{
		Type:      EventRelationCreated,
		CompanyID: auth.CompanyID,
		Payload:   rel,
	})

	return rel, true, nil
}

// DeleteRelation removes a relation owned by the caller's company. A
// relation under another company is reported as not found.
func (s *RecordService) DeleteRelation(ctx context.Context, auth domain.AuthContext, relationID int64) error {
	if !auth.CanActAsCompanyUser() {
		return fmt.Errorf("relation deletion requires a company user: %w", domain.ErrAuthorization)
	}

	deleted, err := s.repo.DeleteRelation(ctx, auth.CompanyID, relationID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("relation %d: %w", relationID, domain.ErrNotFound)
	}

	s.eventBus.Publish(Event{
		Type:      EventRelationDeleted,
		CompanyID: auth.CompanyID,
		Payload:   map[string]int64{"relation_id": relationID},
	})

	return nil
}

// ListRelations returns the caller's company relations.
func (s *RecordService) ListRelations(ctx context.Context, auth domain.AuthContext) ([]domain.Relation, error) {
	if !auth.CanActAsCompanyUser() {
		return nil, fmt.Errorf("relation listing requires a company user: %w", domain.ErrAuthorization)
	}
	return s.repo.ListRelations(ctx, auth.CompanyID)
}
