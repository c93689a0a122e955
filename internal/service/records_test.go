package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vipgraph/internal/domain"
	"vipgraph/internal/repository/sqlite"
)

// newTestRepo creates an in-memory repository for service tests
func newTestRepo(t *testing.T) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

// seedCompany creates a company and returns a company-user auth context
func seedCompany(t *testing.T, repo *sqlite.Repository, name string) domain.AuthContext {
	t.Helper()
	c := &domain.Company{Name: name, CreatedAt: time.Now().UTC()}
	if err := repo.CreateCompany(context.Background(), c); err != nil {
		t.Fatalf("failed to create company: %v", err)
	}
	return domain.AuthContext{UserID: 1, CompanyID: c.ID}
}

func TestCreateRecord(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewRecordService(repo, NewEventBus())
	ctx := context.Background()
	auth := seedCompany(t, repo, "Acme")

	t.Run("creates with trimmed fields", func(t *testing.T) {
		rec, err := svc.CreateRecord(ctx, auth, "  Alpha  ", " first ", " g1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Name != "Alpha" || rec.Description != "first" || rec.Group != "g1" {
			t.Errorf("expected trimmed fields, got %+v", rec)
		}
		if rec.ID == 0 || rec.CompanyID != auth.CompanyID {
			t.Errorf("unexpected identity fields: %+v", rec)
		}
	})

	t.Run("whitespace-only name fails validation", func(t *testing.T) {
		_, err := svc.CreateRecord(ctx, auth, "   ", "", "")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("superadmin cannot create records", func(t *testing.T) {
		super := domain.AuthContext{UserID: 9, IsSuperadmin: true}
		_, err := svc.CreateRecord(ctx, super, "Nope", "", "")
		if !errors.Is(err, domain.ErrAuthorization) {
			t.Errorf("expected ErrAuthorization, got %v", err)
		}
	})

	t.Run("list is newest first", func(t *testing.T) {
		fresh := newTestRepo(t)
		freshSvc := NewRecordService(fresh, NewEventBus())
		a := seedCompany(t, fresh, "Order Inc")

		first, err := freshSvc.CreateRecord(ctx, a, "First", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := freshSvc.CreateRecord(ctx, a, "Second", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		records, err := freshSvc.ListRecords(ctx, a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].ID != second.ID || records[1].ID != first.ID {
			t.Errorf("expected newest first, got ids %d, %d", records[0].ID, records[1].ID)
		}
	})
}

func TestCreateRelation(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewRecordService(repo, NewEventBus())
	ctx := context.Background()
	auth := seedCompany(t, repo, "Acme")

	alpha, err := svc.CreateRecord(ctx, auth, "Alpha", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	beta, err := svc.CreateRecord(ctx, auth, "Beta", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("created then alreadyExists, either argument order", func(t *testing.T) {
		rel, created, err := svc.CreateRelation(ctx, auth, alpha.ID, beta.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created {
			t.Fatal("expected first call to create")
		}
		if rel.A >= rel.B {
			t.Errorf("expected canonical form, got (%d, %d)", rel.A, rel.B)
		}

		_, created, err = svc.CreateRelation(ctx, auth, beta.ID, alpha.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created {
			t.Fatal("expected reversed duplicate to report alreadyExists")
		}

		relations, err := svc.ListRelations(ctx, auth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(relations) != 1 {
			t.Fatalf("expected exactly 1 relation, got %d", len(relations))
		}
	})

	t.Run("self relation is rejected without touching storage", func(t *testing.T) {
		before, err := svc.ListRelations(ctx, auth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, _, err = svc.CreateRelation(ctx, auth, alpha.ID, alpha.ID)
		if !errors.Is(err, domain.ErrSelfRelation) {
			t.Errorf("expected ErrSelfRelation, got %v", err)
		}

		after, err := svc.ListRelations(ctx, auth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(after) != len(before) {
			t.Errorf("expected storage untouched, %d -> %d relations", len(before), len(after))
		}
	})

	t.Run("unknown endpoint is rejected", func(t *testing.T) {
		_, _, err := svc.CreateRelation(ctx, auth, alpha.ID, 99999)
		if !errors.Is(err, domain.ErrInvalidEndpoints) {
			t.Errorf("expected ErrInvalidEndpoints, got %v", err)
		}
	})

	t.Run("cross-tenant endpoint is rejected", func(t *testing.T) {
		other := seedCompany(t, repo, "Globex")
		theirs, err := svc.CreateRecord(ctx, other, "Theirs", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, _, err = svc.CreateRelation(ctx, auth, alpha.ID, theirs.ID)
		if !errors.Is(err, domain.ErrInvalidEndpoints) {
			t.Errorf("expected ErrInvalidEndpoints, got %v", err)
		}
	})
}

func TestDeleteRelation(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewRecordService(repo, NewEventBus())
	ctx := context.Background()
	auth := seedCompany(t, repo, "Acme")
	other := seedCompany(t, repo, "Globex")

	alpha, _ := svc.CreateRecord(ctx, auth, "Alpha", "", "")
	beta, _ := svc.CreateRecord(ctx, auth, "Beta", "", "")
	rel, _, err := svc.CreateRelation(ctx, auth, alpha.ID, beta.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("foreign tenant delete reports not found and edge survives", func(t *testing.T) {
		err := svc.DeleteRelation(ctx, other, rel.ID)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}

		relations, err := svc.ListRelations(ctx, auth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(relations) != 1 {
			t.Fatalf("expected relation to survive, got %d", len(relations))
		}
	})

	t.Run("owner delete succeeds", func(t *testing.T) {
		if err := svc.DeleteRelation(ctx, auth, rel.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		relations, err := svc.ListRelations(ctx, auth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(relations) != 0 {
			t.Fatalf("expected no relations, got %d", len(relations))
		}
	})

	t.Run("missing relation reports not found", func(t *testing.T) {
		err := svc.DeleteRelation(ctx, auth, rel.ID)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRelationEvents(t *testing.T) {
	repo := newTestRepo(t)
	bus := NewEventBus()
	events := make(chan Event, 16)
	bus.Subscribe(events)

	svc := NewRecordService(repo, bus)
	ctx := context.Background()
	auth := seedCompany(t, repo, "Acme")

	alpha, _ := svc.CreateRecord(ctx, auth, "Alpha", "", "")
	beta, _ := svc.CreateRecord(ctx, auth, "Beta", "", "")
	if _, _, err := svc.CreateRelation(ctx, auth, alpha.ID, beta.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Duplicate should not publish a second relation_created.
	if _, _, err := svc.CreateRelation(ctx, auth, beta.ID, alpha.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var types []EventType
	for len(events) > 0 {
		ev := <-events
		if ev.CompanyID != auth.CompanyID {
			t.Errorf("event tagged with wrong company: %+v", ev)
		}
		types = append(types, ev.Type)
	}

	want := []EventType{EventRecordCreated, EventRecordCreated, EventRelationCreated}
	if len(types) != len(want) {
		t.Fatalf("expected %d events, got %d (%v)", len(want), len(types), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], types[i])
		}
	}
}
