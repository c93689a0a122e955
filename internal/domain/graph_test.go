package domain

import (
	"testing"
	"time"
)

func TestDeriveGraph(t *testing.T) {
	records := []Record{
		{ID: 2, CompanyID: 1, Name: "Beta", Group: "g1"},
		{ID: 1, CompanyID: 1, Name: "Alpha", Description: "first"},
	}
	relations := []Relation{
		{ID: 10, CompanyID: 1, A: 1, B: 2},
	}

	snap := DeriveGraph(1, records, relations)

	t.Run("projects all nodes preserving order", func(t *testing.T) {
		if len(snap.Nodes) != 2 {
			t.Fatalf("expected 2 nodes, got %d", len(snap.Nodes))
		}
		if snap.Nodes[0].ID != 2 || snap.Nodes[0].Name != "Beta" {
			t.Errorf("unexpected first node: %+v", snap.Nodes[0])
		}
		if snap.Nodes[1].Description != "first" {
			t.Errorf("expected description carried over, got %+v", snap.Nodes[1])
		}
	})

	t.Run("edges keep canonical order", func(t *testing.T) {
		if len(snap.Edges) != 1 {
			t.Fatalf("expected 1 edge, got %d", len(snap.Edges))
		}
		if snap.Edges[0].A != 1 || snap.Edges[0].B != 2 {
			t.Errorf("expected edge (1, 2), got (%d, %d)", snap.Edges[0].A, snap.Edges[0].B)
		}
	})

	t.Run("carries company id and timestamp", func(t *testing.T) {
		if snap.CompanyID != 1 {
			t.Errorf("expected company 1, got %d", snap.CompanyID)
		}
		now := time.Now().Unix()
		if snap.TS < now-5 || snap.TS > now+5 {
			t.Errorf("snapshot ts %d not near now %d", snap.TS, now)
		}
	})

	t.Run("empty graph yields empty slices, not nil", func(t *testing.T) {
		empty := DeriveGraph(7, nil, nil)
		if empty.Nodes == nil || empty.Edges == nil {
			t.Error("expected non-nil slices for JSON serialization")
		}
	})
}
