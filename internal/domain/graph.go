package domain

import "time"

// GraphSnapshot is the derived view of one company's graph for the live
// visualization client. Edges are in canonical form, so A < B always holds
// on the wire and the client never has to dedupe symmetric pairs.
type GraphSnapshot struct {
	Nodes     []GraphNode `json:"nodes"`
	Edges     []GraphEdge `json:"edges"`
	CompanyID int64       `json:"company_id"`
	TS        int64       `json:"ts"` // snapshot time, epoch seconds
}

// GraphNode represents a record in the visualization.
type GraphNode struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Group       string `json:"group"`
}

// GraphEdge represents a relation in the visualization.
type GraphEdge struct {
	A int64 `json:"a"`
	B int64 `json:"b"`
}

// DeriveGraph projects records and relations into a GraphSnapshot.
func DeriveGraph(companyID int64, records []Record, relations []Relation) *GraphSnapshot {
	snap := &GraphSnapshot{
		Nodes:     make([]GraphNode, 0, len(records)),
		Edges:     make([]GraphEdge, 0, len(relations)),
		CompanyID: companyID,
		TS:        time.Now().Unix(),
	}

	for _, r := range records {
		snap.Nodes = append(snap.Nodes, GraphNode{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Group:       r.Group,
		})
	}

	for _, rel := range relations {
		snap.Edges = append(snap.Edges, GraphEdge{A: rel.A, B: rel.B})
	}

	return snap
}
