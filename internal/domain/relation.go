package domain

import "time"

// Relation is an undirected link between two records of the same company.
// The endpoint pair is always stored in canonical form: A < B. Collapsing
// the two insertion orders of an unordered pair into one storage form makes
// duplicate detection a single equality check against the unique (A, B)
// index instead of a symmetric OR.
type Relation struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	A         int64     `json:"a_id"`
	B         int64     `json:"b_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizePair returns the pair ordered ascending by id. It is pure and
// total; every code path that stores or looks up a relation must route both
// ids through here first.
func NormalizePair(id1, id2 int64) (lo, hi int64) {
	if id1 < id2 {
		return id1, id2
	}
	return id2, id1
}

// NewRelation creates a relation in canonical form with the current
// timestamp. The ID is assigned by the repository on insert.
func NewRelation(companyID, id1, id2 int64) *Relation {
	a, b := NormalizePair(id1, id2)
	return &Relation{
		CompanyID: companyID,
		A:         a,
		B:         b,
		CreatedAt: time.Now().UTC(),
	}
}
