// Package domain defines the core domain types for the vipgraph multi-tenant
// record graph.
//
// # Core Types
//
// Company is a tenant: an isolated organization that owns its own records and
// relations. No company can see another's data; a superadmin may view any
// company's graph by naming it explicitly.
//
// Record is a named entity belonging to exactly one company.
//
// Relation is an undirected link between two records of the same company,
// always stored in canonical (a, b) form with a < b. NormalizePair is the
// single place that ordering is enforced.
//
// User is an account that authenticates against the system, either scoped to
// one company or a superadmin with no company at all.
//
// GraphSnapshot is the serialization-ready projection of one company's
// records and relations, consumed by the live visualization client.
//
// # Design Principles
//
// - No database or external dependencies beyond password hashing
// - Pure domain logic without infrastructure concerns
// - Typed sentinel errors so callers can branch with errors.Is
package domain
