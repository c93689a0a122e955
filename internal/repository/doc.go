// Package repository defines the data-access contract for the vipgraph
// store. The only implementation lives in the sqlite subpackage; services
// depend on the interface so tests can swap the backing store.
package repository
