// Package service implements the business rules of the vipgraph store on top
// of the repository: tenant-scoped record and relation operations, the
// authorization-aware graph projection, company/user administration, and
// session-based login. Mutations publish events on an in-process EventBus
// consumed by the live-view SSE hub.
package service
