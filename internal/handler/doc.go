// Package handler exposes the vipgraph HTTP API: session login, the
// tenant-scoped record and relation endpoints, the authorization-aware graph
// projection, the live-view SSE stream and the superadmin administration
// endpoints. Route guards resolve the session cookie into a domain
// AuthContext before any core service is called.
package handler
