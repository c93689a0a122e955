package handler

import (
	"encoding/json"
	"net/http"

	"vipgraph/internal/hub"
	"vipgraph/internal/service"
)

// GraphHandler handles the tenant graph API
type GraphHandler struct {
	graphs  *service.GraphService
	records *service.RecordService
	hub     *hub.Hub
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(graphs *service.GraphService, records *service.RecordService, h *hub.Hub) *GraphHandler {
	return &GraphHandler{graphs: graphs, records: records, hub: h}
}

// GetGraph returns the caller's graph snapshot. Superadmins select a
// company with ?company_id=; everyone else is pinned to their own.
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	auth, _ := AuthFromContext(r.Context())

	snap, err := h.graphs.GetGraph(r.Context(), auth, queryInt64(r, "company_id"))
	if err != nil {
		serviceError(w, "Failed to get graph", err)
		return
	}

	writeJSON(w, snap, http.StatusOK)
}

// Events streams graph-change events for the resolved company
func (h *GraphHandler) Events(w http.ResponseWriter, r *http.Request) {
	auth, _ := AuthFromContext(r.Context())

	// Same scoping rule as GetGraph: the snapshot and the stream always
	// refer to the same company.
	companyID := queryInt64(r, "company_id")
	if !auth.IsSuperadmin {
		companyID = auth.CompanyID
	}
	if companyID == 0 {
		writeError(w, "company_id required", "", http.StatusForbidden)
		return
	}

	h.hub.Serve(w, r, companyID)
}

// ListRecords returns the caller's company records
func (h *GraphHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	auth, _ := AuthFromContext(r.Context())

	records, err := h.records.ListRecords(r.Context(), auth)
	if err != nil {
		serviceError(w, "Failed to list records", err)
		return
	}

	writeJSON(w, records, http.StatusOK)
}

// CreateRecordRequest is the record creation body
type CreateRecordRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Group       string `json:"group"`
}

// CreateRecord creates a record under the caller's company
func (h *GraphHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	auth, _ := AuthFromContext(r.Context())

	var req CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.records.CreateRecord(r.Context(), auth, req.Name, req.Description, req.Group)
	if err != nil {
		serviceError(w, "Failed to create record", err)
		return
	}

	writeJSON(w, rec, http.StatusCreated)
}

// ListRelations returns the caller's company relations
func (h *GraphHandler) ListRelations(w http.ResponseWriter, r *http.Request) {
	auth, _ := AuthFromContext(r.Context())

	relations, err := h.records.ListRelations(r.Context(), auth)
	if err != nil {
		serviceError(w, "Failed to list relations", err)
		return
	}

	writeJSON(w, relations, http.StatusOK)
}

// CreateRelationRequest is the relation creation body
type CreateRelationRequest struct {
	AID int64 `json:"a_id"`
	BID int64 `json:"b_id"`
}

// RelationResponse reports the outcome of a relation creation
type RelationResponse struct {
	Status   string      `json:"status"` // "created" or "exists"
	Relation interface{} `json:"relation"`
}

// CreateRelation connects two records. A repeat of an existing pair is a
// success (200 with status "exists"), not a conflict.
func (h *GraphHandler) CreateRelation(w http.ResponseWriter, r *http.Request) {
	auth, _ := AuthFromContext(r.Context())

	var req CreateRelationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	rel, created, err := h.records.CreateRelation(r.Context(), auth, req.AID, req.BID)
	if err != nil {
		serviceError(w, "Failed to create relation", err)
		return
	}

	if created {
		writeJSON(w, RelationResponse{Status: "created", Relation: rel}, http.StatusCreated)
		return
	}
	writeJSON(w, RelationResponse{Status: "exists", Relation: rel}, http.StatusOK)
}

// DeleteRelation removes one of the caller's relations
func (h *GraphHandler) DeleteRelation(w http.ResponseWriter, r *http.Request) {
	auth, _ := AuthFromContext(r.Context())

	id, ok := extractPathID(r.URL.Path, "/api/relations/")
	if !ok {
		writeError(w, "Invalid relation ID", "Relation ID is required", http.StatusBadRequest)
		return
	}

	if err := h.records.DeleteRelation(r.Context(), auth, id); err != nil {
		serviceError(w, "Failed to delete relation", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
