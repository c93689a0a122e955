package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"vipgraph/internal/domain"
)

// SessionCookie is the name of the session token cookie.
const SessionCookie = "vip_session"

// ErrorResponse is the JSON error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON: %v", err)
	}
}

func writeError(w http.ResponseWriter, msg, details string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg, Details: details}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// serviceError maps a core error to an HTTP response
func serviceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrSelfRelation),
		errors.Is(err, domain.ErrInvalidEndpoints):
		writeError(w, msg, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrAuthorization):
		writeError(w, msg, err.Error(), http.StatusForbidden)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, msg, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrEmailTaken):
		writeError(w, msg, err.Error(), http.StatusConflict)
	default:
		log.Printf("%s: %v", msg, err)
		writeError(w, msg, "", http.StatusInternalServerError)
	}
}

func extractPathParam(path, prefix string) string {
	if strings.HasPrefix(path, prefix) {
		return strings.TrimPrefix(path, prefix)
	}
	return ""
}

func extractPathID(path, prefix string) (int64, bool) {
	raw := extractPathParam(path, prefix)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryInt64(r *http.Request, key string) int64 {
	v, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
