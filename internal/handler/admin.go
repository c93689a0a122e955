package handler

import (
	"encoding/json"
	"net/http"

	"vipgraph/internal/service"
)

// AdminHandler handles superadmin company and user administration
type AdminHandler struct {
	svc *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// ListCompanies returns all companies, newest first
func (h *AdminHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	auth, _ := AuthFromContext(r.Context())

	companies, err := h.svc.ListCompanies(r.Context(), auth)
	if err != nil {
		serviceError(w, "Failed to list companies", err)
		return
	}

	writeJSON(w, companies, http.StatusOK)
}

// CreateCompanyRequest is the company creation body
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
}

// CreateCompany registers a new tenant
func (h *AdminHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	auth, _ := AuthFromContext(r.Context())

	var req CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	company, err := h.svc.CreateCompany(r.Context(), auth, req.Name, req.Street, req.HouseNumber, req.PostalCode, req.City)
	if err != nil {
		serviceError(w, "Failed to create company", err)
		return
	}

	writeJSON(w, company, http.StatusCreated)
}

// ListUsers returns all accounts
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	auth, _ := AuthFromContext(r.Context())

	users, err := h.svc.ListUsers(r.Context(), auth)
	if err != nil {
		serviceError(w, "Failed to list users", err)
		return
	}

	writeJSON(w, users, http.StatusOK)
}

// CreateUserRequest is the user creation body
type CreateUserRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	CompanyID    int64  `json:"company_id"`
	IsSuperadmin bool   `json:"is_superadmin"`
}

// CreateUser registers an account
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	auth, _ := AuthFromContext(r.Context())

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.svc.CreateUser(r.Context(), auth, req.Email, req.Password, req.CompanyID, req.IsSuperadmin)
	if err != nil {
		serviceError(w, "Failed to create user", err)
		return
	}

	writeJSON(w, user, http.StatusCreated)
}
