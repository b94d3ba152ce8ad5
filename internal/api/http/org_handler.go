package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ukm-registry-backend/internal/service"
)

type OrganizationHandler struct {
	orgSvc service.OrganizationService
}

func NewOrganizationHandler(orgSvc service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgSvc: orgSvc}
}

// HandleList handles GET /api/orgs.
func (h *OrganizationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.orgSvc.ListOrganizations(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list organizations")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "orgs": orgs})
}

// HandleGet handles GET /api/orgs/{id}.
func (h *OrganizationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid organization id")
		return
	}
	org, err := h.orgSvc.GetOrganization(r.Context(), int32(id))
	if err != nil {
		respondError(w, http.StatusNotFound, "organization not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "org": org})
}

// HandleListMembers handles GET /api/orgs/{id}/members.
func (h *OrganizationHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid organization id")
		return
	}
	members, err := h.orgSvc.ListMembers(r.Context(), int32(id))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list members")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true, "members": members})
}
