package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"ukm-registry-backend/internal/domain"
	"ukm-registry-backend/internal/service"
)

type RegistrationHandler struct {
	regSvc service.RegistrationService
}

func NewRegistrationHandler(regSvc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{regSvc: regSvc}
}

type submitRegistrationRequest struct {
	OrgID           int32  `json:"org_id"`
	Name            string `json:"name"`
	NIM             string `json:"nim"`
	Faculty         string `json:"faculty"`
	Program         string `json:"program"`
	Motivation      string `json:"motivation"`
	KTMFile         string `json:"ktm_file"`
	CertificateFile string `json:"certificate_file,omitempty"`
}

// HandleSubmit handles POST /api/registrations.
func (h *RegistrationHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())
	if actor == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req submitRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reg, err := h.regSvc.Submit(r.Context(), service.SubmitRegistrationInput{
		OrgID:  req.OrgID,
		UserID: actor.UserID,
		Profile: domain.ProfileSnapshot{
			Name:    req.Name,
			NIM:     req.NIM,
			Faculty: req.Faculty,
			Program: req.Program,
		},
		Motivation:      req.Motivation,
		KTMFile:         req.KTMFile,
		CertificateFile: req.CertificateFile,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateMembership) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"success":      true,
		"registration": reg,
	})
}

// HandleList handles GET /api/registrations with either user_id or org_id.
func (h *RegistrationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if v := r.URL.Query().Get("org_id"); v != "" {
		orgID, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid org_id")
			return
		}
		regs, err := h.regSvc.ListByOrg(r.Context(), int32(orgID))
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to list registrations")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"success": true, "registrations": regs})
		return
	}

	if v := r.URL.Query().Get("user_id"); v != "" {
		userID, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid user_id")
			return
		}
		regs, err := h.regSvc.ListByUser(r.Context(), int32(userID))
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to list registrations")
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"success": true, "registrations": regs})
		return
	}

	respondError(w, http.StatusBadRequest, "user_id or org_id is required")
}
