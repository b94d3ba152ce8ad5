package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ukm-registry-backend/internal/domain"
	"ukm-registry-backend/internal/service"
)

// DecisionHandler exposes the registration approval/rejection transaction.
type DecisionHandler struct {
	decisionSvc service.DecisionService
}

func NewDecisionHandler(decisionSvc service.DecisionService) *DecisionHandler {
	return &DecisionHandler{decisionSvc: decisionSvc}
}

type decisionRequest struct {
	Outcome string `json:"outcome"`
	Reason  string `json:"reason,omitempty"`
}

// HandleDecide handles PUT /api/registrations/{id}/decision.
func (h *DecisionHandler) HandleDecide(w http.ResponseWriter, r *http.Request) {
	actor := actorFromContext(r.Context())
	if actor == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid registration id")
		return
	}

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.decisionSvc.Decide(r.Context(), service.DecisionInput{
		RegistrationID: int32(id),
		Outcome:        domain.DecisionOutcome(req.Outcome),
		Reason:         req.Reason,
		ActorID:        actor.UserID,
	})
	if err != nil {
		h.respondDecisionError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"status":           result.Status,
		"notification_ids": result.NotificationIDs,
		"already_applied":  result.AlreadyApplied,
	})
}

func (h *DecisionHandler) respondDecisionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDecision):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRegistrationNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateMembership),
		errors.Is(err, domain.ErrOutcomeConflict):
		respondError(w, http.StatusConflict, err.Error())
	case domain.Retriable(err):
		respondError(w, http.StatusServiceUnavailable, "decision could not be committed, please retry")
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
