package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ukm-registry-backend/internal/service"
)

type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

// HandleFeed handles GET /api/notifications with user_id or org_id plus
// page/limit pagination.
func (h *NotificationHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	var feed *service.NotificationFeed
	var err error
	switch {
	case r.URL.Query().Get("user_id") != "":
		feed, err = h.noteSvc.UserFeed(r.Context(), int32(queryInt(r, "user_id", 0)), int32(page), int32(limit))
	case r.URL.Query().Get("org_id") != "":
		feed, err = h.noteSvc.OrgFeed(r.Context(), int32(queryInt(r, "org_id", 0)), int32(page), int32(limit))
	default:
		respondError(w, http.StatusBadRequest, "user_id or org_id is required")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load notifications")
		return
	}

	totalPages := (feed.Total + int32(limit) - 1) / int32(limit)
	respondJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"notifications": feed.Notifications,
		"unread_count":  feed.UnreadCount,
		"pagination": map[string]any{
			"total":       feed.Total,
			"page":        page,
			"limit":       limit,
			"total_pages": totalPages,
		},
	})
}

// HandleMarkAsRead handles PUT /api/notifications/{id}/read.
func (h *NotificationHandler) HandleMarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := h.noteSvc.MarkAsRead(r.Context(), int32(id)); err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
