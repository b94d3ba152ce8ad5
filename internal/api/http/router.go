package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Decision     *DecisionHandler
	Registration *RegistrationHandler
	Notification *NotificationHandler
	Organization *OrganizationHandler
	Upload       *UploadHandler
	Auth         *AuthMiddleware
}

// NewRouter builds the API route table. Everything except document download
// and the org catalogue requires a valid bearer token.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	// Public reads
	api.HandleFunc("/orgs", h.Organization.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/orgs/{id:[0-9]+}", h.Organization.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/uploads/{key}", h.Upload.HandleDownload).Methods(http.MethodGet)

	// Authenticated surface
	auth := api.NewRoute().Subrouter()
	auth.Use(h.Auth.Handler)
	auth.HandleFunc("/registrations", h.Registration.HandleSubmit).Methods(http.MethodPost)
	auth.HandleFunc("/registrations", h.Registration.HandleList).Methods(http.MethodGet)
	auth.HandleFunc("/registrations/{id:[0-9]+}/decision", h.Decision.HandleDecide).Methods(http.MethodPut)
	auth.HandleFunc("/notifications", h.Notification.HandleFeed).Methods(http.MethodGet)
	auth.HandleFunc("/notifications/{id:[0-9]+}/read", h.Notification.HandleMarkAsRead).Methods(http.MethodPut)
	auth.HandleFunc("/orgs/{id:[0-9]+}/members", h.Organization.HandleListMembers).Methods(http.MethodGet)
	auth.HandleFunc("/uploads", h.Upload.HandleUpload).Methods(http.MethodPost)

	return r
}
