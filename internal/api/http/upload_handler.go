package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"ukm-registry-backend/internal/storage"
)

// UploadHandler stores supporting documents and serves them back by key.
type UploadHandler struct {
	store       storage.DocumentStorage
	maxFileSize int64
}

func NewUploadHandler(store storage.DocumentStorage, maxFileSizeMB int64) *UploadHandler {
	return &UploadHandler{store: store, maxFileSize: maxFileSizeMB << 20}
}

// HandleUpload handles POST /api/uploads with a multipart "file" part. The
// returned key is the reference string a registration submission persists.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		respondError(w, http.StatusBadRequest, "file too large or malformed form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	switch filepath.Ext(header.Filename) {
	case ".pdf", ".jpg", ".jpeg", ".png":
	default:
		respondError(w, http.StatusBadRequest, "unsupported file type")
		return
	}

	key, err := h.store.Save(r.Context(), header.Filename, file)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save file")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "key": key})
}

// HandleDownload handles GET /api/uploads/{key}.
func (h *UploadHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	file, err := h.store.Open(r.Context(), key)
	if err != nil {
		respondError(w, http.StatusNotFound, "file not found")
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".pdf":
		contentType = "application/pdf"
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	}
	w.Header().Set("Content-Type", contentType)

	_, _ = io.Copy(w, file)
}
