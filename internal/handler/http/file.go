package http

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
)

type FileHandler interface {
	Serve(w http.ResponseWriter, r *http.Request)
}

type fileHandlerImpl struct {
	storage storage.FileStorage
}

func NewFileHandler(fileStorage storage.FileStorage) FileHandler {
	return &fileHandlerImpl{storage: fileStorage}
}

// Serve handles GET /files/*, streaming a stored report or payslip
func (h *fileHandlerImpl) Serve(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")

	file, err := h.storage.Download(r.Context(), key)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer file.Close()

	if contentType := mime.TypeByExtension(path.Ext(key)); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Content-Disposition", "attachment; filename=\""+path.Base(key)+"\"")
	if _, err := io.Copy(w, file); err != nil {
		slog.Warn("file stream interrupted", "path", key, "error", err)
	}
}
