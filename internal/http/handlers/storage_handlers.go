package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// GetObjectHandler godoc
// @Summary Serve an uploaded image
// @Tags storage
// @Produce octet-stream
// @Param bucket path string true "Bucket"
// @Param name path string true "Object name"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /storage/{bucket}/{name} [get]
func (s *Server) GetObjectHandler(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if name == "" || strings.Contains(name, "..") {
		s.fail(w, http.StatusBadRequest, "invalid object name")
		return
	}

	obj, err := s.gw.GetObject(r.Context(), chi.URLParam(r, "bucket"), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(obj.Data)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(obj.Data)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(obj.Data); err != nil {
		s.logger.Error().Err(err).Msg("failed to write object")
	}
}
