package handlers

import (
	"net/http"
)

// ModeHandler godoc
// @Summary Report which data source serves requests
// @Description Resolves the availability probe on first use. The answer is cached for the life of the process.
// @Tags system
// @Produce json
// @Success 200 {object} ModeResponse
// @Router /mode [get]
func (s *Server) ModeHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, ModeResponse{Mode: string(s.gw.Mode(r.Context()))})
}

// SyncReportHandler godoc
// @Summary Compare the mock data with the backend
// @Description Development aid. The report lists per-record differences and never fails the request.
// @Tags system
// @Produce json
// @Security BearerAuth
// @Success 200 {object} syncvalidator.Report
// @Router /debug/sync [get]
func (s *Server) SyncReportHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, s.gw.ValidateSync(r.Context()))
}

// HealthHandler godoc
// @Summary Liveness check
// @Tags system
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
