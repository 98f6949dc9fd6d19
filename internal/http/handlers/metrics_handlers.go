package handlers

import (
	"net/http"
)

// DashboardStatsHandler godoc
// @Summary Finance and stock rollup
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats
// @Router /dashboard/stats [get]
func (s *Server) DashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.gw.DashboardStats(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, stats)
}
