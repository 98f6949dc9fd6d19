package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/boutique/internal/models"
)

// GetProfileHandler godoc
// @Summary Get the seller profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Router /profile [get]
func (s *Server) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := s.gw.GetProfile(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, profile)
}

// UpdateProfileHandler godoc
// @Summary Update the seller profile
// @Description Fields left out of the body are not changed.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.ProfileUpdate true "Fields to change"
// @Success 200 {object} models.Profile
// @Router /profile [patch]
func (s *Server) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileUpdate
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid input")
		return
	}
	if req.FullName != nil && strings.TrimSpace(*req.FullName) == "" {
		s.fail(w, http.StatusBadRequest, "full_name cannot be empty")
		return
	}

	profile, err := s.gw.UpdateProfile(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, profile)
}

// UploadAvatarHandler godoc
// @Summary Upload the profile picture
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 200 {object} models.Profile
// @Failure 400 {object} ErrorResponse
// @Router /profile/avatar [post]
func (s *Server) UploadAvatarHandler(w http.ResponseWriter, r *http.Request) {
	upload, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	profile, err := s.gw.UpdateProfileAvatar(r.Context(), upload)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, profile)
}

// AddRecruitHandler godoc
// @Summary Add a recruit to the team
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recruit body RecruitRequest true "Recruit"
// @Success 201 {object} models.Profile
// @Failure 400 {object} ErrorResponse
// @Router /profile/recruits [post]
func (s *Server) AddRecruitHandler(w http.ResponseWriter, r *http.Request) {
	var req RecruitRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid input")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.fail(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.JoinDate == "" {
		req.JoinDate = time.Now().Format(time.DateOnly)
	} else if _, err := time.Parse(time.DateOnly, req.JoinDate); err != nil {
		s.fail(w, http.StatusBadRequest, "join_date must be YYYY-MM-DD")
		return
	}

	profile, err := s.gw.AddRecruit(r.Context(), name, req.JoinDate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusCreated, profile)
}

// RemoveRecruitHandler godoc
// @Summary Remove a recruit from the team
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recruit ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} ErrorResponse
// @Router /profile/recruits/{id} [delete]
func (s *Server) RemoveRecruitHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := s.gw.RemoveRecruit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, profile)
}
