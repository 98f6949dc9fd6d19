package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetClientsHandler godoc
// @Summary List all clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Client
// @Router /clients [get]
func (s *Server) GetClientsHandler(w http.ResponseWriter, r *http.Request) {
	clients, err := s.gw.ListClients(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, clients)
}

// CreateClientHandler godoc
// @Summary Add a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param client body ClientRequest true "Client to add"
// @Success 201 {object} models.Client
// @Failure 400 {object} ValidationErrorResponse
// @Router /clients [post]
func (s *Server) CreateClientHandler(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid input")
		return
	}
	if errs := validateClient(req); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, ValidationErrorResponse{Error: "invalid client", Fields: errs})
		return
	}

	created, err := s.gw.AddClient(r.Context(), req.toModel(""))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusCreated, created)
}

// UpdateClientHandler godoc
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param client body ClientRequest true "Updated client"
// @Success 200 {object} models.Client
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id} [put]
func (s *Server) UpdateClientHandler(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid input")
		return
	}
	if errs := validateClient(req); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, ValidationErrorResponse{Error: "invalid client", Fields: errs})
		return
	}

	updated, err := s.gw.UpdateClient(r.Context(), req.toModel(chi.URLParam(r, "id")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, updated)
}

// DeleteClientHandler godoc
// @Summary Delete a client
// @Tags clients
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id} [delete]
func (s *Server) DeleteClientHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.gw.DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
