package handlers

import (
	"net/http"
	"strings"

	"github.com/rogerio-castellano/boutique/internal/auth"
)

// SignUpHandler godoc
// @Summary Create an account and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "email, password and optional full name"
// @Success 201 {object} gateway.AuthResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/signup [post]
func (s *Server) SignUpHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid input")
		return
	}
	creds.Email = strings.ToLower(strings.TrimSpace(creds.Email))
	if errs := validateCredentials(creds); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, ValidationErrorResponse{Error: "invalid credentials", Fields: errs})
		return
	}

	res, err := s.gw.SignUp(r.Context(), creds.Email, creds.Password, strings.TrimSpace(creds.FullName))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusCreated, res)
}

// SignInHandler godoc
// @Summary Authenticate and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "email and password"
// @Success 200 {object} gateway.AuthResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/signin [post]
func (s *Server) SignInHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid input")
		return
	}
	if creds.Email == "" || creds.Password == "" {
		s.fail(w, http.StatusBadRequest, "missing credentials")
		return
	}

	res, err := s.gw.SignIn(r.Context(), strings.ToLower(strings.TrimSpace(creds.Email)), creds.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, res)
}

// SignOutHandler godoc
// @Summary Revoke the current token
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/signout [post]
func (s *Server) SignOutHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.gw.SignOut(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SessionHandler godoc
// @Summary Return the session carried by the request
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.Session
// @Router /auth/session [get]
func (s *Server) SessionHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, auth.SessionFrom(r.Context()))
}
