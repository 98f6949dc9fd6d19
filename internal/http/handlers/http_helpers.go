package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/repo"
)

const (
	maxJSONBytes   = 1 << 20
	maxUploadBytes = 5 << 20
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must have only a single json value")
	}
	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}

func (s *Server) respond(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		s.logger.Error().Err(err).Msg("failed to write JSON response")
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, msg string) {
	s.respond(w, status, ErrorResponse{Error: msg})
}

// writeError maps a gateway error to a status code and a readable message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case repo.IsNotFound(err):
		s.fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repo.ErrInvalidCredentials):
		s.fail(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, repo.ErrInvalidTransition), errors.Is(err, repo.ErrEmailTaken):
		s.fail(w, http.StatusConflict, err.Error())
	case errors.Is(err, repo.ErrInvalidQuantity), errors.Is(err, models.ErrUnknownSize):
		s.fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.fail(w, http.StatusGatewayTimeout, "request timed out")
	case errors.Is(err, context.Canceled):
		// client went away
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		s.fail(w, http.StatusInternalServerError, "could not complete the request")
	}
}
