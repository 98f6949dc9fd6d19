package handlers

import (
	"github.com/rogerio-castellano/boutique/internal/gateway"
	"github.com/rs/zerolog"
)

// Server holds what every handler needs. Validation happens here, before the gateway.
type Server struct {
	gw     *gateway.Gateway
	logger zerolog.Logger
}

func NewServer(gw *gateway.Gateway, logger zerolog.Logger) *Server {
	return &Server{gw: gw, logger: logger}
}
