package repo

import (
	"errors"

	"github.com/rogerio-castellano/boutique/internal/models"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrObjectNotFound     = errors.New("object not found")
	ErrRecruitNotFound    = errors.New("recruit not found")
	ErrInvalidTransition  = errors.New("status cannot move backwards")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
)

// IsDomainError reports whether err is an answer from the store rather than a
// failure to reach it. Domain errors are returned to the caller as they are.
func IsDomainError(err error) bool {
	for _, target := range []error{ErrInvalidTransition, ErrInvalidCredentials, ErrEmailTaken, ErrInvalidQuantity, models.ErrUnknownSize} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err means the addressed record does not exist.
func IsNotFound(err error) bool {
	for _, target := range []error{ErrProductNotFound, ErrClientNotFound, ErrOrderNotFound, ErrProfileNotFound, ErrObjectNotFound, ErrRecruitNotFound} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
