package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestErrorClasses(t *testing.T) {
	tests := []struct {
		err      error
		domain   bool
		notFound bool
	}{
		{ErrInvalidTransition, true, false},
		{fmt.Errorf("create user: %w", ErrEmailTaken), true, false},
		{fmt.Errorf("%w: %q", models.ErrUnknownSize, "5ml"), true, false},
		{ErrProductNotFound, false, true},
		{fmt.Errorf("remove recruit: %w", ErrRecruitNotFound), false, true},
		{errors.New("dial tcp: connection refused"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.domain, IsDomainError(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
		})
	}
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "/storage/avatars/u1/a.png", PublicURL("/storage", "avatars", "u1/a.png"))
	assert.Equal(t, "https://cdn.example.com/storage/avatars/u1/a.png", PublicURL("https://cdn.example.com/storage/", "avatars", "u1/a.png"))
}
