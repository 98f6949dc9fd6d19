package syncvalidator

import (
	"context"
	"testing"

	"github.com/rogerio-castellano/boutique/internal/mockstore"
	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_IdenticalStoresAreValid(t *testing.T) {
	ctx := context.Background()
	a := mockstore.New(mockstore.WithoutLatency())
	b := mockstore.New(mockstore.WithoutLatency())

	local, err := Collect(ctx, a, a.Owner())
	require.NoError(t, err)
	remote, err := Collect(ctx, b, b.Owner())
	require.NoError(t, err)

	r := New(zerolog.Nop()).Compare(local, remote)
	assert.True(t, r.Valid)
	assert.Equal(t, 6, r.Summary["products"].LocalCount)
	assert.Empty(t, r.Details["products"])
}

func TestCompare_ReportsDivergence(t *testing.T) {
	local := Snapshot{
		Products: []models.Product{
			{ID: "p1", Name: "A", Stock70ml: 3, StockTotal: 3},
			{ID: "p2", Name: "B"},
		},
		Clients: []models.Client{{ID: "c1", FullName: "Julie", Status: models.ClientVIP}},
	}
	remote := Snapshot{
		Products: []models.Product{
			{ID: "p1", Name: "A", Stock70ml: 1, StockTotal: 1},
			{ID: "p9", Name: "Z"},
		},
		Clients: []models.Client{{ID: "c1", FullName: "Julie", Status: models.ClientVIP}},
	}

	r := New(zerolog.Nop()).Compare(local, remote)
	assert.False(t, r.Valid)

	s := r.Summary["products"]
	assert.False(t, s.Synced)
	assert.Equal(t, 2, s.Mismatches)
	assert.Equal(t, 1, s.MissingInRemote)
	assert.Equal(t, 1, s.MissingInLocal)

	assert.True(t, r.Summary["clients"].Synced)
	assert.NotContains(t, r.Summary, "orders")

	var fields []string
	for _, d := range r.Details["products"] {
		if d.Status == StatusMismatch {
			fields = append(fields, d.Field)
		}
	}
	assert.ElementsMatch(t, []string{"stock_total", "stock_70ml"}, fields)
}

func TestCompare_Profile(t *testing.T) {
	local := Snapshot{Profile: &models.Profile{ID: "user_123", FullName: "Sophie"}}
	remote := Snapshot{Profile: &models.Profile{ID: "8d1c", FullName: "Sophie M."}}

	r := New(zerolog.Nop()).Compare(local, remote)
	assert.Equal(t, 1, r.Summary["profile"].Mismatches)
}

func TestFailed(t *testing.T) {
	r := New(zerolog.Nop()).Failed("not authenticated")
	assert.False(t, r.Valid)
	assert.Equal(t, []string{"not authenticated"}, r.Errors)
}
