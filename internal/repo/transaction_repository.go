package repo

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/models"
)

type TransactionRepository interface {
	ListTransactions(ctx context.Context, owner string) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, owner string, t models.Transaction) (models.Transaction, error)
}
