package handlers

import (
	"net/http"
	"time"

	"github.com/rogerio-castellano/boutique/internal/models"
)

// GetTransactionsHandler godoc
// @Summary List ledger entries, newest first
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Transaction
// @Router /transactions [get]
func (s *Server) GetTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	txs, err := s.gw.ListTransactions(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, txs)
}

// CreateTransactionHandler godoc
// @Summary Record a ledger entry
// @Tags finance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param transaction body TransactionRequest true "Transaction"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} ValidationErrorResponse
// @Router /transactions [post]
func (s *Server) CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid input")
		return
	}
	if errs := validateTransaction(req); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, ValidationErrorResponse{Error: "invalid transaction", Fields: errs})
		return
	}

	// validated above
	date, _ := time.Parse(time.RFC3339, req.TransactionDate)
	tx := models.Transaction{
		TransactionType: models.TransactionType(req.TransactionType),
		Amount:          req.Amount,
		Description:     req.Description,
		Category:        req.Category,
		PaymentMethod:   req.PaymentMethod,
		OrderID:         req.OrderID,
		TransactionDate: date,
	}
	created, err := s.gw.AddTransaction(r.Context(), tx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusCreated, created)
}
