package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/boutique/internal/models"
)

// GetOrdersHandler godoc
// @Summary List orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Order
// @Router /orders [get]
func (s *Server) GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := s.gw.ListOrders(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, orders)
}

// CreateOrderHandler godoc
// @Summary Record an order
// @Description Prices the order, decrements stock, updates the client aggregates and records a sale when paid.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body OrderRequest true "Order to record"
// @Success 201 {object} models.Order
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown product or client"
// @Router /orders [post]
func (s *Server) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid input")
		return
	}
	if errs := validateOrder(req); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, ValidationErrorResponse{Error: "invalid order", Fields: errs})
		return
	}

	created, err := s.gw.CreateOrder(r.Context(), req.toModel())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusCreated, created)
}

// UpdateOrderStatusHandler godoc
// @Summary Move an order forward
// @Description Either axis can be moved; statuses never go backwards.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param status body OrderStatusRequest true "New status and/or payment status"
// @Success 200 {object} models.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Status cannot move backwards"
// @Router /orders/{id}/status [patch]
func (s *Server) UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderStatusRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid input")
		return
	}
	if req.Status == nil && req.PaymentStatus == nil {
		s.fail(w, http.StatusBadRequest, "status or payment_status is required")
		return
	}
	if req.Status != nil && !models.OrderStatus(*req.Status).Valid() {
		s.fail(w, http.StatusBadRequest, "unknown order status")
		return
	}
	if req.PaymentStatus != nil && !models.PaymentStatus(*req.PaymentStatus).Valid() {
		s.fail(w, http.StatusBadRequest, "unknown payment status")
		return
	}

	id := chi.URLParam(r, "id")
	var (
		order models.Order
		err   error
	)
	if req.Status != nil {
		if order, err = s.gw.UpdateOrderStatus(r.Context(), id, models.OrderStatus(*req.Status)); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	if req.PaymentStatus != nil {
		if order, err = s.gw.UpdatePaymentStatus(r.Context(), id, models.PaymentStatus(*req.PaymentStatus)); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	s.respond(w, http.StatusOK, order)
}

// DeleteOrderHandler godoc
// @Summary Delete an order
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [delete]
func (s *Server) DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.gw.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
