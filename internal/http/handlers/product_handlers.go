package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/boutique/internal/gateway"
	"github.com/rogerio-castellano/boutique/internal/models"
)

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProductResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.gw.ListProducts(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, toProductResponses(products))
}

// GetProductHandler godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (s *Server) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	products, err := s.gw.ListProducts(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	for _, p := range products {
		if p.ID == id {
			s.respond(w, http.StatusOK, toProductResponse(p))
			return
		}
	}
	s.fail(w, http.StatusNotFound, "product not found")
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a perfume to the catalogue
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /products [post]
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid input")
		return
	}
	if errs := validateProduct(req); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, ValidationErrorResponse{Error: "invalid product", Fields: errs})
		return
	}

	created, err := s.gw.AddProduct(r.Context(), req.toModel(""))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusCreated, toProductResponse(created))
}

// UpdateProductHandler godoc
// @Summary Update an existing product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [put]
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid input")
		return
	}
	if errs := validateProduct(req); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, ValidationErrorResponse{Error: "invalid product", Fields: errs})
		return
	}

	updated, err := s.gw.UpdateProduct(r.Context(), req.toModel(chi.URLParam(r, "id")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [delete]
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.gw.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdjustStockHandler godoc
// @Summary Adjust the stock of a product
// @Description Adds delta to one size tier, or to the aggregate stock when size is empty. Stock never goes below zero.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param adjustment body StockAdjustmentRequest true "Stock adjustment"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/stock [post]
func (s *Server) AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	var req StockAdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid input")
		return
	}
	if req.Delta == 0 {
		s.fail(w, http.StatusBadRequest, "delta must not be zero")
		return
	}
	tier, err := models.ParseSizeTier(req.Size)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := s.gw.AdjustStock(r.Context(), chi.URLParam(r, "id"), tier, req.Delta)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, toProductResponse(product))
}

// UploadProductImageHandler godoc
// @Summary Upload a product picture
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param file formData file true "Image file"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/image [post]
func (s *Server) UploadProductImageHandler(w http.ResponseWriter, r *http.Request) {
	upload, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	product, err := s.gw.UpdateProductImage(r.Context(), chi.URLParam(r, "id"), upload)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, toProductResponse(product))
}

// LowStockHandler godoc
// @Summary List products at or below their alert threshold
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProductResponse
// @Router /products/low-stock [get]
func (s *Server) LowStockHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.gw.LowStockProducts(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respond(w, http.StatusOK, toProductResponses(products))
}

// readUpload pulls the "file" part out of a multipart request. It writes the error response itself.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (gateway.Upload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid multipart form")
		return gateway.Upload{}, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.fail(w, http.StatusBadRequest, "missing file")
		return gateway.Upload{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.fail(w, http.StatusRequestEntityTooLarge, "file too large")
			return gateway.Upload{}, false
		}
		s.fail(w, http.StatusBadRequest, "could not read file")
		return gateway.Upload{}, false
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		s.fail(w, http.StatusBadRequest, "file must be an image")
		return gateway.Upload{}, false
	}
	return gateway.Upload{Filename: header.Filename, ContentType: contentType, Data: data}, true
}
