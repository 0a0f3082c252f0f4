package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/productapi/productapi-go/internal/model"
	"github.com/productapi/productapi-go/internal/service"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service *service.ProductService
	log     *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc *service.ProductService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{service: svc, log: log}
}

// HandleList handles GET /products requests.
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.internalError(w, r, "list products", err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// HandleGet handles GET /products/{id} requests.
func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse(service.ErrProductNotFound.Error()))
		return
	}

	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get product", err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// HandleCreate handles POST /products requests.
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "create product", err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

// HandleUpdate handles PUT /products/{id} requests.
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// Body errors win over a malformed id.
	if err := service.ValidateProductUpdate(req); err != nil {
		h.writeError(w, r, "update product", err)
		return
	}

	id, ok := productID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse(service.ErrProductNotFound.Error()))
		return
	}

	p, err := h.service.UpdateProduct(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, "update product", err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// HandleDelete handles DELETE /products/{id} requests.
func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse(service.ErrProductNotFound.Error()))
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		h.writeError(w, r, "delete product", err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "product deleted"})
}

func (h *ProductHandler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, service.ErrProductFieldsRequired),
		errors.Is(err, service.ErrUpdateFieldsRequired),
		errors.Is(err, service.ErrEmptyName):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrProductNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	default:
		h.internalError(w, r, op, err)
	}
}

func (h *ProductHandler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.log.ErrorContext(r.Context(), op+" failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

// productID parses the {id} path parameter. Anything that is not a positive
// integer cannot name a row.
func productID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
