// Package handlers implements the HTTP endpoints of the API.
//
// The product_handlers.go file covers the inventory endpoints. All of
// them require a session; products belong to the calling user.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gsvlabs/storefront-backend/internal/auth"
	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// ProductHandler serves the inventory endpoints.
type ProductHandler struct {
	products ProductManager
}

// NewProductHandler creates a product handler.
func NewProductHandler(products ProductManager) *ProductHandler {
	return &ProductHandler{products: products}
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	var req models.ProductCreate
	if !utils.DecodeAndValidate(w, r, &req) {
		return
	}

	product, err := h.products.Create(r.Context(), principal.UserID, &req)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusCreated, product)
}

// List handles GET /api/products with page and page_size query
// parameters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	// Clamp once so the service call and the pagination metadata see
	// the same values; a zero or negative page_size must never reach
	// the total-pages division.
	page := queryInt(r, constants.QueryParamPage, constants.DefaultPage)
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := queryInt(r, constants.QueryParamPageSize, constants.DefaultPageSize)
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	products, total, err := h.products.List(r.Context(), principal.UserID, page, pageSize)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.Paginated(w, http.StatusOK, products, page, pageSize, total)
}

// Get handles GET /api/products/{productID}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	productID, ok := pathID(w, r, constants.ParamProductID)
	if !ok {
		return
	}

	product, err := h.products.Get(r.Context(), principal.UserID, productID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, product)
}

// Update handles PATCH /api/products/{productID}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	productID, ok := pathID(w, r, constants.ParamProductID)
	if !ok {
		return
	}

	var update models.ProductUpdate
	if !utils.DecodeAndValidate(w, r, &update) {
		return
	}

	product, err := h.products.Update(r.Context(), principal.UserID, productID, &update)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{productID}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.GetPrincipal(r.Context())
	if !ok {
		utils.Unauthorized(w, "")
		return
	}

	productID, ok := pathID(w, r, constants.ParamProductID)
	if !ok {
		return
	}

	if err := h.products.Delete(r.Context(), principal.UserID, productID); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.NoContent(w)
}

// pathID parses a positive integer URL parameter, writing a 400 on
// failure.
func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		utils.BadRequest(w, "Invalid "+param, nil)
		return 0, false
	}
	return id, true
}

// queryInt parses an integer query parameter, falling back to a default
// for missing or malformed values.
func queryInt(r *http.Request, param string, fallback int) int {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
