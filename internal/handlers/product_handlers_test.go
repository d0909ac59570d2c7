package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsvlabs/storefront-backend/internal/models"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

// productRouter mounts the handler behind a middleware that injects the
// test principal, standing in for the real auth chain.
func productRouter(h *ProductHandler, userID int64) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, withPrincipal(req, userID))
		})
	})
	r.Post("/api/products", h.Create)
	r.Get("/api/products", h.List)
	r.Get("/api/products/{productID}", h.Get)
	r.Patch("/api/products/{productID}", h.Update)
	r.Delete("/api/products/{productID}", h.Delete)
	return r
}

func TestProductCreateHandler(t *testing.T) {
	mgr := &fakeProductManager{product: testProduct()}
	router := productRouter(NewProductHandler(mgr), 42)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/products",
		`{"name":"Widget","sku":"WID-001","category":"tools","quantity":5,"price":9.99}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(42), mgr.lastUserID)

	data := dataMap(t, decodeEnvelope(t, rec))
	assert.Equal(t, "WID-001", data["sku"])
}

func TestProductCreateHandler_MissingFields(t *testing.T) {
	mgr := &fakeProductManager{product: testProduct()}
	router := productRouter(NewProductHandler(mgr), 42)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/products", `{"name":"Widget"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductListHandler(t *testing.T) {
	mgr := &fakeProductManager{products: []*models.Product{testProduct()}, total: 1}
	router := productRouter(NewProductHandler(mgr), 42)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products?page=1&page_size=20", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.TotalItems)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 20, resp.Meta.PageSize)
}

func TestProductListHandler_BadPageParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"zero page size", "?page_size=0"},
		{"negative page size", "?page=-1&page_size=-5"},
		{"oversized page size", "?page_size=100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := &fakeProductManager{products: []*models.Product{testProduct()}, total: 1}
			router := productRouter(NewProductHandler(mgr), 42)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products"+tt.query, nil))

			assert.Equal(t, http.StatusOK, rec.Code)

			resp := decodeEnvelope(t, rec)
			require.NotNil(t, resp.Meta)
			assert.GreaterOrEqual(t, resp.Meta.Page, 1)
			assert.GreaterOrEqual(t, resp.Meta.PageSize, 1)
			assert.LessOrEqual(t, resp.Meta.PageSize, 100)
		})
	}
}

func TestProductGetHandler(t *testing.T) {
	mgr := &fakeProductManager{product: testProduct()}
	router := productRouter(NewProductHandler(mgr), 42)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), mgr.lastProductID)
	assert.Equal(t, int64(42), mgr.lastUserID)
}

func TestProductGetHandler_BadID(t *testing.T) {
	mgr := &fakeProductManager{product: testProduct()}
	router := productRouter(NewProductHandler(mgr), 42)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductGetHandler_NotFound(t *testing.T) {
	mgr := &fakeProductManager{err: utils.NewNotFoundError("Product", 99)}
	router := productRouter(NewProductHandler(mgr), 42)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductUpdateHandler(t *testing.T) {
	mgr := &fakeProductManager{product: testProduct()}
	router := productRouter(NewProductHandler(mgr), 42)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPatch, "/api/products/7", `{"quantity":0}`))

	assert.Equal(t, http.StatusOK, rec.Code)

	data := dataMap(t, decodeEnvelope(t, rec))
	assert.Equal(t, float64(0), data["quantity"])
	assert.Equal(t, "Widget", data["name"], "omitted field keeps stored value")
}

func TestProductUpdateHandler_RejectsSKU(t *testing.T) {
	mgr := &fakeProductManager{product: testProduct()}
	router := productRouter(NewProductHandler(mgr), 42)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPatch, "/api/products/7", `{"sku":"NEW-SKU"}`))

	// SKU is immutable; unknown fields are rejected.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductDeleteHandler(t *testing.T) {
	mgr := &fakeProductManager{}
	router := productRouter(NewProductHandler(mgr), 42)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/products/7", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(7), mgr.lastProductID)
}

func TestProductHandlers_NoPrincipal(t *testing.T) {
	h := NewProductHandler(&fakeProductManager{product: testProduct()})

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(http.MethodPost, "/api/products", `{}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
