package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/example/moldz3d/pkg/cart"
	"github.com/example/moldz3d/pkg/catalog"
	"github.com/example/moldz3d/pkg/checkout"
	"github.com/example/moldz3d/pkg/config"
	"github.com/example/moldz3d/pkg/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{}
	cartStore := cart.New(storage.NewMemory(), zap.NewNop(), cart.Options{})
	checkoutSvc, err := checkout.NewService(cartStore, zap.NewNop(), config.ShippingConfig{
		FreeThreshold: 150,
		FlatRate:      15,
	}, config.CheckoutConfig{Timeout: 2 * time.Second})
	require.NoError(t, err)
	t.Cleanup(checkoutSvc.Close)

	server := NewServer(cfg, zap.NewNop(), catalog.New(), cartStore, checkoutSvc)
	server.SetupRoutes()
	return server.Router()
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var payload map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	}
	return w, payload
}

func TestHealth(t *testing.T) {
	router := newTestServer(t)

	w, payload := do(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", payload["status"])
}

func TestListProductsWithFilters(t *testing.T) {
	router := newTestServer(t)

	w, payload := do(t, router, http.MethodGet, "/api/v1/products", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(12), payload["total"])

	w, payload = do(t, router, http.MethodGet, "/api/v1/products?category=Miniaturas&material=Resina", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), payload["total"])

	w, payload = do(t, router, http.MethodGet, "/api/v1/products?max_price=40&sort=price-low", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	products := payload["products"].([]interface{})
	require.NotEmpty(t, products)
	first := products[0].(map[string]interface{})
	assert.Equal(t, "11", first["id"])
}

func TestGetProduct(t *testing.T) {
	router := newTestServer(t)

	w, payload := do(t, router, http.MethodGet, "/api/v1/products/2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Máscara Cyber Oni", payload["name"])

	w, _ = do(t, router, http.MethodGet, "/api/v1/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartLifecycle(t *testing.T) {
	router := newTestServer(t)

	// Empty cart to start.
	w, payload := do(t, router, http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), payload["count"])
	assert.Empty(t, payload["items"])

	// Add twice, same product: one line, quantity accumulates.
	w, _ = do(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "3", "quantity": 1})
	assert.Equal(t, http.StatusCreated, w.Code)
	w, payload = do(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "3", "quantity": 2})
	assert.Equal(t, http.StatusCreated, w.Code)

	items := payload["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(3), payload["count"])
	assert.InDelta(t, 3*89.9, payload["subtotal"].(float64), 1e-9)

	// Clamp on update.
	w, payload = do(t, router, http.MethodPut, "/api/v1/cart/items/3", gin.H{"quantity": -5})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), payload["count"])

	// Remove, then remove again (idempotent).
	w, payload = do(t, router, http.MethodDelete, "/api/v1/cart/items/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), payload["count"])
	w, _ = do(t, router, http.MethodDelete, "/api/v1/cart/items/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddVariantLine(t *testing.T) {
	router := newTestServer(t)

	w, payload := do(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "1",
		"variant_id": "1-gengar-liso",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	items := payload["items"].([]interface{})
	require.Len(t, items, 1)
	line := items[0].(map[string]interface{})
	assert.Equal(t, "1-gengar-liso", line["variant_id"])

	w, _ = do(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "1",
		"variant_id": "no-such-variant",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddUnknownProduct(t *testing.T) {
	router := newTestServer(t)

	w, _ := do(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "999"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	router := newTestServer(t)

	// Empty cart: quote is zero, order placement conflicts.
	w, payload := do(t, router, http.MethodGet, "/api/v1/checkout/quote", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), payload["total"])

	order := gin.H{
		"shipping": gin.H{
			"full_name": "Maria Silva",
			"email":     "maria@example.com",
			"phone":     "+55 11 99999-0000",
			"address":   "Rua das Flores 123",
			"city":      "São Paulo",
			"state":     "SP",
			"zip_code":  "01000-000",
		},
		"payment": gin.H{
			"card_number": "4111 1111 1111 1111",
			"card_name":   "MARIA SILVA",
			"expiry_date": "12/27",
			"cvv":         "123",
		},
	}

	w, _ = do(t, router, http.MethodPost, "/api/v1/checkout", order)
	assert.Equal(t, http.StatusConflict, w.Code)

	// With items: order confirms and the cart is cleared.
	w, _ = do(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "6", "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	w, payload = do(t, router, http.MethodPost, "/api/v1/checkout", order)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "confirmed", payload["status"])
	assert.Contains(t, payload["number"], "ORD-")
	assert.InDelta(t, 290.0, payload["total"].(float64), 1e-9)

	w, payload = do(t, router, http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), payload["count"])
}
