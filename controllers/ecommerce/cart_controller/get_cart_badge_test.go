package cart_controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCart struct {
	count int
	err   error
	seen  string
}

func (f *fakeCart) CartTotalQuantity(_ context.Context, cartID string) (int, error) {
	f.seen = cartID
	return f.count, f.err
}

func badge(t *testing.T, target string) models.CartBadge {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/store/cart/badge", GetCartBadge)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data models.CartBadge `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data
}

func TestGetCartBadge(t *testing.T) {
	cart := &fakeCart{count: 7}
	InitCartSource(cart)
	t.Cleanup(func() { InitCartSource(nil) })

	assert.Equal(t, 7, badge(t, "/store/cart/badge?cart_id=gid://shopify/Cart/abc").Count)
	assert.Equal(t, "gid://shopify/Cart/abc", cart.seen)
}

func TestGetCartBadge_FailsSoft(t *testing.T) {
	InitCartSource(&fakeCart{count: 3, err: errors.New("storefront down")})
	t.Cleanup(func() { InitCartSource(nil) })

	assert.Zero(t, badge(t, "/store/cart/badge?cart_id=abc").Count)
}

func TestGetCartBadge_NoCart(t *testing.T) {
	cart := &fakeCart{count: 3}
	InitCartSource(cart)
	t.Cleanup(func() { InitCartSource(nil) })

	assert.Zero(t, badge(t, "/store/cart/badge").Count)
	assert.Empty(t, cart.seen)
}
