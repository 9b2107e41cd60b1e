package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedQuery struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func storefrontServer(t *testing.T, body string, seen *capturedQuery) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/2024-01/graphql.json", r.URL.Path)
		assert.Equal(t, "secret-token", r.Header.Get("X-Shopify-Storefront-Access-Token"))
		if seen != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const collectionBody = `{
  "data": {
    "collection": {
      "id": "gid://shopify/Collection/1",
      "handle": "bland-selv-slik",
      "title": "Bland selv slik",
      "description": "Pick and mix",
      "products": {
        "nodes": [
          {
            "id": "gid://shopify/Product/1",
            "handle": "lakrids-twist",
            "title": "Lakrids Twist",
            "tags": ["licorice"],
            "featuredImage": {"id": "img1", "url": "https://cdn.example/twist.png", "altText": "Twist", "width": 400, "height": 400},
            "priceRange": {"minVariantPrice": {"amount": "12.50", "currencyCode": "DKK"}}
          },
          {
            "id": "gid://shopify/Product/2",
            "handle": "chokolade-kugle",
            "title": "Chokolade Kugle",
            "tags": null,
            "featuredImage": null,
            "priceRange": {"minVariantPrice": {"amount": "8.00", "currencyCode": "DKK"}}
          }
        ],
        "pageInfo": {"hasPreviousPage": false, "hasNextPage": true, "startCursor": "s1", "endCursor": "e1"}
      }
    }
  }
}`

func TestStorefrontClient_FetchCollection(t *testing.T) {
	var seen capturedQuery
	srv := storefrontServer(t, collectionBody, &seen)
	client := NewStorefrontClient(srv.URL, "2024-01", "secret-token", time.Second, nil)

	collection, err := client.FetchCollection(context.Background(), "bland-selv-slik", models.PageRequest{After: "c0"})
	require.NoError(t, err)

	assert.Equal(t, "bland-selv-slik", seen.Variables["handle"])
	assert.Equal(t, float64(models.CollectionPageSize), seen.Variables["first"])
	assert.Equal(t, "c0", seen.Variables["endCursor"])
	assert.NotContains(t, seen.Variables, "last")

	assert.Equal(t, "Bland selv slik", collection.Title)
	require.Len(t, collection.Products, 2)
	first := collection.Products[0]
	assert.Equal(t, "gid://shopify/Product/1", first.ID)
	assert.Equal(t, models.TagsList{"licorice"}, first.Tags)
	assert.Equal(t, models.Money{Amount: "12.50", CurrencyCode: "DKK"}, first.Price)
	require.NotNil(t, first.FeaturedImage)
	assert.Equal(t, "https://cdn.example/twist.png", first.FeaturedImage.URL)

	second := collection.Products[1]
	assert.NotNil(t, second.Tags)
	assert.Empty(t, second.Tags)
	assert.Nil(t, second.FeaturedImage)

	assert.True(t, collection.PageInfo.HasNextPage)
	assert.Equal(t, "e1", collection.PageInfo.EndCursor)
	assert.False(t, collection.FromMirror)
}

func TestStorefrontClient_BackwardPage(t *testing.T) {
	var seen capturedQuery
	srv := storefrontServer(t, collectionBody, &seen)
	client := NewStorefrontClient(srv.URL, "2024-01", "secret-token", time.Second, nil)

	_, err := client.FetchCollection(context.Background(), "bland-selv-slik", models.PageRequest{Before: "s9"})
	require.NoError(t, err)
	assert.Equal(t, float64(models.CollectionPageSize), seen.Variables["last"])
	assert.Equal(t, "s9", seen.Variables["startCursor"])
	assert.NotContains(t, seen.Variables, "first")
}

func TestStorefrontClient_CollectionNotFound(t *testing.T) {
	srv := storefrontServer(t, `{"data":{"collection":null}}`, nil)
	client := NewStorefrontClient(srv.URL, "2024-01", "secret-token", time.Second, nil)

	_, err := client.FetchCollection(context.Background(), "missing", models.PageRequest{})
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestStorefrontClient_MissingHandle(t *testing.T) {
	client := NewStorefrontClient("shop.example", "2024-01", "secret-token", time.Second, nil)
	_, err := client.FetchCollection(context.Background(), "  ", models.PageRequest{})
	assert.ErrorIs(t, err, ErrMissingHandle)
}

func TestStorefrontClient_GraphQLErrors(t *testing.T) {
	srv := storefrontServer(t, `{"data":null,"errors":[{"message":"throttled"}]}`, nil)
	client := NewStorefrontClient(srv.URL, "2024-01", "secret-token", time.Second, nil)

	_, err := client.FetchCollection(context.Background(), "x", models.PageRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}

func TestStorefrontClient_Disabled(t *testing.T) {
	client := NewStorefrontClient("", "2024-01", "", time.Second, nil)
	_, err := client.FetchCollection(context.Background(), "x", models.PageRequest{})
	assert.ErrorIs(t, err, ErrStorefrontDisabled)
}

func TestStorefrontClient_CartTotalQuantity(t *testing.T) {
	var seen capturedQuery
	srv := storefrontServer(t, `{"data":{"cart":{"totalQuantity":4}}}`, &seen)
	client := NewStorefrontClient(srv.URL, "2024-01", "secret-token", time.Second, nil)

	n, err := client.CartTotalQuantity(context.Background(), "gid://shopify/Cart/abc")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "gid://shopify/Cart/abc", seen.Variables["cartId"])

	n, err = client.CartTotalQuantity(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStorefrontClient_MissingCartIsEmpty(t *testing.T) {
	srv := storefrontServer(t, `{"data":{"cart":null}}`, nil)
	client := NewStorefrontClient(srv.URL, "2024-01", "secret-token", time.Second, nil)

	n, err := client.CartTotalQuantity(context.Background(), "gid://shopify/Cart/gone")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewStorefrontClient_Endpoint(t *testing.T) {
	client := NewStorefrontClient("candyexpress.myshopify.com/", "2024-01", "t", time.Second, nil)
	assert.Equal(t, "https://candyexpress.myshopify.com/api/2024-01/graphql.json", client.endpoint)
}
