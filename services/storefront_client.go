package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"go.uber.org/zap"
)

var (
	ErrMissingHandle      = errors.New("collection handle is required")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrStorefrontDisabled = errors.New("storefront API is not configured")
)

const maxStorefrontBody = 8 << 20

// CatalogSource supplies collection pages.
type CatalogSource interface {
	FetchCollection(ctx context.Context, handle string, page models.PageRequest) (*models.Collection, error)
}

// CartSource supplies the header cart counter.
type CartSource interface {
	CartTotalQuantity(ctx context.Context, cartID string) (int, error)
}

const productItemFragment = `
  fragment MoneyProductItem on MoneyV2 {
    amount
    currencyCode
  }
  fragment ProductItem on Product {
    id
    handle
    title
    tags
    featuredImage {
      id
      altText
      url
      width
      height
    }
    priceRange {
      minVariantPrice {
        ...MoneyProductItem
      }
    }
  }
`

const collectionQuery = productItemFragment + `
  query Collection(
    $handle: String!
    $first: Int
    $last: Int
    $startCursor: String
    $endCursor: String
  ) {
    collection(handle: $handle) {
      id
      handle
      title
      description
      products(first: $first, last: $last, before: $startCursor, after: $endCursor) {
        nodes {
          ...ProductItem
        }
        pageInfo {
          hasPreviousPage
          hasNextPage
          endCursor
          startCursor
        }
      }
    }
  }
`

const cartQuantityQuery = `
  query CartQuantity($cartId: ID!) {
    cart(id: $cartId) {
      totalQuantity
    }
  }
`

// StorefrontClient talks to the Shopify Storefront GraphQL API.
type StorefrontClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

var (
	_ CatalogSource = (*StorefrontClient)(nil)
	_ CartSource    = (*StorefrontClient)(nil)
)

// NewStorefrontClient builds a client for https://{domain}/api/{version}/graphql.json.
// domain may also be a full base URL, which tests use to point at a local server.
func NewStorefrontClient(domain, version, token string, timeout time.Duration, logger *zap.Logger) *StorefrontClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	base := strings.TrimRight(domain, "/")
	if base != "" && !strings.Contains(base, "://") {
		base = "https://" + base
	}
	endpoint := ""
	if base != "" {
		endpoint = fmt.Sprintf("%s/api/%s/graphql.json", base, version)
	}
	return &StorefrontClient{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("storefront"),
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse[T any] struct {
	Data   T              `json:"data"`
	Errors []graphQLError `json:"errors"`
}

func (c *StorefrontClient) do(ctx context.Context, query string, variables map[string]any, out any) error {
	if c.endpoint == "" {
		return ErrStorefrontDisabled
	}
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encode storefront query: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build storefront request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storefront request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxStorefrontBody))
		return fmt.Errorf("storefront request: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxStorefrontBody)).Decode(out); err != nil {
		return fmt.Errorf("decode storefront response: %w", err)
	}
	return nil
}

func joinGraphQLErrors(errs []graphQLError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return fmt.Errorf("storefront query failed: %s", strings.Join(msgs, "; "))
}

type collectionPayload struct {
	Collection *struct {
		ID          string `json:"id"`
		Handle      string `json:"handle"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Products    struct {
			Nodes []struct {
				ID            string               `json:"id"`
				Handle        string               `json:"handle"`
				Title         string               `json:"title"`
				Tags          []string             `json:"tags"`
				FeaturedImage *models.ProductImage `json:"featuredImage"`
				PriceRange    struct {
					MinVariantPrice models.Money `json:"minVariantPrice"`
				} `json:"priceRange"`
			} `json:"nodes"`
			PageInfo models.PageInfo `json:"pageInfo"`
		} `json:"products"`
	} `json:"collection"`
}

// collectionVariables mirrors cursor pagination: forward pages use first/after,
// backward pages use last/before.
func collectionVariables(handle string, page models.PageRequest) map[string]any {
	vars := map[string]any{"handle": handle}
	if page.Before != "" {
		vars["last"] = models.CollectionPageSize
		vars["startCursor"] = page.Before
		return vars
	}
	vars["first"] = models.CollectionPageSize
	if page.After != "" {
		vars["endCursor"] = page.After
	}
	return vars
}

// FetchCollection returns one page of the collection's products in storefront order.
func (c *StorefrontClient) FetchCollection(ctx context.Context, handle string, page models.PageRequest) (*models.Collection, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, ErrMissingHandle
	}

	var resp graphQLResponse[collectionPayload]
	if err := c.do(ctx, collectionQuery, collectionVariables(handle, page), &resp); err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, joinGraphQLErrors(resp.Errors)
	}
	if resp.Data.Collection == nil {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, handle)
	}

	src := resp.Data.Collection
	collection := &models.Collection{
		ID:          src.ID,
		Handle:      src.Handle,
		Title:       src.Title,
		Description: src.Description,
		Products:    make([]models.Product, 0, len(src.Products.Nodes)),
		PageInfo:    src.Products.PageInfo,
	}
	for _, n := range src.Products.Nodes {
		tags := n.Tags
		if tags == nil {
			tags = []string{}
		}
		collection.Products = append(collection.Products, models.Product{
			ID:            n.ID,
			Handle:        n.Handle,
			Title:         n.Title,
			Tags:          tags,
			Price:         n.PriceRange.MinVariantPrice,
			FeaturedImage: n.FeaturedImage,
		})
	}
	c.logger.Debug("fetched collection page",
		zap.String("handle", handle),
		zap.Int("products", len(collection.Products)),
		zap.Bool("has_next", collection.PageInfo.HasNextPage))
	return collection, nil
}

type cartPayload struct {
	Cart *struct {
		TotalQuantity int `json:"totalQuantity"`
	} `json:"cart"`
}

// CartTotalQuantity returns the number of items in the cart. A missing cart counts as empty.
func (c *StorefrontClient) CartTotalQuantity(ctx context.Context, cartID string) (int, error) {
	if strings.TrimSpace(cartID) == "" {
		return 0, nil
	}
	var resp graphQLResponse[cartPayload]
	if err := c.do(ctx, cartQuantityQuery, map[string]any{"cartId": cartID}, &resp); err != nil {
		return 0, err
	}
	if len(resp.Errors) > 0 {
		return 0, joinGraphQLErrors(resp.Errors)
	}
	if resp.Data.Cart == nil {
		return 0, nil
	}
	return resp.Data.Cart.TotalQuantity, nil
}
