package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"go.uber.org/zap"
)

// ErrMenuUnavailable is returned when the menu endpoint answers with a non-2xx status.
var ErrMenuUnavailable = errors.New("menu items unavailable")

// maxMenuBody bounds how much of the menu response is read.
const maxMenuBody = 4 << 20

// CategorySource supplies the category directory.
type CategorySource interface {
	LoadCategories(ctx context.Context) ([]models.Category, error)
}

// MenuClient reads the category directory from the candy menu endpoint.
type MenuClient struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ CategorySource = (*MenuClient)(nil)

// NewMenuClient creates a client for the menu endpoint at url.
func NewMenuClient(url string, timeout time.Duration, logger *zap.Logger) *MenuClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MenuClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("menu"),
	}
}

// FetchMenu performs the GET and decodes the raw payload.
func (c *MenuClient) FetchMenu(ctx context.Context) (*models.MenuItems, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build menu request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch menu items: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxMenuBody))
		return nil, fmt.Errorf("%w: status %d", ErrMenuUnavailable, resp.StatusCode)
	}

	var items models.MenuItems
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxMenuBody)).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode menu items: %w", err)
	}
	return &items, nil
}

// LoadCategories fetches the menu and validates it into a category directory.
func (c *MenuClient) LoadCategories(ctx context.Context) ([]models.Category, error) {
	items, err := c.FetchMenu(ctx)
	if err != nil {
		return nil, err
	}
	entries := items.Entries()
	categories := items.Categories()
	if dropped := len(entries) - len(categories); dropped > 0 {
		c.logger.Debug("dropped menu entries", zap.Int("dropped", dropped), zap.Int("kept", len(categories)))
	}
	return categories, nil
}

// LoadCategoriesOrEmpty is the fail-soft boundary around a category source:
// any error is logged and turned into an empty directory.
func LoadCategoriesOrEmpty(ctx context.Context, source CategorySource, logger *zap.Logger) []models.Category {
	if source == nil {
		return []models.Category{}
	}
	categories, err := source.LoadCategories(ctx)
	if err != nil {
		if logger != nil {
			logger.Warn("category directory unavailable, continuing without categories", zap.Error(err))
		}
		return []models.Category{}
	}
	if categories == nil {
		return []models.Category{}
	}
	return categories
}
