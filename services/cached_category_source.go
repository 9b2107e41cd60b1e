package services

import (
	"context"
	"time"

	category_cache "github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/cache"
	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultDirectoryFetchTimeout bounds one shared directory fetch.
const DefaultDirectoryFetchTimeout = 10 * time.Second

// CachedCategorySource layers the in-process and Redis caches over a category
// source. Concurrent misses share one upstream fetch. Failed fetches are never cached.
//
// The shared fetch is detached from every caller's context: a caller that gives
// up only stops waiting, it never cancels the fetch other callers wait on.
type CachedCategorySource struct {
	source       CategorySource
	local        *category_cache.DirectoryCache
	shared       *category_cache.RedisDirectory
	group        singleflight.Group
	fetchTimeout time.Duration
	logger       *zap.Logger
}

var _ CategorySource = (*CachedCategorySource)(nil)

// NewCachedCategorySource wraps source. shared may be nil.
func NewCachedCategorySource(
	source CategorySource,
	local *category_cache.DirectoryCache,
	shared *category_cache.RedisDirectory,
	logger *zap.Logger,
) *CachedCategorySource {
	if logger == nil {
		logger = zap.NewNop()
	}
	if local == nil {
		local = category_cache.NewDirectoryCache(category_cache.TTL)
	}
	return &CachedCategorySource{
		source:       source,
		local:        local,
		shared:       shared,
		fetchTimeout: DefaultDirectoryFetchTimeout,
		logger:       logger,
	}
}

func (s *CachedCategorySource) LoadCategories(ctx context.Context) ([]models.Category, error) {
	if categories, ok := s.local.Get(); ok {
		return categories, nil
	}

	ch := s.group.DoChan("directory", func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()
		return s.fetch(fetchCtx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]models.Category), nil
	}
}

func (s *CachedCategorySource) fetch(ctx context.Context) ([]models.Category, error) {
	categories, ok, err := s.shared.Get(ctx)
	if err != nil {
		s.logger.Warn("shared category cache read failed", zap.Error(err))
	}
	if ok {
		s.local.Set(categories)
		return categories, nil
	}

	categories, err = s.source.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}
	s.local.Set(categories)
	if err := s.shared.Set(ctx, categories); err != nil {
		s.logger.Warn("shared category cache write failed", zap.Error(err))
	}
	return categories, nil
}

// Invalidate drops both cache layers.
func (s *CachedCategorySource) Invalidate(ctx context.Context) {
	s.local.Invalidate()
	if err := s.shared.Invalidate(ctx); err != nil {
		s.logger.Warn("shared category cache invalidate failed", zap.Error(err))
	}
}
