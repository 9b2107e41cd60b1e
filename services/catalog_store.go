package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ShuvO9gi/candyExpress-shopify-hydrogen-professional/models"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CatalogStore keeps the last good copy of each collection page.
type CatalogStore interface {
	SaveCollection(ctx context.Context, collection *models.Collection, page models.PageRequest) error
	LoadCollection(ctx context.Context, handle string, page models.PageRequest) (*models.Collection, error)
}

// GormCatalogStore is the Postgres catalog mirror.
type GormCatalogStore struct {
	db *gorm.DB
}

var _ CatalogStore = (*GormCatalogStore)(nil)

func NewGormCatalogStore(db *gorm.DB) *GormCatalogStore {
	return &GormCatalogStore{db: db}
}

// AutoMigrate creates or updates the mirror tables.
func (s *GormCatalogStore) AutoMigrate() error {
	return s.db.AutoMigrate(&models.MirroredCollection{}, &models.MirroredProduct{})
}

// SaveCollection replaces the mirrored copy of one collection page.
func (s *GormCatalogStore) SaveCollection(ctx context.Context, collection *models.Collection, page models.PageRequest) error {
	row := models.MirroredCollection{
		Handle:      collection.Handle,
		PageKey:     page.Key(),
		RemoteID:    collection.ID,
		Title:       collection.Title,
		Description: collection.Description,
		PageInfo:    datatypes.NewJSONType(collection.PageInfo),
		FetchedAt:   time.Now().UTC(),
		Products:    make([]models.MirroredProduct, 0, len(collection.Products)),
	}
	for i, p := range collection.Products {
		row.Products = append(row.Products, models.NewMirroredProduct(i, p))
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stale []models.MirroredCollection
		if err := tx.Where("handle = ? AND page_key = ?", row.Handle, row.PageKey).Find(&stale).Error; err != nil {
			return fmt.Errorf("find mirrored page: %w", err)
		}
		for _, old := range stale {
			if err := tx.Where("collection_id = ?", old.ID).Delete(&models.MirroredProduct{}).Error; err != nil {
				return fmt.Errorf("delete mirrored products: %w", err)
			}
			if err := tx.Delete(&old).Error; err != nil {
				return fmt.Errorf("delete mirrored page: %w", err)
			}
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("create mirrored page: %w", err)
		}
		return nil
	})
}

// LoadCollection returns the mirrored page or ErrCollectionNotFound.
func (s *GormCatalogStore) LoadCollection(ctx context.Context, handle string, page models.PageRequest) (*models.Collection, error) {
	var row models.MirroredCollection
	err := s.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("handle = ? AND page_key = ?", handle, page.Key()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s (mirror)", ErrCollectionNotFound, handle)
	}
	if err != nil {
		return nil, fmt.Errorf("load mirrored page: %w", err)
	}

	collection := &models.Collection{
		ID:          row.RemoteID,
		Handle:      row.Handle,
		Title:       row.Title,
		Description: row.Description,
		Products:    make([]models.Product, 0, len(row.Products)),
		PageInfo:    row.PageInfo.Data(),
		FromMirror:  true,
	}
	for _, p := range row.Products {
		collection.Products = append(collection.Products, p.Product())
	}
	return collection, nil
}

// MirroredCatalogSource serves collections from upstream, records every good
// page in the store and falls back to the stored copy when upstream fails.
// A collection upstream reports as missing is never served from the mirror.
type MirroredCatalogSource struct {
	upstream CatalogSource
	store    CatalogStore
	logger   *zap.Logger
}

var _ CatalogSource = (*MirroredCatalogSource)(nil)

func NewMirroredCatalogSource(upstream CatalogSource, store CatalogStore, logger *zap.Logger) *MirroredCatalogSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MirroredCatalogSource{upstream: upstream, store: store, logger: logger.Named("mirror")}
}

func (m *MirroredCatalogSource) FetchCollection(ctx context.Context, handle string, page models.PageRequest) (*models.Collection, error) {
	collection, err := m.upstream.FetchCollection(ctx, handle, page)
	if err == nil {
		if saveErr := m.store.SaveCollection(ctx, collection, page); saveErr != nil {
			m.logger.Warn("mirror write failed", zap.String("handle", handle), zap.Error(saveErr))
		}
		return collection, nil
	}
	if errors.Is(err, ErrCollectionNotFound) || errors.Is(err, ErrMissingHandle) {
		return nil, err
	}

	m.logger.Warn("storefront unavailable, serving mirrored page", zap.String("handle", handle), zap.Error(err))
	mirrored, mirrorErr := m.store.LoadCollection(ctx, handle, page)
	if mirrorErr != nil {
		m.logger.Warn("no mirrored page", zap.String("handle", handle), zap.Error(mirrorErr))
		return nil, err
	}
	return mirrored, nil
}
