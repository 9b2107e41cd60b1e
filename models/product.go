package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Catalog types (as returned by the Storefront API)
// ═══════════════════════════════════════════════════════════

// Money is a currency amount. Amount stays a decimal string so prices are
// never rounded on their way through the service.
type Money struct {
	Amount       string `json:"amount" example:"24.95"`
	CurrencyCode string `json:"currencyCode" example:"DKK"`
}

type ProductImage struct {
	ID      string `json:"id,omitempty"`
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

// Product is read-only once fetched; views filter and re-display it but never mutate it.
type Product struct {
	ID            string        `json:"id" example:"gid://shopify/Product/8123456789"`
	Handle        string        `json:"handle" example:"lakrids-twist"`
	Title         string        `json:"title" example:"Lakrids Twist"`
	Tags          TagsList      `json:"tags"`
	Price         Money         `json:"price"`
	FeaturedImage *ProductImage `json:"featuredImage,omitempty"`
}

// HasTag reports whether tag is one of the product's tags.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the product carries at least one of tags.
func (p Product) HasAnyTag(tags []string) bool {
	for _, tag := range tags {
		if p.HasTag(tag) {
			return true
		}
	}
	return false
}

type TagsList []string

// ═══════════════════════════════════════════════════════════
// Catalog mirror (GORM)
// ═══════════════════════════════════════════════════════════

// MirroredCollection is the last successfully fetched page of a collection.
type MirroredCollection struct {
	ID          uuid.UUID                    `json:"id" gorm:"type:uuid;primaryKey"`
	Handle      string                       `json:"handle" gorm:"not null;uniqueIndex:idx_mirrored_collections_page"`
	PageKey     string                       `json:"page_key" gorm:"not null;default:'';uniqueIndex:idx_mirrored_collections_page"`
	RemoteID    string                       `json:"remote_id" gorm:"not null"`
	Title       string                       `json:"title" gorm:"not null"`
	Description string                       `json:"description"`
	PageInfo    datatypes.JSONType[PageInfo] `json:"page_info" gorm:"type:jsonb;not null;default:'{}'"`
	FetchedAt   time.Time                    `json:"fetched_at" gorm:"not null"`

	Products []MirroredProduct `json:"products,omitempty" gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
}

// MirroredProduct is one product row of a mirrored collection page, in catalog order.
type MirroredProduct struct {
	ID            uuid.UUID                        `json:"id" gorm:"type:uuid;primaryKey"`
	CollectionID  uuid.UUID                        `json:"collection_id" gorm:"type:uuid;not null;index"`
	Position      int                              `json:"position" gorm:"not null"`
	ProductID     string                           `json:"product_id" gorm:"not null"`
	Handle        string                           `json:"handle" gorm:"not null"`
	Title         string                           `json:"title" gorm:"not null;index"`
	Tags          TagsList                         `json:"tags" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	PriceAmount   string                           `json:"price_amount" gorm:"type:numeric(12,2);not null"`
	CurrencyCode  string                           `json:"currency_code" gorm:"type:varchar(3);not null"`
	FeaturedImage datatypes.JSONType[ProductImage] `json:"featured_image" gorm:"type:jsonb;not null;default:'{}'"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *MirroredCollection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (MirroredCollection) TableName() string {
	return "mirrored_collections"
}

// BeforeCreate hook - auto-generate UUID v7
func (p *MirroredProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (MirroredProduct) TableName() string {
	return "mirrored_products"
}

// NewMirroredProduct flattens a catalog product for storage at the given position.
func NewMirroredProduct(position int, p Product) MirroredProduct {
	row := MirroredProduct{
		Position:     position,
		ProductID:    p.ID,
		Handle:       p.Handle,
		Title:        p.Title,
		Tags:         p.Tags,
		PriceAmount:  p.Price.Amount,
		CurrencyCode: p.Price.CurrencyCode,
	}
	if p.FeaturedImage != nil {
		row.FeaturedImage = datatypes.NewJSONType(*p.FeaturedImage)
	}
	return row
}

// Product rebuilds the catalog product stored in the row.
func (m MirroredProduct) Product() Product {
	p := Product{
		ID:     m.ProductID,
		Handle: m.Handle,
		Title:  m.Title,
		Tags:   m.Tags,
		Price:  Money{Amount: m.PriceAmount, CurrencyCode: m.CurrencyCode},
	}
	if img := m.FeaturedImage.Data(); img.URL != "" {
		p.FeaturedImage = &img
	}
	return p
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

func (t *TagsList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagsList, 0)
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan TagsList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(t))
}
