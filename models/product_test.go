package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMirroredProduct_KeepsCatalogFields(t *testing.T) {
	withImage := Product{
		ID:            "gid://shopify/Product/1",
		Handle:        "lakrids-twist",
		Title:         "Lakrids Twist",
		Tags:          TagsList{"licorice"},
		Price:         Money{Amount: "12.50", CurrencyCode: "DKK"},
		FeaturedImage: &ProductImage{URL: "https://cdn.example/twist.png", Width: 400},
	}
	row := NewMirroredProduct(3, withImage)
	assert.Equal(t, 3, row.Position)
	assert.Equal(t, withImage, row.Product())

	noImage := withImage
	noImage.FeaturedImage = nil
	assert.Nil(t, NewMirroredProduct(0, noImage).Product().FeaturedImage)
}
