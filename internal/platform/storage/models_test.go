package storage_test

import (
	"testing"

	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/Sane4ek777/catalog-sync/internal/platform/models/modelstesting"
	"github.com/Sane4ek777/catalog-sync/internal/platform/storage"
	"github.com/stretchr/testify/assert"
)

func TestUnitToDBProduct(t *testing.T) {
	t.Parallel()

	product := modelstesting.FakeProduct(func(p *models.Product) {
		p.Images = []string{"https://example.com/a.jpg", "https://example.com/b.jpg"}
	})

	dbProduct := storage.ToDBProduct(&product)

	assert.Equal(t, product.ID, dbProduct.ID, "should keep product id")
	assert.Equal(t, product.Slug, dbProduct.Slug, "should keep product slug")
	assert.Equal(t, product.PriceRrc, dbProduct.PriceRrc, "should keep product rrc")
	assert.Equal(t, product.CategoryID, dbProduct.CategoryID, "should keep product category")
	assert.Equal(t, "https://example.com/a.jpg\nhttps://example.com/b.jpg", dbProduct.Images, "should join image urls")
}

func TestUnitToDBAttributes(t *testing.T) {
	t.Parallel()

	attributes := []models.Attribute{
		{Name: "мощность", Value: "500 Вт"},
		{Name: "вес", Value: "2 кг"},
	}

	dbAttributes := storage.ToDBAttributes(7, attributes)

	assert.Len(t, dbAttributes, 2, "should convert all attributes")
	for ix := range dbAttributes {
		assert.Equal(t, int32(7), dbAttributes[ix].ProductID, "should set product id")
		assert.Equal(t, attributes[ix].Name, dbAttributes[ix].AttributeName, "should keep attribute name")
		assert.Equal(t, attributes[ix].Value, dbAttributes[ix].AttributeValue, "should keep attribute value")
	}

	assert.Empty(t, storage.ToDBAttributes(7, nil), "should return empty slice for no attributes")
}
