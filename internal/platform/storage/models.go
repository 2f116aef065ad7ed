package storage

import (
	"strings"

	"github.com/Sane4ek777/catalog-sync/internal/platform/models"

	pgmodels "github.com/Sane4ek777/catalog-sync/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

// ToDBProduct converts models.Product into postgres product model.
func ToDBProduct(product *models.Product) *pgmodels.Product {
	return &pgmodels.Product{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Price:       product.Price,
		PriceRrc:    product.PriceRrc,
		Description: product.Description,
		Images:      toDBImages(product.Images),
		CategoryID:  product.CategoryID,
		Available:   product.Available,
		Origin:      product.Origin,
	}
}

// ToDBAttributes converts attribute pairs into postgres attribute models.
func ToDBAttributes(productID int32, attributes []models.Attribute) []pgmodels.ProductAttribute {
	if len(attributes) == 0 {
		return []pgmodels.ProductAttribute{}
	}

	dbAttributes := make([]pgmodels.ProductAttribute, 0, len(attributes))
	for ix := range attributes {
		dbAttributes = append(dbAttributes, pgmodels.ProductAttribute{
			ProductID:      productID,
			AttributeName:  attributes[ix].Name,
			AttributeValue: attributes[ix].Value,
		})
	}
	return dbAttributes
}

func toDBCategory(category *models.Category) *pgmodels.Category {
	return &pgmodels.Category{
		ID:       category.ID,
		Name:     category.Name,
		Slug:     category.Slug,
		ParentID: category.ParentID,
	}
}

func toAppCategory(category *pgmodels.Category) *models.Category {
	return &models.Category{
		ID:       category.ID,
		Name:     category.Name,
		Slug:     category.Slug,
		ParentID: category.ParentID,
	}
}

func toDBImages(urls []string) string {
	return strings.Join(urls, "\n")
}
