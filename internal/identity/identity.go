package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sane4ek777/catalog-sync/internal/platform"
	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/samber/lo"
)

// Store is product attributes storage.
type Store interface {
	// ProductIDByAttribute returns id of a product holding the attribute or platform.ErrNotFound.
	ProductIDByAttribute(ctx context.Context, name, value string) (int32, error)
}

//go:generate mockery --name Store --filename store.go

// Checker decides whether a scraped product is already stored, matching by
// the article attribute value.
type Checker struct {
	store       Store
	articleAttr string
}

// NewChecker returns new Checker deduplicating by articleAttr values.
func NewChecker(store Store, articleAttr string) Checker {
	return Checker{
		store:       store,
		articleAttr: articleAttr,
	}
}

// ShouldInsert reports whether product is new. For an already stored article
// it returns false with the id of the product holding it. Products without an
// article attribute are always treated as new.
func (c Checker) ShouldInsert(ctx context.Context, product *models.ScrapedProduct) (bool, int32, error) {
	article, found := lo.Find(product.Attributes, func(attr models.Attribute) bool {
		return attr.Name == c.articleAttr
	})
	if !found {
		return true, 0, nil
	}

	id, err := c.store.ProductIDByAttribute(ctx, c.articleAttr, article.Value)
	if errors.Is(err, platform.ErrNotFound) {
		return true, 0, nil
	}
	if err != nil {
		return false, 0, fmt.Errorf("can't check article %q: %w", article.Value, err)
	}

	return false, id, nil
}
