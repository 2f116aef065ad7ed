package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sane4ek777/catalog-sync/internal/platform"
	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/Sane4ek777/catalog-sync/internal/platform/storage/gen/postgres/public/table"
	"github.com/lib/pq"

	pgmodels "github.com/Sane4ek777/catalog-sync/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

const uniqueViolationCode = "23505"

// Postgres is storage for products, attributes and categories.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// DeleteFeedProducts deletes all feed-origin products with their attributes.
// Returns number of deleted products.
func (p Postgres) DeleteFeedProducts(ctx context.Context) (int64, error) {
	deletedProducts := int64(0)

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		feedProductIDs := table.Product.
			SELECT(table.Product.ID).
			WHERE(table.Product.Origin.EQ(pg.String(models.OriginFeed)))

		_, err := table.ProductAttribute.DELETE().
			WHERE(table.ProductAttribute.ProductID.IN(feedProductIDs)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete feed products attributes: %w", err)
		}

		result, err := table.Product.DELETE().
			WHERE(table.Product.Origin.EQ(pg.String(models.OriginFeed))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete feed products: %w", err)
		}

		deletedProducts, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}

	return deletedProducts, nil
}

// CategoryByName returns category with provided name or platform.ErrNotFound.
func (p Postgres) CategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var category pgmodels.Category
	err := table.Category.SELECT(table.Category.AllColumns).
		WHERE(table.Category.Name.EQ(pg.String(name))).
		QueryContext(ctx, p.db, &category)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("category %q: %w", name, platform.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("can't get category by name: %w", err)
	}

	return toAppCategory(&category), nil
}

// CategoryByID returns category with provided id or platform.ErrNotFound.
func (p Postgres) CategoryByID(ctx context.Context, id int32) (*models.Category, error) {
	var category pgmodels.Category
	err := table.Category.SELECT(table.Category.AllColumns).
		WHERE(table.Category.ID.EQ(pg.Int32(id))).
		QueryContext(ctx, p.db, &category)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("category %d: %w", id, platform.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("can't get category by id: %w", err)
	}

	return toAppCategory(&category), nil
}

// NextCategoryID returns the lowest free category id (max existing id + 1).
func (p Postgres) NextCategoryID(ctx context.Context) (int32, error) {
	var dest struct {
		MaxID *int32
	}
	err := table.Category.SELECT(pg.MAXi(table.Category.ID).AS("max_id")).
		QueryContext(ctx, p.db, &dest)
	if err != nil {
		return 0, fmt.Errorf("can't get max category id: %w", err)
	}

	if dest.MaxID == nil {
		return 1, nil
	}
	return *dest.MaxID + 1, nil
}

// InsertCategory inserts category with explicit id. A name or slug conflict
// is returned as platform.ErrConstraintRace.
func (p Postgres) InsertCategory(ctx context.Context, category models.Category) error {
	_, err := table.Category.INSERT(table.Category.AllColumns).
		MODEL(toDBCategory(&category)).
		ExecContext(ctx, p.db)
	if isUniqueViolation(err) {
		return fmt.Errorf("can't insert category %q: %w", category.Name, platform.ErrConstraintRace)
	}
	if err != nil {
		return fmt.Errorf("can't insert category %q: %w", category.Name, err)
	}

	return nil
}

// CategorySlugExists reports whether any category holds provided slug.
func (p Postgres) CategorySlugExists(ctx context.Context, slug string) (bool, error) {
	var dest struct {
		Count int64
	}
	err := table.Category.SELECT(pg.COUNT(table.Category.ID).AS("count")).
		WHERE(table.Category.Slug.EQ(pg.String(slug))).
		QueryContext(ctx, p.db, &dest)
	if err != nil {
		return false, fmt.Errorf("can't check category slug: %w", err)
	}

	return dest.Count > 0, nil
}

// ProductSlugExists reports whether any product holds provided slug.
func (p Postgres) ProductSlugExists(ctx context.Context, slug string) (bool, error) {
	var dest struct {
		Count int64
	}
	err := table.Product.SELECT(pg.COUNT(table.Product.ID).AS("count")).
		WHERE(table.Product.Slug.EQ(pg.String(slug))).
		QueryContext(ctx, p.db, &dest)
	if err != nil {
		return false, fmt.Errorf("can't check product slug: %w", err)
	}

	return dest.Count > 0, nil
}

// NextProductID returns the lowest free product id (max existing id + 1).
func (p Postgres) NextProductID(ctx context.Context) (int32, error) {
	var dest struct {
		MaxID *int32
	}
	err := table.Product.SELECT(pg.MAXi(table.Product.ID).AS("max_id")).
		QueryContext(ctx, p.db, &dest)
	if err != nil {
		return 0, fmt.Errorf("can't get max product id: %w", err)
	}

	if dest.MaxID == nil {
		return 1, nil
	}
	return *dest.MaxID + 1, nil
}

// InsertProduct inserts product and its attribute rows as one transaction.
// An id or slug conflict is returned as platform.ErrConstraintRace.
func (p Postgres) InsertProduct(ctx context.Context, product models.Product, attributes []models.Attribute) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		_, err := table.Product.INSERT(table.Product.AllColumns).
			MODEL(ToDBProduct(&product)).
			ExecContext(ctx, tx)
		if isUniqueViolation(err) {
			return fmt.Errorf("can't insert product %q: %w", product.Slug, platform.ErrConstraintRace)
		}
		if err != nil {
			return fmt.Errorf("can't insert product %q: %w", product.Slug, err)
		}

		if len(attributes) == 0 {
			return nil
		}

		_, err = table.ProductAttribute.INSERT(table.ProductAttribute.AllColumns.Except(table.ProductAttribute.ID)).
			MODELS(ToDBAttributes(product.ID, attributes)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert product %q attributes: %w", product.Slug, err)
		}

		return nil
	})
}

// ProductIDByAttribute returns id of a product holding attribute with provided
// name and exact value, or platform.ErrNotFound.
func (p Postgres) ProductIDByAttribute(ctx context.Context, name, value string) (int32, error) {
	var attribute pgmodels.ProductAttribute
	err := table.ProductAttribute.SELECT(table.ProductAttribute.ProductID).
		WHERE(pg.AND(
			table.ProductAttribute.AttributeName.EQ(pg.String(name)),
			table.ProductAttribute.AttributeValue.EQ(pg.String(value)),
		)).
		LIMIT(1).
		QueryContext(ctx, p.db, &attribute)

	if errors.Is(err, qrm.ErrNoRows) {
		return 0, fmt.Errorf("attribute %q=%q: %w", name, value, platform.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("can't get product by attribute: %w", err)
	}

	return attribute.ProductID, nil
}

// DistinctAttributeValues counts distinct attribute values per attribute name
// across scrape-origin products whose name starts with namePrefix.
func (p Postgres) DistinctAttributeValues(ctx context.Context, namePrefix string) (map[string]int, error) {
	var dest []struct {
		Name   string
		Values int64
	}

	err := pg.SELECT(
		table.ProductAttribute.AttributeName.AS("name"),
		pg.COUNT(pg.DISTINCT(table.ProductAttribute.AttributeValue)).AS("values"),
	).
		FROM(table.ProductAttribute.
			INNER_JOIN(table.Product, table.Product.ID.EQ(table.ProductAttribute.ProductID)),
		).
		WHERE(pg.AND(
			table.Product.Origin.EQ(pg.String(models.OriginScrape)),
			table.Product.Name.LIKE(pg.String(likePrefix(namePrefix))),
		)).
		GROUP_BY(table.ProductAttribute.AttributeName).
		QueryContext(ctx, p.db, &dest)
	if err != nil {
		return nil, fmt.Errorf("can't count attribute values: %w", err)
	}

	counts := make(map[string]int, len(dest))
	for ix := range dest {
		counts[dest[ix].Name] = int(dest[ix].Values)
	}

	return counts, nil
}

// UpdateProductName sets product's display name.
func (p Postgres) UpdateProductName(ctx context.Context, id int32, name string) error {
	result, err := table.Product.UPDATE(table.Product.Name).
		SET(pg.String(name)).
		WHERE(table.Product.ID.EQ(pg.Int32(id))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update product name: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update name of product %d: %w", id, platform.ErrNotFound)
	}

	return nil
}

// ListProductPrices returns id, price and rrc of every stored product.
func (p Postgres) ListProductPrices(ctx context.Context) ([]models.ProductPrice, error) {
	var products []pgmodels.Product
	err := table.Product.SELECT(table.Product.ID, table.Product.Price, table.Product.PriceRrc).
		ORDER_BY(table.Product.ID.ASC()).
		QueryContext(ctx, p.db, &products)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't list product prices: %w", err)
	}

	prices := make([]models.ProductPrice, 0, len(products))
	for ix := range products {
		prices = append(prices, models.ProductPrice{
			ID:       products[ix].ID,
			Price:    products[ix].Price,
			PriceRrc: products[ix].PriceRrc,
		})
	}

	return prices, nil
}

// UpdateProductRrc sets product's recommended retail price.
func (p Postgres) UpdateProductRrc(ctx context.Context, id int32, rrc float64) error {
	result, err := table.Product.UPDATE(table.Product.PriceRrc).
		SET(pg.Float(rrc)).
		WHERE(table.Product.ID.EQ(pg.Int32(id))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update product rrc: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update rrc of product %d: %w", id, platform.ErrNotFound)
	}

	return nil
}

func likePrefix(prefix string) string {
	return prefix + "%"
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
