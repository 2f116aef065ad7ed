package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/Sane4ek777/catalog-sync/internal/platform/storage/gen/postgres/public/model"
	"github.com/Sane4ek777/catalog-sync/internal/platform/storage/gen/postgres/public/table"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertCategories is a helper test function to insert categories.
func InsertCategories(t *testing.T, exc qrm.Executable, categories ...pgmodels.Category) {
	t.Helper()

	if len(categories) == 0 {
		return
	}

	toInsert := make([]pgmodels.Category, 0, len(categories))
	toInsert = append(toInsert, categories...)

	_, err := table.Category.INSERT(table.Category.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert categories", err)
	}
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	toInsert := make([]pgmodels.Product, 0, len(products))
	toInsert = append(toInsert, products...)

	_, err := table.Product.INSERT(table.Product.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// InsertAttributes is a helper test function to insert product attributes.
func InsertAttributes(t *testing.T, exc qrm.Executable, attributes ...pgmodels.ProductAttribute) {
	t.Helper()

	if len(attributes) == 0 {
		return
	}

	toInsert := make([]pgmodels.ProductAttribute, 0, len(attributes))
	toInsert = append(toInsert, attributes...)

	_, err := table.ProductAttribute.INSERT(table.ProductAttribute.AllColumns.Except(table.ProductAttribute.ID)).
		MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert attributes", err)
	}
}

// GetCategories is a helper test function to get all categories.
func GetCategories(t *testing.T, queryable qrm.Queryable) []pgmodels.Category {
	t.Helper()

	categories := []pgmodels.Category{}
	err := table.Category.SELECT(table.Category.AllColumns).
		WHERE(table.Category.ID.IS_NOT_NULL()).
		Query(queryable, &categories)
	if err != nil {
		t.Fatal("can't get categories", err)
	}

	return categories
}

// GetProducts is a helper test function to get all products.
func GetProducts(t *testing.T, queryable qrm.Queryable) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.IS_NOT_NULL()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetAttributes is a helper test function to get all product attributes.
func GetAttributes(t *testing.T, queryable qrm.Queryable) []pgmodels.ProductAttribute {
	t.Helper()

	attributes := []pgmodels.ProductAttribute{}
	err := table.ProductAttribute.SELECT(table.ProductAttribute.AllColumns).
		WHERE(table.ProductAttribute.ID.IS_NOT_NULL()).
		Query(queryable, &attributes)
	if err != nil {
		t.Fatal("can't get attributes", err)
	}

	return attributes
}

// CleanupData is a helper test function to wipe all catalog tables.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.ProductAttribute.DELETE().WHERE(table.ProductAttribute.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete attributes data", err)
	}

	_, err = table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete products data", err)
	}

	_, err = table.Category.DELETE().WHERE(table.Category.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete categories data", err)
	}
}
