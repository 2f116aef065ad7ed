package ingestor_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Sane4ek777/catalog-sync/internal/ingestor"
	"github.com/Sane4ek777/catalog-sync/internal/ingestor/mocks"
	"github.com/Sane4ek777/catalog-sync/internal/platform"
	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	feedURL     = "https://example.com/feed.xml"
	articleAttr = "Артикул для заказа"
)

func TestUnitIngestFeed(t *testing.T) {
	feed := models.Feed{
		Categories: []models.FeedCategory{
			{ID: 1, Name: "Инструменты"},
			{ID: 2, Name: "Дрели", ParentID: lo.ToPtr(int32(1))},
		},
		Products: []models.FeedProduct{
			{ID: 10, Name: "Дрель", Price: 80, CategoryID: 2, Available: true},
		},
	}

	fetcher, decoder := mockFeedSource(t, &feed)
	storage := mocks.NewStorage(t)
	storage.On("DeleteFeedProducts", mock.Anything).Return(int64(0), nil).Once()

	storage.On("CategoryByName", mock.Anything, "Инструменты").Return(nil, platform.ErrNotFound).Once()
	storage.On("CategorySlugExists", mock.Anything, "instrumenty").Return(false, nil).Once()
	storage.On("InsertCategory", mock.Anything, models.Category{
		ID: 1, Name: "Инструменты", Slug: "instrumenty",
	}).Return(nil).Once()

	storage.On("CategoryByName", mock.Anything, "Дрели").Return(nil, platform.ErrNotFound).Once()
	storage.On("CategorySlugExists", mock.Anything, "dreli").Return(false, nil).Once()
	storage.On("InsertCategory", mock.Anything, mock.MatchedBy(func(c models.Category) bool {
		return c.ID == 2 && c.Slug == "dreli" && c.ParentID != nil && *c.ParentID == 1
	})).Return(nil).Once()

	storage.On("ProductSlugExists", mock.Anything, "drel").Return(false, nil).Once()
	storage.On("InsertProduct", mock.Anything, mock.MatchedBy(func(p models.Product) bool {
		return p.ID == 10 && p.Slug == "drel" &&
			p.PriceRrc != nil && *p.PriceRrc == 144.0 &&
			p.CategoryID != nil && *p.CategoryID == 2 &&
			p.Available && p.Origin == models.OriginFeed
	}), mock.Anything).Return(nil).Once()

	ing := ingestor.New(fetcher, decoder, nil, nil, nil, storage, feedURL)

	summary, err := ing.IngestFeed(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, 2, summary.CategoriesLoaded, "should load both categories")
	assert.Equal(t, 1, summary.ProductsLoaded, "should load the product")
	assert.Empty(t, summary.Errors, "shouldn't record any item errors")
}

func TestUnitIngestFeedReusesStoredCategories(t *testing.T) {
	feed := models.Feed{
		Categories: []models.FeedCategory{
			{ID: 1, Name: "Инструменты"},
		},
		Products: []models.FeedProduct{
			{ID: 10, Name: "Дрель", Price: 80, CategoryID: 1, Available: true},
		},
	}

	fetcher, decoder := mockFeedSource(t, &feed)
	storage := mocks.NewStorage(t)
	storage.On("DeleteFeedProducts", mock.Anything).Return(int64(2), nil).Once()
	storage.On("CategoryByName", mock.Anything, "Инструменты").
		Return(&models.Category{ID: 7, Name: "Инструменты", Slug: "instrumenty"}, nil).
		Once()
	storage.On("ProductSlugExists", mock.Anything, "drel").Return(false, nil).Once()
	storage.On("InsertProduct", mock.Anything, mock.MatchedBy(func(p models.Product) bool {
		return p.CategoryID != nil && *p.CategoryID == 7
	}), mock.Anything).Return(nil).Once()

	ing := ingestor.New(fetcher, decoder, nil, nil, nil, storage, feedURL)

	summary, err := ing.IngestFeed(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, 1, summary.CategoriesLoaded, "should reuse the stored category")
	assert.Equal(t, 1, summary.ProductsLoaded, "should attach the product to the stored category")
}

func TestUnitIngestFeedRecordsItemErrors(t *testing.T) {
	feed := models.Feed{
		Categories: []models.FeedCategory{
			{ID: 1, Name: "Инструменты"},
		},
		Products: []models.FeedProduct{
			{ID: 10, Name: "Дрель", Price: 80, CategoryID: 404, Available: true},
			{ID: 11, Name: "Пила", Price: 2000, CategoryID: 1, Available: true},
		},
		Malformed: []models.ItemError{
			{Ref: "offer 12", Kind: platform.KindMalformed, Msg: `can't parse price "abc"`},
		},
	}

	fetcher, decoder := mockFeedSource(t, &feed)
	storage := mocks.NewStorage(t)
	storage.On("DeleteFeedProducts", mock.Anything).Return(int64(0), nil).Once()
	storage.On("CategoryByName", mock.Anything, "Инструменты").Return(nil, platform.ErrNotFound).Once()
	storage.On("CategorySlugExists", mock.Anything, "instrumenty").Return(false, nil).Once()
	storage.On("InsertCategory", mock.Anything, mock.Anything).Return(nil).Once()
	storage.On("ProductSlugExists", mock.Anything, "pila").Return(false, nil).Once()
	storage.On("InsertProduct", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	ing := ingestor.New(fetcher, decoder, nil, nil, nil, storage, feedURL)

	summary, err := ing.IngestFeed(context.TODO())

	require.NoError(t, err, "item failures shouldn't fail the load")
	assert.Equal(t, 1, summary.ProductsLoaded, "should load the well-formed product")
	require.Len(t, summary.Errors, 2, "should carry decoder and load errors")
	assert.Equal(t, "offer 12", summary.Errors[0].Ref, "should keep decoder errors first")
	assert.Equal(t, "offer 10", summary.Errors[1].Ref, "should record the unknown category offer")
	assert.Equal(t, platform.KindMalformed, summary.Errors[1].Kind, "should classify the error")
}

func TestUnitIngestFeedFetchError(t *testing.T) {
	fetchErr := errors.New("connection refused")

	fetcher := mocks.NewFetcher(t)
	fetcher.On("FetchFile", mock.Anything, feedURL).Return(nil, fetchErr).Once()

	ing := ingestor.New(fetcher, mocks.NewDecoder(t), nil, nil, nil, mocks.NewStorage(t), feedURL)

	_, err := ing.IngestFeed(context.TODO())

	require.ErrorIs(t, err, fetchErr, "should return fetch error")
}

func TestUnitIngestScrapedBatch(t *testing.T) {
	links := []models.RowLink{
		{URL: "https://example.com/p/drel", Row: 1},
		{URL: "https://example.com/p/gone", Row: 2},
		{URL: "https://example.com/p/pila", Row: 3},
	}

	rows := mocks.NewRowSource(t)
	rows.On("Links").Return(links, nil).Once()
	rows.On("PriceInfo", 1).Return(models.RowPriceInfo{Price: 80, Article: "123"}, nil).Once()
	rows.On("PriceInfo", 3).Return(models.RowPriceInfo{Price: 2000, Article: "124"}, nil).Once()

	prober := mocks.NewProber(t)
	prober.On("Probe", mock.Anything, links[0].URL).Return(200, nil).Once()
	prober.On("Probe", mock.Anything, links[1].URL).Return(404, nil).Once()
	prober.On("Probe", mock.Anything, links[2].URL).Return(200, nil).Once()

	scraper := mocks.NewScraper(t)
	scraper.On("Scrape", mock.Anything, links[0].URL, "123").Return(&models.ScrapedPage{
		Title:       "Дрель",
		Description: "Компактная дрель",
		ImageURLs:   []string{"https://example.com/drel.jpg"},
		Breadcrumbs: []string{"Инструменты"},
		Attributes: []models.Attribute{
			{Name: articleAttr, Value: "000123"},
			{Name: "мощность", Value: "500 Вт"},
		},
	}, nil).Once()
	scraper.On("Scrape", mock.Anything, links[2].URL, "124").Return(&models.ScrapedPage{
		Title:       "Пила",
		Breadcrumbs: []string{"Инструменты"},
		Attributes: []models.Attribute{
			{Name: articleAttr, Value: "000124"},
		},
	}, nil).Once()

	storage := mocks.NewStorage(t)
	storage.On("ProductIDByAttribute", mock.Anything, articleAttr, "000123").
		Return(int32(0), platform.ErrNotFound).
		Once()
	storage.On("ProductIDByAttribute", mock.Anything, articleAttr, "000124").
		Return(int32(42), nil).
		Once()
	storage.On("CategoryByName", mock.Anything, "Инструменты").
		Return(&models.Category{ID: 1, Name: "Инструменты", Slug: "instrumenty"}, nil).
		Once()
	storage.On("NextProductID", mock.Anything).Return(int32(11), nil).Once()
	storage.On("ProductSlugExists", mock.Anything, "drel").Return(false, nil).Once()
	storage.On("InsertProduct", mock.Anything, mock.MatchedBy(func(p models.Product) bool {
		return p.ID == 11 && p.Slug == "drel" &&
			p.PriceRrc != nil && *p.PriceRrc == 144.0 &&
			p.CategoryID != nil && *p.CategoryID == 1 &&
			p.Available && p.Origin == models.OriginScrape
	}), mock.MatchedBy(func(attrs []models.Attribute) bool {
		return len(attrs) == 2 && attrs[0].Value == "000123"
	})).Return(nil).Once()
	storage.On("UpdateProductName", mock.Anything, int32(11), "Дрель (мощность: 500 Вт)").
		Return(nil).
		Once()

	ing := ingestor.New(nil, nil, prober, scraper, rows, storage, feedURL,
		ingestor.WithWorkers(1),
		ingestor.WithArticleAttribute(articleAttr),
	)

	summary, err := ing.IngestScrapedBatch(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, 1, summary.Inserted, "should insert the new product")
	assert.Equal(t, 1, summary.Skipped, "should skip the stored article")
	require.Len(t, summary.Errors, 1, "should record the missing page")
	assert.Equal(t, links[1].URL, summary.Errors[0].Ref, "should reference the missing page url")
	assert.Equal(t, platform.KindNotFound, summary.Errors[0].Kind, "should classify the missing page")
}

func TestUnitIngestScrapedBatchIsolatesFailures(t *testing.T) {
	links := []models.RowLink{
		{URL: "https://example.com/p/broken", Row: 1},
		{URL: "https://example.com/p/pila", Row: 2},
	}

	rows := mocks.NewRowSource(t)
	rows.On("Links").Return(links, nil).Once()
	rows.On("PriceInfo", 1).
		Return(models.RowPriceInfo{}, platform.ErrMalformedRecord).
		Once()
	rows.On("PriceInfo", 2).Return(models.RowPriceInfo{Price: 2000, Article: "124"}, nil).Once()

	prober := mocks.NewProber(t)
	prober.On("Probe", mock.Anything, mock.Anything).Return(200, nil).Twice()

	scraper := mocks.NewScraper(t)
	scraper.On("Scrape", mock.Anything, links[1].URL, "124").Return(&models.ScrapedPage{
		Title:       "Пила",
		Breadcrumbs: []string{"Инструменты"},
		Attributes: []models.Attribute{
			{Name: articleAttr, Value: "000124"},
		},
	}, nil).Once()

	storage := mocks.NewStorage(t)
	storage.On("ProductIDByAttribute", mock.Anything, articleAttr, "000124").
		Return(int32(0), platform.ErrNotFound).
		Once()
	storage.On("CategoryByName", mock.Anything, "Инструменты").
		Return(&models.Category{ID: 1}, nil).
		Once()
	storage.On("NextProductID", mock.Anything).Return(int32(12), nil).Once()
	storage.On("ProductSlugExists", mock.Anything, "pila").Return(false, nil).Once()
	storage.On("InsertProduct", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	storage.On("DistinctAttributeValues", mock.Anything, "Пила").
		Return(map[string]int{}, nil).
		Maybe()

	ing := ingestor.New(nil, nil, prober, scraper, rows, storage, feedURL,
		ingestor.WithWorkers(1),
		ingestor.WithArticleAttribute(articleAttr),
	)

	summary, err := ing.IngestScrapedBatch(context.TODO())

	require.NoError(t, err, "one bad row shouldn't fail the batch")
	assert.Equal(t, 1, summary.Inserted, "should insert the good product")
	require.Len(t, summary.Errors, 1, "should record the bad row")
	assert.Equal(t, platform.KindMalformed, summary.Errors[0].Kind, "should classify the bad row")
}

func TestUnitIngestScrapedBatchRetriesIDRace(t *testing.T) {
	links := []models.RowLink{{URL: "https://example.com/p/drel", Row: 1}}

	rows := mocks.NewRowSource(t)
	rows.On("Links").Return(links, nil).Once()
	rows.On("PriceInfo", 1).Return(models.RowPriceInfo{Price: 80, Article: "123"}, nil).Once()

	prober := mocks.NewProber(t)
	prober.On("Probe", mock.Anything, links[0].URL).Return(200, nil).Once()

	scraper := mocks.NewScraper(t)
	scraper.On("Scrape", mock.Anything, links[0].URL, "123").Return(&models.ScrapedPage{
		Title:       "Дрель",
		Breadcrumbs: []string{"Инструменты"},
		Attributes: []models.Attribute{
			{Name: articleAttr, Value: "000123"},
			{Name: "мощность", Value: "500 Вт"},
		},
	}, nil).Once()

	storage := mocks.NewStorage(t)
	storage.On("ProductIDByAttribute", mock.Anything, articleAttr, "000123").
		Return(int32(0), platform.ErrNotFound).
		Once()
	storage.On("CategoryByName", mock.Anything, "Инструменты").
		Return(&models.Category{ID: 1}, nil).
		Once()
	storage.On("NextProductID", mock.Anything).Return(int32(11), nil).Once()
	storage.On("ProductSlugExists", mock.Anything, "drel").Return(false, nil).Once()
	storage.On("InsertProduct", mock.Anything, mock.MatchedBy(func(p models.Product) bool {
		return p.ID == 11
	}), mock.Anything).Return(platform.ErrConstraintRace).Once()
	storage.On("NextProductID", mock.Anything).Return(int32(12), nil).Once()
	storage.On("InsertProduct", mock.Anything, mock.MatchedBy(func(p models.Product) bool {
		return p.ID == 12
	}), mock.Anything).Return(nil).Once()
	storage.On("UpdateProductName", mock.Anything, int32(12), "Дрель (мощность: 500 Вт)").
		Return(nil).
		Once()

	ing := ingestor.New(nil, nil, prober, scraper, rows, storage, feedURL,
		ingestor.WithWorkers(1),
		ingestor.WithArticleAttribute(articleAttr),
	)

	summary, err := ing.IngestScrapedBatch(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, 1, summary.Inserted, "should insert after id retry")
	assert.Empty(t, summary.Errors, "shouldn't record any errors")
}

func TestUnitRecomputePrices(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("ListProductPrices", mock.Anything).Return([]models.ProductPrice{
		{ID: 1, Price: 80, PriceRrc: lo.ToPtr(144.0)},
		{ID: 2, Price: 100, PriceRrc: lo.ToPtr(120.0)},
		{ID: 3, Price: 2000, PriceRrc: lo.ToPtr(2600.0)},
		{ID: 4, Price: 50},
	}, nil).Once()
	storage.On("UpdateProductRrc", mock.Anything, int32(2), 160.0).Return(nil).Once()
	storage.On("UpdateProductRrc", mock.Anything, int32(4), 90.0).Return(nil).Once()

	ing := ingestor.New(nil, nil, nil, nil, nil, storage, feedURL)

	updated, err := ing.RecomputePrices(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, 2, updated, "should update products with too low or missing rrc only")
}

// mockFeedSource mocks fetcher and decoder returning feed.
func mockFeedSource(t *testing.T, feed *models.Feed) (*mocks.Fetcher, *mocks.Decoder) {
	t.Helper()

	fetcher := mocks.NewFetcher(t)
	fetcher.On("FetchFile", mock.Anything, feedURL).
		Return(io.NopCloser(strings.NewReader("<yml_catalog/>")), nil).
		Once()

	decoder := mocks.NewDecoder(t)
	decoder.On("Decode", mock.Anything, mock.Anything).Return(feed, nil).Once()

	return fetcher, decoder
}
