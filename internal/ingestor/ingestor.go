package ingestor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/Sane4ek777/catalog-sync/internal/category"
	"github.com/Sane4ek777/catalog-sync/internal/identity"
	"github.com/Sane4ek777/catalog-sync/internal/platform"
	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/Sane4ek777/catalog-sync/internal/pricing"
	"github.com/Sane4ek777/catalog-sync/internal/slug"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Decoder --filename decoder.go
//go:generate mockery --name Prober --filename prober.go
//go:generate mockery --name Scraper --filename scraper.go
//go:generate mockery --name RowSource --filename rowsource.go
//go:generate mockery --name Storage --filename storage.go

// Fetcher fetches feed file.
type Fetcher interface {
	FetchFile(context.Context, string) (io.ReadCloser, error)
}

// Decoder decodes xml feed file into categories and products.
type Decoder interface {
	Decode(context.Context, io.Reader) (*models.Feed, error)
}

// Prober checks page availability without fetching the body.
type Prober interface {
	Probe(ctx context.Context, url string) (int, error)
}

// Scraper extracts product data from a storefront page, selecting the
// variant matching the article code.
type Scraper interface {
	Scrape(ctx context.Context, url, article string) (*models.ScrapedPage, error)
}

// RowSource provides product page links and per-row price data from the
// supplier price spreadsheet.
type RowSource interface {
	Links() ([]models.RowLink, error)
	PriceInfo(row int) (models.RowPriceInfo, error)
}

// Storage is products, attributes and categories storage.
type Storage interface {
	// DeleteFeedProducts deletes all feed-origin products with their attributes.
	DeleteFeedProducts(ctx context.Context) (int64, error)
	// CategoryByName returns category with provided name or platform.ErrNotFound.
	CategoryByName(ctx context.Context, name string) (*models.Category, error)
	// CategorySlugExists reports whether any category holds provided slug.
	CategorySlugExists(ctx context.Context, slug string) (bool, error)
	// NextCategoryID returns the lowest free category id.
	NextCategoryID(ctx context.Context) (int32, error)
	// InsertCategory inserts category, returning platform.ErrConstraintRace on conflicts.
	InsertCategory(ctx context.Context, category models.Category) error
	// ProductSlugExists reports whether any product holds provided slug.
	ProductSlugExists(ctx context.Context, slug string) (bool, error)
	// NextProductID returns the lowest free product id.
	NextProductID(ctx context.Context) (int32, error)
	// InsertProduct inserts product and its attributes in one transaction.
	InsertProduct(ctx context.Context, product models.Product, attributes []models.Attribute) error
	// ProductIDByAttribute returns id of a product holding the attribute or platform.ErrNotFound.
	ProductIDByAttribute(ctx context.Context, name, value string) (int32, error)
	// DistinctAttributeValues counts distinct attribute values per name among
	// scraped products whose name starts with namePrefix.
	DistinctAttributeValues(ctx context.Context, namePrefix string) (map[string]int, error)
	// UpdateProductName sets product's display name.
	UpdateProductName(ctx context.Context, id int32, name string) error
	// ListProductPrices returns id, price and rrc of every stored product.
	ListProductPrices(ctx context.Context) ([]models.ProductPrice, error)
	// UpdateProductRrc sets product's recommended retail price.
	UpdateProductRrc(ctx context.Context, id int32, rrc float64) error
}

const (
	defaultWorkers          = 4
	defaultArticleAttribute = "Артикул для заказа"
)

// defaultTraitAttributes are attribute names preferred for distinguishing
// product variants sharing a name.
var defaultTraitAttributes = []string{"мощность", "вес"}

// Option is custom configuration of Ingestor.
type Option func(i *Ingestor)

// Ingestor reconciles the catalog from the feed and from scraped pages.
type Ingestor struct {
	fetcher Fetcher
	decoder Decoder
	prober  Prober
	scraper Scraper
	rows    RowSource
	storage Storage

	resolver *category.Resolver
	identity identity.Checker

	feedURL     string
	workers     int
	articleAttr string
	traits      []string
	logger      zerolog.Logger

	// mu serializes store mutations of the scrape path, so identity checks
	// and id/slug picks see each other's inserts.
	mu sync.Mutex
}

// New returns new Ingestor.
func New(
	fetcher Fetcher,
	decoder Decoder,
	prober Prober,
	scraper Scraper,
	rows RowSource,
	storage Storage,
	feedURL string,
	ops ...Option,
) *Ingestor {
	ing := &Ingestor{
		fetcher:     fetcher,
		decoder:     decoder,
		prober:      prober,
		scraper:     scraper,
		rows:        rows,
		storage:     storage,
		feedURL:     feedURL,
		workers:     defaultWorkers,
		articleAttr: defaultArticleAttribute,
		traits:      defaultTraitAttributes,
		logger:      zerolog.Nop(),
	}

	for _, op := range ops {
		op(ing)
	}

	ing.resolver = category.NewResolver(storage)
	ing.identity = identity.NewChecker(storage, ing.articleAttr)

	return ing
}

// IngestFeed reloads the feed-managed part of the catalog: clears previous
// feed products, then loads categories and products from the feed file.
// Per-record failures are reported in the summary, not returned.
func (i *Ingestor) IngestFeed(ctx context.Context) (*models.FeedSummary, error) {
	xmlFile, err := i.fetcher.FetchFile(ctx, i.feedURL)
	if err != nil {
		return nil, fmt.Errorf("can't fetch feed file: %w", err)
	}
	defer xmlFile.Close()

	feed, err := i.decoder.Decode(ctx, xmlFile)
	if err != nil {
		return nil, fmt.Errorf("can't decode feed file: %w", err)
	}

	summary := models.FeedSummary{Errors: feed.Malformed}

	deleted, err := i.storage.DeleteFeedProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't clear feed products: %w", err)
	}
	i.logger.Info().Int64("deleted", deleted).Msg("cleared previous feed products")

	categoryIDs := i.loadCategories(ctx, feed.Categories, &summary)
	i.loadProducts(ctx, feed.Products, categoryIDs, &summary)

	return &summary, nil
}

// loadCategories upserts feed categories by name and returns the mapping
// from feed category ids to stored ids.
func (i *Ingestor) loadCategories(
	ctx context.Context,
	categories []models.FeedCategory,
	summary *models.FeedSummary,
) map[int32]int32 {
	ids := make(map[int32]int32, len(categories))
	slugs := slug.NewGenerator(categorySlugChecker{storage: i.storage})

	for _, cat := range categories {
		id, err := i.loadCategory(ctx, slugs, cat, ids)
		if err != nil {
			i.record(&summary.Errors, fmt.Sprintf("category %d", cat.ID), err)
			continue
		}

		ids[cat.ID] = id
		i.resolver.SeedFeedName(cat.Name, id)
		summary.CategoriesLoaded++
	}

	return ids
}

func (i *Ingestor) loadCategory(
	ctx context.Context,
	slugs *slug.Generator,
	cat models.FeedCategory,
	ids map[int32]int32,
) (int32, error) {
	existing, err := i.storage.CategoryByName(ctx, cat.Name)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, platform.ErrNotFound) {
		return 0, err
	}

	categorySlug, err := slugs.Unique(ctx, cat.Name, cat.ID)
	if err != nil {
		return 0, err
	}

	parentID := cat.ParentID
	if parentID != nil {
		if mapped, ok := ids[*parentID]; ok {
			parentID = &mapped
		}
	}

	insert := models.Category{
		ID:       cat.ID,
		Name:     cat.Name,
		Slug:     categorySlug,
		ParentID: parentID,
	}

	err = i.storage.InsertCategory(ctx, insert)
	if errors.Is(err, platform.ErrConstraintRace) {
		// The feed id is taken by another category, pick a free one.
		insert.ID, err = i.storage.NextCategoryID(ctx)
		if err != nil {
			return 0, err
		}
		err = i.storage.InsertCategory(ctx, insert)
	}
	if err != nil {
		return 0, err
	}

	return insert.ID, nil
}

func (i *Ingestor) loadProducts(
	ctx context.Context,
	products []models.FeedProduct,
	categoryIDs map[int32]int32,
	summary *models.FeedSummary,
) {
	slugs := slug.NewGenerator(productSlugChecker{storage: i.storage})

	for _, product := range products {
		ref := fmt.Sprintf("offer %d", product.ID)

		categoryID, ok := categoryIDs[product.CategoryID]
		if !ok {
			i.record(&summary.Errors, ref,
				fmt.Errorf("unknown category %d: %w", product.CategoryID, platform.ErrMalformedRecord),
			)
			continue
		}

		productSlug, err := slugs.Unique(ctx, product.Name, product.ID)
		if err != nil {
			i.record(&summary.Errors, ref, err)
			continue
		}

		rrc := pricing.DeriveRrc(product.Price, product.PriceRrc)

		insert := models.Product{
			ID:          product.ID,
			Name:        product.Name,
			Slug:        productSlug,
			Price:       product.Price,
			PriceRrc:    &rrc,
			Description: product.Description,
			Images:      product.Images,
			CategoryID:  &categoryID,
			Available:   product.Available,
			Origin:      models.OriginFeed,
		}

		if err := i.insertWithRetry(ctx, &insert, nil); err != nil {
			i.record(&summary.Errors, ref, err)
			continue
		}

		summary.ProductsLoaded++
	}
}

// IngestScrapedBatch scrapes every hyperlinked spreadsheet row and inserts
// products whose article code is not stored yet. Per-url failures are
// reported in the summary, not returned.
func (i *Ingestor) IngestScrapedBatch(ctx context.Context) (*models.ScrapeSummary, error) {
	links, err := i.rows.Links()
	if err != nil {
		return nil, fmt.Errorf("can't read row links: %w", err)
	}

	summary := models.ScrapeSummary{}
	slugs := slug.NewGenerator(productSlugChecker{storage: i.storage})

	errGroup, egCtx := errgroup.WithContext(ctx)
	errGroup.SetLimit(i.workers)

	for _, link := range links {
		link := link
		errGroup.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			product, err := i.scrapeOne(egCtx, link)

			i.mu.Lock()
			defer i.mu.Unlock()

			if err == nil {
				err = i.storeScraped(egCtx, slugs, product, &summary)
			}
			if err != nil {
				i.record(&summary.Errors, link.URL, err)
			}

			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}

	return &summary, nil
}

// scrapeOne probes, reads the spreadsheet row and scrapes one product page.
func (i *Ingestor) scrapeOne(ctx context.Context, link models.RowLink) (*models.ScrapedProduct, error) {
	status, err := i.prober.Probe(ctx, link.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", platform.ErrFetchFailed, err)
	}
	if status == http.StatusNotFound {
		return nil, platform.ErrPageNotFound
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %w", status, platform.ErrFetchFailed)
	}

	info, err := i.rows.PriceInfo(link.Row)
	if err != nil {
		return nil, err
	}

	page, err := i.scraper.Scrape(ctx, link.URL, info.Article)
	if err != nil {
		return nil, err
	}

	return &models.ScrapedProduct{
		Name:        page.Title,
		Description: page.Description,
		Price:       info.Price,
		PriceRrc:    info.PriceRrc,
		Images:      page.ImageURLs,
		Breadcrumbs: page.Breadcrumbs,
		Attributes:  page.Attributes,
	}, nil
}

// storeScraped runs the identity check and inserts product. Must be called
// under mu.
func (i *Ingestor) storeScraped(
	ctx context.Context,
	slugs *slug.Generator,
	product *models.ScrapedProduct,
	summary *models.ScrapeSummary,
) error {
	insert, storedID, err := i.identity.ShouldInsert(ctx, product)
	if err != nil {
		return err
	}
	if !insert {
		summary.Skipped++
		i.logger.Info().
			Int32("product_id", storedID).
			Str("name", product.Name).
			Msg("skipping already stored article")
		return nil
	}

	categoryID, err := i.resolver.Resolve(ctx, product.Breadcrumbs)
	if err != nil {
		return err
	}

	id, err := i.storage.NextProductID(ctx)
	if err != nil {
		return err
	}

	productSlug, err := slugs.Unique(ctx, product.Name, id)
	if err != nil {
		return err
	}

	rrc := pricing.DeriveRrc(product.Price, product.PriceRrc)

	row := models.Product{
		ID:          id,
		Name:        product.Name,
		Slug:        productSlug,
		Price:       product.Price,
		PriceRrc:    &rrc,
		Description: product.Description,
		Images:      product.Images,
		CategoryID:  &categoryID,
		Available:   true,
		Origin:      models.OriginScrape,
	}

	if err := i.insertWithRetry(ctx, &row, product.Attributes); err != nil {
		return err
	}
	summary.Inserted++

	i.enrichName(ctx, row.ID, product)

	return nil
}

// insertWithRetry inserts product, retrying once with a freshly picked id
// when the insert loses an id race.
func (i *Ingestor) insertWithRetry(
	ctx context.Context,
	product *models.Product,
	attributes []models.Attribute,
) error {
	err := i.storage.InsertProduct(ctx, *product, attributes)
	if !errors.Is(err, platform.ErrConstraintRace) {
		return err
	}

	id, idErr := i.storage.NextProductID(ctx)
	if idErr != nil {
		return idErr
	}
	product.ID = id

	return i.storage.InsertProduct(ctx, *product, attributes)
}

// enrichName appends a distinguishing attribute to the product name when one
// exists, so variants sharing a page title stay tellable apart in listings.
func (i *Ingestor) enrichName(ctx context.Context, id int32, product *models.ScrapedProduct) {
	attr, ok := i.pickDistinguishing(ctx, product)
	if !ok {
		return
	}
	if strings.Contains(strings.ToLower(product.Name), strings.ToLower(attr.Value)) {
		return
	}

	name := fmt.Sprintf("%s (%s: %s)", product.Name, attr.Name, attr.Value)
	if err := i.storage.UpdateProductName(ctx, id, name); err != nil {
		i.logger.Warn().Err(err).Int32("product_id", id).Msg("can't enrich product name")
	}
}

// pickDistinguishing picks the attribute to disambiguate product with:
// a trait-named attribute first, else the attribute with the most distinct
// values among scraped products sharing the name.
func (i *Ingestor) pickDistinguishing(
	ctx context.Context,
	product *models.ScrapedProduct,
) (models.Attribute, bool) {
	candidates := lo.Filter(product.Attributes, func(attr models.Attribute, _ int) bool {
		return attr.Name != i.articleAttr && attr.Value != ""
	})
	if len(candidates) == 0 {
		return models.Attribute{}, false
	}

	for _, trait := range i.traits {
		for _, attr := range candidates {
			if strings.Contains(strings.ToLower(attr.Name), strings.ToLower(trait)) {
				return attr, true
			}
		}
	}

	counts, err := i.storage.DistinctAttributeValues(ctx, product.Name)
	if err != nil {
		i.logger.Warn().Err(err).Str("name", product.Name).Msg("can't count attribute values")
		return models.Attribute{}, false
	}

	best := models.Attribute{}
	bestCount := 1
	for _, attr := range candidates {
		if counts[attr.Name] > bestCount {
			best = attr
			bestCount = counts[attr.Name]
		}
	}

	return best, bestCount > 1
}

// RecomputePrices reapplies the price rules over every stored product.
// Returns number of updated products.
func (i *Ingestor) RecomputePrices(ctx context.Context) (int, error) {
	prices, err := i.storage.ListProductPrices(ctx)
	if err != nil {
		return 0, fmt.Errorf("can't list product prices: %w", err)
	}

	updated := 0
	for _, price := range prices {
		rrc := pricing.DeriveRrc(price.Price, price.PriceRrc)
		if price.PriceRrc != nil && *price.PriceRrc == rrc {
			continue
		}

		if err := i.storage.UpdateProductRrc(ctx, price.ID, rrc); err != nil {
			return updated, fmt.Errorf("can't update rrc of product %d: %w", price.ID, err)
		}
		updated++
	}

	return updated, nil
}

func (i *Ingestor) record(errs *[]models.ItemError, ref string, err error) {
	kind := platform.ErrorKind(err)
	i.logger.Warn().Err(err).Str("ref", ref).Str("kind", kind).Msg("item failed")
	*errs = append(*errs, models.ItemError{Ref: ref, Kind: kind, Msg: err.Error()})
}

// WithWorkers sets the number of concurrent page fetches.
func WithWorkers(workers int) Option {
	return func(i *Ingestor) {
		i.workers = workers
	}
}

// WithArticleAttribute sets the attribute name carrying order article codes.
func WithArticleAttribute(name string) Option {
	return func(i *Ingestor) {
		i.articleAttr = name
	}
}

// WithTraitAttributes sets attribute names preferred for name enrichment.
func WithTraitAttributes(names []string) Option {
	return func(i *Ingestor) {
		i.traits = names
	}
}

// WithLogger sets Ingestor's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(i *Ingestor) {
		i.logger = logger
	}
}

type categorySlugChecker struct {
	storage Storage
}

func (c categorySlugChecker) SlugExists(ctx context.Context, slug string) (bool, error) {
	return c.storage.CategorySlugExists(ctx, slug)
}

type productSlugChecker struct {
	storage Storage
}

func (c productSlugChecker) SlugExists(ctx context.Context, slug string) (bool, error) {
	return c.storage.ProductSlugExists(ctx, slug)
}
