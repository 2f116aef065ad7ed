package models

// Product origin values.
const (
	OriginFeed   = "feed"
	OriginScrape = "scrape"
)

// Feed is fully materialized content of a catalog feed file.
type Feed struct {
	Categories []FeedCategory
	Products   []FeedProduct
	Malformed  []ItemError
}

// FeedCategory is a category node from the feed's taxonomy.
type FeedCategory struct {
	ID       int32
	Name     string
	ParentID *int32
}

// FeedProduct is a product entry from the feed.
type FeedProduct struct {
	ID          int32
	Name        string
	Price       float64
	PriceRrc    *float64
	Description string
	Images      []string
	CategoryID  int32
	Available   bool
}

// Product is catalog product model.
type Product struct {
	ID          int32
	Name        string
	Slug        string
	Price       float64
	PriceRrc    *float64
	Description string
	Images      []string
	CategoryID  *int32
	Available   bool
	Origin      string
}

// Attribute is a product's name/value attribute pair.
type Attribute struct {
	Name  string
	Value string
}

// Category is catalog category model. Nil ParentID means root.
type Category struct {
	ID       int32
	Name     string
	Slug     string
	ParentID *int32
}

// ScrapedPage is what the page parser extracts from one storefront page.
// Breadcrumbs are root to leaf with navigational pseudo-entries already
// stripped. Attributes include the order article pair.
type ScrapedPage struct {
	Title       string
	Description string
	ImageURLs   []string
	Breadcrumbs []string
	Attributes  []Attribute
}

// ScrapedProduct is a scraped page merged with its spreadsheet row data,
// ready for identity check and insertion.
type ScrapedProduct struct {
	Name        string
	Description string
	Price       float64
	PriceRrc    *float64
	Images      []string
	Breadcrumbs []string
	Attributes  []Attribute
}

// RowLink is a product page URL with the spreadsheet row it came from.
type RowLink struct {
	URL string
	Row int
}

// RowPriceInfo is price data read from a spreadsheet row.
type RowPriceInfo struct {
	Price    float64
	PriceRrc *float64
	Article  string
}

// ProductPrice is the price slice of a stored product.
type ProductPrice struct {
	ID       int32
	Price    float64
	PriceRrc *float64
}

// ItemError records a failure of one unit of work (one feed record or one URL).
type ItemError struct {
	Ref  string
	Kind string
	Msg  string
}

// FeedSummary is the result of a bulk feed load.
type FeedSummary struct {
	CategoriesLoaded int
	ProductsLoaded   int
	Errors           []ItemError
}

// ScrapeSummary is the result of an incremental scrape batch.
type ScrapeSummary struct {
	Inserted int
	Skipped  int
	Errors   []ItemError
}
