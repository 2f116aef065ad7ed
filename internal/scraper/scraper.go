package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Sane4ek777/catalog-sync/internal/platform"
	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/gocolly/colly/v2"
)

// Storefront page selectors.
const (
	titleSelector       = "h2.h2.hidden-tablet.hidden-mobile"
	descriptionSelector = "div.cover-text"
	gallerySelector     = "div.BigImagerGallery img"
	breadcrumbSelector  = "section.breadcrumbs a.breadcrumbs__item"
	attributesSelector  = "section.info__table div.table__coll"

	attributeNameSelector   = "div.coll__name"
	attributeValuesSelector = "div.coll__container"
)

// breadcrumbSkip is the number of leading pseudo entries ("home", "catalog")
// present on every page before the real category path.
const breadcrumbSkip = 2

// articleWidth is the zero-padded width of article codes on product pages.
const articleWidth = 6

// Scraper fetches storefront product pages and extracts product data.
type Scraper struct {
	userAgent   string
	timeout     time.Duration
	articleAttr string
}

// NewScraper returns new Scraper. articleAttr is the attribute name the
// storefront uses for order article codes.
func NewScraper(userAgent string, timeout time.Duration, articleAttr string) Scraper {
	return Scraper{
		userAgent:   userAgent,
		timeout:     timeout,
		articleAttr: articleAttr,
	}
}

// attributeBlock is one column block of the page attribute table: attribute
// name plus its value for every product variant listed on the page.
type attributeBlock struct {
	name   string
	values []string
}

// Scrape fetches the page at pageURL and extracts the variant matching
// article. The article pair is always the first attribute of the result.
func (s Scraper) Scrape(ctx context.Context, pageURL, article string) (*models.ScrapedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page := models.ScrapedPage{}
	blocks := []attributeBlock{}

	col := colly.NewCollector(colly.UserAgent(s.userAgent))
	col.SetRequestTimeout(s.timeout)

	col.OnHTML(titleSelector, func(e *colly.HTMLElement) {
		if page.Title == "" {
			page.Title = strings.TrimSpace(e.Text)
		}
	})
	col.OnHTML(descriptionSelector, func(e *colly.HTMLElement) {
		if page.Description == "" {
			page.Description = strings.TrimSpace(e.Text)
		}
	})
	col.OnHTML(gallerySelector, func(e *colly.HTMLElement) {
		if src := e.Attr("src"); src != "" {
			page.ImageURLs = append(page.ImageURLs, e.Request.AbsoluteURL(src))
		}
	})
	col.OnHTML(breadcrumbSelector, func(e *colly.HTMLElement) {
		page.Breadcrumbs = append(page.Breadcrumbs, strings.TrimSpace(e.Text))
	})
	col.OnHTML(attributesSelector, func(e *colly.HTMLElement) {
		blocks = append(blocks, toAttributeBlock(e.DOM))
	})

	if err := col.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", platform.ErrFetchFailed, pageURL, err)
	}

	if page.Title == "" {
		return nil, fmt.Errorf("no product title at %s: %w", pageURL, platform.ErrPageStructure)
	}

	if len(page.Breadcrumbs) > breadcrumbSkip {
		page.Breadcrumbs = page.Breadcrumbs[breadcrumbSkip:]
	} else {
		page.Breadcrumbs = nil
	}

	page.Attributes = s.variantAttributes(blocks, padArticle(article))

	return &page, nil
}

func toAttributeBlock(sel *goquery.Selection) attributeBlock {
	block := attributeBlock{
		name: strings.TrimSpace(sel.Find(attributeNameSelector).First().Text()),
	}
	sel.Find(attributeValuesSelector).First().Children().Each(func(_ int, value *goquery.Selection) {
		block.values = append(block.values, strings.TrimSpace(value.Text()))
	})
	return block
}

// variantAttributes selects the variant column holding article and flattens
// the attribute table into name/value pairs, the article pair first. Pages
// without an article column fall back to the first variant.
func (s Scraper) variantAttributes(blocks []attributeBlock, article string) []models.Attribute {
	column := 0
	for _, block := range blocks {
		if !strings.Contains(block.name, s.articleAttr) {
			continue
		}
		for ix, value := range block.values {
			if value == article {
				column = ix
				break
			}
		}
		break
	}

	attributes := []models.Attribute{{Name: s.articleAttr, Value: article}}
	for _, block := range blocks {
		if strings.Contains(block.name, s.articleAttr) || block.name == "" {
			continue
		}
		if column >= len(block.values) || block.values[column] == "" {
			continue
		}
		attributes = append(attributes, models.Attribute{
			Name:  block.name,
			Value: block.values[column],
		})
	}

	return attributes
}

func padArticle(article string) string {
	if len(article) >= articleWidth {
		return article
	}
	return strings.Repeat("0", articleWidth-len(article)) + article
}
