package decoder

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/Sane4ek777/catalog-sync/internal/platform"
	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/samber/lo"
)

// category is model for category items in feed files.
type category struct {
	ID       int32  `xml:"id,attr"`
	ParentID string `xml:"parentId,attr"`
	Name     string `xml:",chardata"`
}

// offer is model for product items in feed files.
type offer struct {
	ID          int32    `xml:"id,attr"`
	Available   string   `xml:"available,attr"`
	Name        string   `xml:"name"`
	Price       string   `xml:"price"`
	PriceRrc    string   `xml:"price_rrc"`
	Description string   `xml:"description"`
	Pictures    []string `xml:"picture"`
	CategoryID  int32    `xml:"categoryId"`
}

func toFeedCategory(cat *category) (*models.FeedCategory, error) {
	name := strings.TrimSpace(html.UnescapeString(cat.Name))
	if name == "" {
		return nil, fmt.Errorf("category name is empty: %w", platform.ErrMalformedRecord)
	}

	var parentID *int32
	if cat.ParentID != "" {
		parsed, err := strconv.ParseInt(cat.ParentID, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("can't parse parent id %q: %w", cat.ParentID, platform.ErrMalformedRecord)
		}
		parentID = lo.ToPtr(int32(parsed))
	}

	return &models.FeedCategory{
		ID:       cat.ID,
		Name:     name,
		ParentID: parentID,
	}, nil
}

func toFeedProduct(off *offer) (*models.FeedProduct, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(off.Price), 64)
	if err != nil {
		return nil, fmt.Errorf("can't parse price %q: %w", off.Price, platform.ErrMalformedRecord)
	}

	var priceRrc *float64
	if strings.TrimSpace(off.PriceRrc) != "" {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(off.PriceRrc), 64)
		if err != nil {
			return nil, fmt.Errorf("can't parse rrc %q: %w", off.PriceRrc, platform.ErrMalformedRecord)
		}
		priceRrc = &parsed
	}

	return &models.FeedProduct{
		ID:          off.ID,
		Name:        html.UnescapeString(off.Name),
		Price:       price,
		PriceRrc:    priceRrc,
		Description: html.UnescapeString(off.Description),
		Images:      off.Pictures,
		CategoryID:  off.CategoryID,
		Available:   off.Available != "false",
	}, nil
}

func categoryRef(id int32) string {
	return fmt.Sprintf("category %d", id)
}

func offerRef(id int32) string {
	return fmt.Sprintf("offer %d", id)
}
