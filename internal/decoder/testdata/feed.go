package testdata

import (
	"github.com/Sane4ek777/catalog-sync/internal/platform"
	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/samber/lo"
)

// Feed is the decoded content of feed.xml.
var Feed = models.Feed{
	Categories: []models.FeedCategory{
		{
			ID:   1,
			Name: "Инструменты",
		},
		{
			ID:       2,
			Name:     "Дрели",
			ParentID: lo.ToPtr(int32(1)),
		},
	},
	Products: []models.FeedProduct{
		{
			ID:          10,
			Name:        `Дрель "Мастер"`,
			Price:       80,
			Description: "Компактная дрель",
			Images: []string{
				"https://example.com/drel-1.jpg",
				"https://example.com/drel-2.jpg",
			},
			CategoryID: 2,
			Available:  true,
		},
		{
			ID:         11,
			Name:       "Пила",
			Price:      1500.50,
			PriceRrc:   lo.ToPtr(2100.70),
			CategoryID: 1,
			Available:  false,
		},
	},
	Malformed: []models.ItemError{
		{
			Ref:  "category 3",
			Kind: platform.KindMalformed,
			Msg:  `can't parse parent id "x": malformed source record`,
		},
		{
			Ref:  "offer 12",
			Kind: platform.KindMalformed,
			Msg:  `can't parse price "abc": malformed source record`,
		},
	},
}
