package rowlinks_test

import (
	"testing"

	"github.com/Sane4ek777/catalog-sync/internal/platform"
	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/Sane4ek777/catalog-sync/internal/rowlinks"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
)

const (
	linkLabel      = "Ссылка на сайт"
	articleColumn  = 1
	priceColumn    = 9
	priceRrcColumn = 10
	linkColumn     = 12
)

func TestUnitLinks(t *testing.T) {
	source := rowlinks.NewSource(priceSheet(t))

	links, err := source.Links()

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, []models.RowLink{
		{URL: "https://example.com/p/drel", Row: 1},
		{URL: "https://example.com/p/pila", Row: 2},
	}, links, "should return hyperlinked rows only")
}

func TestUnitPriceInfo(t *testing.T) {
	source := rowlinks.NewSource(priceSheet(t))

	tests := map[string]struct {
		row      int
		wantInfo models.RowPriceInfo
		wantErr  error
	}{
		"price with rrc": {
			row: 1,
			wantInfo: models.RowPriceInfo{
				Price:    100.50,
				PriceRrc: lo.ToPtr(150.0),
				Article:  "123",
			},
		},
		"price without rrc": {
			row: 2,
			wantInfo: models.RowPriceInfo{
				Price:   2000,
				Article: "124",
			},
		},
		"missing price": {
			row:     3,
			wantErr: platform.ErrMalformedRecord,
		},
		"missing article": {
			row:     4,
			wantErr: platform.ErrMalformedRecord,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			info, err := source.PriceInfo(tt.row)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
				return
			}

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, tt.wantInfo, info, "should return correct price info")
		})
	}
}

// priceSheet builds an in-memory supplier price sheet.
func priceSheet(t *testing.T) *xlsx.Sheet {
	t.Helper()

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Прайс")
	require.NoError(t, err)

	header := sheet.AddRow()
	header.GetCell(articleColumn).Value = "Артикул"
	header.GetCell(priceColumn).Value = "Цена"
	header.GetCell(priceRrcColumn).Value = "РРЦ"
	// Header carries the link label without a hyperlink and must be skipped.
	header.GetCell(linkColumn).Value = linkLabel

	drel := sheet.AddRow()
	drel.GetCell(articleColumn).Value = "123"
	drel.GetCell(priceColumn).Value = "100,50"
	drel.GetCell(priceRrcColumn).Value = "150"
	linkCell(drel, "https://example.com/p/drel")

	pila := sheet.AddRow()
	pila.GetCell(articleColumn).Value = "124"
	pila.GetCell(priceColumn).Value = "2000"
	linkCell(pila, "https://example.com/p/pila")

	noPrice := sheet.AddRow()
	noPrice.GetCell(articleColumn).Value = "125"

	noArticle := sheet.AddRow()
	noArticle.GetCell(priceColumn).Value = "300"

	return sheet
}

func linkCell(row *xlsx.Row, url string) {
	cell := row.GetCell(linkColumn)
	cell.Value = linkLabel
	cell.Hyperlink = xlsx.Hyperlink{Link: url}
}
