package rowlinks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Sane4ek777/catalog-sync/internal/platform"
	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/tealeg/xlsx/v3"
)

// linkLabel marks spreadsheet cells carrying a product page hyperlink.
const linkLabel = "Ссылка на сайт"

// Column layout of the price spreadsheet.
const (
	articleColumn  = 1
	priceColumn    = 9
	priceRrcColumn = 10
)

// Source reads product page links and per-row price data from the first
// sheet of a price spreadsheet.
type Source struct {
	sheet *xlsx.Sheet
}

// Open opens the workbook at path and returns a Source over its first sheet.
func Open(path string) (Source, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("can't open workbook %q: %w", path, err)
	}

	if len(file.Sheets) == 0 {
		return Source{}, fmt.Errorf("workbook %q has no sheets: %w", path, platform.ErrMalformedRecord)
	}

	return NewSource(file.Sheets[0]), nil
}

// NewSource returns a Source over sheet.
func NewSource(sheet *xlsx.Sheet) Source {
	return Source{sheet: sheet}
}

// Links returns product page links of all rows holding a hyperlinked link
// label cell. The header row is skipped.
func (s Source) Links() ([]models.RowLink, error) {
	links := []models.RowLink{}

	err := s.sheet.ForEachRow(func(row *xlsx.Row) error {
		if row.GetCoordinate() == 0 {
			return nil
		}

		return row.ForEachCell(func(cell *xlsx.Cell) error {
			if strings.TrimSpace(cell.Value) != linkLabel || cell.Hyperlink.Link == "" {
				return nil
			}
			links = append(links, models.RowLink{
				URL: cell.Hyperlink.Link,
				Row: row.GetCoordinate(),
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("can't read workbook links: %w", err)
	}

	return links, nil
}

// PriceInfo reads price, rrc and article code from row.
func (s Source) PriceInfo(rowIdx int) (models.RowPriceInfo, error) {
	row, err := s.sheet.Row(rowIdx)
	if err != nil {
		return models.RowPriceInfo{}, fmt.Errorf("can't read row %d: %w", rowIdx, err)
	}

	article := strings.TrimSpace(row.GetCell(articleColumn).Value)
	if article == "" {
		return models.RowPriceInfo{}, fmt.Errorf("row %d has no article: %w", rowIdx, platform.ErrMalformedRecord)
	}

	price, err := parseNumber(row.GetCell(priceColumn).Value)
	if err != nil {
		return models.RowPriceInfo{}, fmt.Errorf("row %d has bad price: %w", rowIdx, platform.ErrMalformedRecord)
	}

	info := models.RowPriceInfo{
		Price:   price,
		Article: article,
	}

	if rawRrc := strings.TrimSpace(row.GetCell(priceRrcColumn).Value); rawRrc != "" {
		rrc, err := parseNumber(rawRrc)
		if err != nil {
			return models.RowPriceInfo{}, fmt.Errorf("row %d has bad rrc: %w", rowIdx, platform.ErrMalformedRecord)
		}
		info.PriceRrc = &rrc
	}

	return info, nil
}

// parseNumber parses spreadsheet numbers, accepting the comma decimal
// separator used by the supplier.
func parseNumber(raw string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return strconv.ParseFloat(normalized, 64)
}
