package decoder

import (
	"context"
	"encoding/xml"
	"errors"
	"io"

	"github.com/Sane4ek777/catalog-sync/internal/platform"
	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
)

// Decoder decodes xml feed files into categories and products.
type Decoder struct{}

// Decode decodes the whole feed from xmlFile. Records with malformed numeric
// fields are reported in Feed.Malformed instead of failing the decode.
func (d Decoder) Decode(ctx context.Context, xmlFile io.Reader) (*models.Feed, error) {
	dec := xml.NewDecoder(xmlFile)
	dec.Strict = true

	feed := models.Feed{}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		token, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return &feed, nil
			}
			return nil, err
		}

		element, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch element.Name.Local {
		case "category":
			var cat category
			if err := dec.DecodeElement(&cat, &element); err != nil {
				return nil, err
			}
			decodeCategory(&cat, &feed)
		case "offer":
			var off offer
			if err := dec.DecodeElement(&off, &element); err != nil {
				return nil, err
			}
			decodeOffer(&off, &feed)
		}
	}
}

func decodeCategory(cat *category, feed *models.Feed) {
	decoded, err := toFeedCategory(cat)
	if err != nil {
		feed.Malformed = append(feed.Malformed, models.ItemError{
			Ref:  categoryRef(cat.ID),
			Kind: platform.KindMalformed,
			Msg:  err.Error(),
		})
		return
	}

	feed.Categories = append(feed.Categories, *decoded)
}

func decodeOffer(off *offer, feed *models.Feed) {
	decoded, err := toFeedProduct(off)
	if err != nil {
		feed.Malformed = append(feed.Malformed, models.ItemError{
			Ref:  offerRef(off.ID),
			Kind: platform.KindMalformed,
			Msg:  err.Error(),
		})
		return
	}

	feed.Products = append(feed.Products, *decoded)
}
