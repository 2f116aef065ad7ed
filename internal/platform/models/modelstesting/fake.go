package modelstesting

import (
	"math/rand"

	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakeProduct returns models.Product with fake data and random number of fake images.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		ID:          rand.Int31(),
		Name:        faker.Word(),
		Slug:        faker.Word(),
		Price:       float64(rand.Intn(2000)) + 0.5,
		PriceRrc:    lo.ToPtr(float64(rand.Intn(3000)) + 0.5),
		Description: faker.Sentence(),
		Images:      fakeImageURLs(),
		CategoryID:  lo.ToPtr(rand.Int31()),
		Available:   true,
		Origin:      models.OriginFeed,
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeCategory returns models.Category with fake data.
func FakeCategory(ops ...func(c *models.Category)) models.Category {
	category := models.Category{
		ID:       rand.Int31(),
		Name:     faker.Word(),
		Slug:     faker.Word(),
		ParentID: lo.ToPtr(rand.Int31()),
	}

	for _, op := range ops {
		op(&category)
	}

	return category
}

// FakeScrapedProduct returns models.ScrapedProduct with fake data and random number of fake attributes.
func FakeScrapedProduct(ops ...func(p *models.ScrapedProduct)) models.ScrapedProduct {
	product := models.ScrapedProduct{
		Name:        faker.Word(),
		Description: faker.Sentence(),
		Price:       float64(rand.Intn(2000)) + 0.5,
		PriceRrc:    lo.ToPtr(float64(rand.Intn(3000)) + 0.5),
		Images:      fakeImageURLs(),
		Breadcrumbs: []string{faker.Word(), faker.Word()},
		Attributes:  fakeAttributes(),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

func fakeImageURLs() []string {
	imgURLsLen := rand.Intn(5)
	imgURLs := make([]string, 0, imgURLsLen)
	for i := 0; i < imgURLsLen; i++ {
		imgURLs = append(imgURLs, faker.URL())
	}

	return imgURLs
}

func fakeAttributes() []models.Attribute {
	attributesLen := rand.Intn(5)
	attributes := make([]models.Attribute, 0, attributesLen)
	for i := 0; i < attributesLen; i++ {
		attributes = append(attributes, models.Attribute{
			Name:  faker.Word(),
			Value: faker.Word(),
		})
	}

	return attributes
}
