package helpers

import (
	"database/sql"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sane4ek777/catalog-sync/internal/platform/storage/storagetesting"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	pgmodels "github.com/Sane4ek777/catalog-sync/internal/platform/storage/gen/postgres/public/model"
)

const (
	contentType = "Content-Type"
)

// Category is feed file category element.
type Category struct {
	ID       int32  `xml:"id,attr"`
	ParentID string `xml:"parentId,attr,omitempty"`
	Name     string `xml:",chardata"`
}

// Offer is feed file offer element.
type Offer struct {
	ID          int32    `xml:"id,attr"`
	Available   string   `xml:"available,attr"`
	Name        string   `xml:"name"`
	Price       string   `xml:"price"`
	PriceRrc    string   `xml:"price_rrc,omitempty"`
	Description string   `xml:"description,omitempty"`
	Pictures    []string `xml:"picture,omitempty"`
	CategoryID  int32    `xml:"categoryId"`
}

type shop struct {
	Categories []Category `xml:"categories>category"`
	Offers     []Offer    `xml:"offers>offer"`
}

type feedFile struct {
	XMLName xml.Name `xml:"yml_catalog"`
	Shop    shop     `xml:"shop"`
}

// FeedToXML is helper function which converts categories and offers to feed xml and returns it as byte slice.
func FeedToXML(t *testing.T, categories []Category, offers []Offer) []byte {
	t.Helper()

	file, err := xml.Marshal(feedFile{
		Shop: shop{
			Categories: categories,
			Offers:     offers,
		},
	})
	if err != nil {
		require.FailNow(t, "can't encode feed to xml", err)
	}

	return file
}

// WaitForProductWithSlug is blocking helper function, returns all products after a product with given slug appears.
func WaitForProductWithSlug(t *testing.T, db *sql.DB, slug string) []pgmodels.Product {
	t.Helper()

	for {
		<-time.After(time.Millisecond * 500)
		products := storagetesting.GetProducts(t, db)
		_, found := lo.Find(products, func(p pgmodels.Product) bool { return p.Slug == slug })
		if found {
			return products
		}
	}
}

// PrepareMockedHTTPServer is helper function for mocking http srv and client.
// Returns function for setting feed file to return, feed number is from 0 to len(feedFiles) inclusive.
func PrepareMockedHTTPServer(t *testing.T, feedFiles [][]byte, statusCode int) (*httptest.Server, func(int)) {
	t.Helper()

	feedFileToReturnIx := 0

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, "application/xml")
		wrt.WriteHeader(statusCode)
		_, _ = wrt.Write(feedFiles[feedFileToReturnIx])
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(i int) { feedFileToReturnIx = i }
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}
