package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL      string        `env:"DATABASE_URL"`
	FeedURL          string        `env:"FEED_URL"`
	XLSXFile         string        `env:"XLSX_FILE"`
	UserAgent        string        `env:"USER_AGENT" envDefault:"catalog-sync/0.0.1"`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	ScrapeWorkers    int           `env:"SCRAPE_WORKERS" envDefault:"4"`
	ArticleAttribute string        `env:"ARTICLE_ATTRIBUTE" envDefault:"Артикул для заказа"`
	TraitAttributes  []string      `env:"TRAIT_ATTRIBUTES" envSeparator:"," envDefault:"мощность,вес"`

	RabbitMQ RabbitMQ
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"cs-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"catalog-sync.commands"`
}
