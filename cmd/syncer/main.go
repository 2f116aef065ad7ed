package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Sane4ek777/catalog-sync/cmd/syncer/config"
	"github.com/Sane4ek777/catalog-sync/internal/decoder"
	"github.com/Sane4ek777/catalog-sync/internal/fetcher"
	"github.com/Sane4ek777/catalog-sync/internal/handler"
	"github.com/Sane4ek777/catalog-sync/internal/ingestor"
	"github.com/Sane4ek777/catalog-sync/internal/platform/rabbitmq"
	"github.com/Sane4ek777/catalog-sync/internal/platform/storage"
	"github.com/Sane4ek777/catalog-sync/internal/rowlinks"
	"github.com/Sane4ek777/catalog-sync/internal/scraper"
	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	rows, err := rowlinks.Open(cfg.XLSXFile)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open price file")
	}

	fet := fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.UserAgent)

	ing := ingestor.New(
		fet,
		&decoder.Decoder{},
		fet,
		scraper.NewScraper(cfg.UserAgent, cfg.HTTPTimeout, cfg.ArticleAttribute),
		rows,
		storage.NewPostgres(pgDB),
		cfg.FeedURL,
		ingestor.WithWorkers(cfg.ScrapeWorkers),
		ingestor.WithArticleAttribute(cfg.ArticleAttribute),
		ingestor.WithTraitAttributes(cfg.TraitAttributes),
		ingestor.WithLogger(logger),
	)

	han := handler.NewHandler(conn, ing, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("catalog syncer up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
