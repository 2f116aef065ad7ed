package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sane4ek777/catalog-sync/internal/platform/models"
	"github.com/Sane4ek777/catalog-sync/internal/platform/rabbitmq"
	"github.com/Sane4ek777/catalog-sync/pkg/v1/commander"
	"github.com/rs/zerolog"
)

// Syncer runs catalog synchronization operations.
type Syncer interface {
	IngestFeed(ctx context.Context) (*models.FeedSummary, error)
	IngestScrapedBatch(ctx context.Context) (*models.ScrapeSummary, error)
	RecomputePrices(ctx context.Context) (int, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq    *rabbitmq.RabbitMQ
	syncer Syncer
	logger *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq *rabbitmq.RabbitMQ, syncer Syncer, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:    rmq,
		syncer: syncer,
		logger: logger,
	}
}

// Start starts consuming and handling sync commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Str("command", cmd.Command).
			Msg("sync started")

		err = h.handleCommand(ctx, cmd)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		h.logger.Debug().
			Str("command", cmd.Command).
			Msg("sync finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func (h *RMQHandler) handleCommand(ctx context.Context, cmd *commander.SyncCommand) error {
	switch cmd.Command {
	case commander.CommandIngestFeed:
		summary, err := h.syncer.IngestFeed(ctx)
		if err != nil {
			return err
		}

		h.logger.Info().
			Int("categoriesLoaded", summary.CategoriesLoaded).
			Int("productsLoaded", summary.ProductsLoaded).
			Int("errors", len(summary.Errors)).
			Msg("feed ingested")
	case commander.CommandScrape:
		summary, err := h.syncer.IngestScrapedBatch(ctx)
		if err != nil {
			return err
		}

		h.logger.Info().
			Int("inserted", summary.Inserted).
			Int("skipped", summary.Skipped).
			Int("errors", len(summary.Errors)).
			Msg("scraped batch ingested")
	case commander.CommandRecomputePrices:
		updated, err := h.syncer.RecomputePrices(ctx)
		if err != nil {
			return err
		}

		h.logger.Info().
			Int("updated", updated).
			Msg("prices recomputed")
	default:
		return fmt.Errorf("unknown command %q", cmd.Command)
	}

	return nil
}

func decodeMessage(msg []byte) (*commander.SyncCommand, error) {
	var cmd commander.SyncCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode sync command: %w", err)
	}

	return &cmd, err
}
