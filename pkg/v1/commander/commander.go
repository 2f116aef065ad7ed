package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Command names understood by the syncer.
const (
	CommandIngestFeed      = "ingest-feed"
	CommandScrape          = "scrape"
	CommandRecomputePrices = "recompute-prices"
)

// SyncCommand is the wire format of syncer commands.
type SyncCommand struct {
	Command string `json:"command"`
}

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// SyncCommander sends catalog sync commands.
type SyncCommander struct {
	sender Sender
}

// NewSyncCommander returns new SyncCommander using provided sender for sending messages.
func NewSyncCommander(sender Sender) SyncCommander {
	return SyncCommander{
		sender: sender,
	}
}

// SendIngestFeedCommand sends the command to reload the catalog from the feed.
func (c SyncCommander) SendIngestFeedCommand(ctx context.Context) error {
	return c.send(ctx, CommandIngestFeed)
}

// SendScrapeCommand sends the command to scrape the spreadsheet-linked pages.
func (c SyncCommander) SendScrapeCommand(ctx context.Context) error {
	return c.send(ctx, CommandScrape)
}

// SendRecomputePricesCommand sends the command to reapply price rules.
func (c SyncCommander) SendRecomputePricesCommand(ctx context.Context) error {
	return c.send(ctx, CommandRecomputePrices)
}

func (c SyncCommander) send(ctx context.Context, command string) error {
	cmd := SyncCommand{
		Command: command,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal sync command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
