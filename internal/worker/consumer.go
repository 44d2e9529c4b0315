// Package worker consumes checkout events and folds them into the
// per-restaurant aggregates served by the stats endpoint.
package worker

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"tavolo/internal/domain"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StatsRecorder interface {
	RecordCheckout(ctx context.Context, restaurant string, total decimal.Decimal, at time.Time) error
}

type Consumer struct {
	Reader MessageReader
	Store  StatsRecorder
}

func NewConsumer(reader MessageReader, store StatsRecorder) *Consumer {
	return &Consumer{Reader: reader, Store: store}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting checkout worker consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.CheckoutEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling checkout event: %v", err)
			continue
		}

		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.CheckoutEvent) {
	if event.Type != domain.EventCheckoutCompleted {
		return
	}
	log.Printf("Processing checkout: restaurant=%s items=%d total=%s",
		event.Restaurant, event.ItemCount, event.Total)

	if err := c.Store.RecordCheckout(ctx, event.Restaurant, event.Total, event.Timestamp); err != nil {
		log.Printf("Error recording checkout: %v", err)
		return
	}
}
