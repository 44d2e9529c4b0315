package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"tavolo/config"
	"tavolo/internal/storage"
	"tavolo/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("checkouts", "checkout-worker")
	defer reader.Close()

	consumer := worker.NewConsumer(reader, storage.NewStatsStore(rdb))
	consumer.Start(ctx)

	log.Println("Checkout worker stopped")
}
