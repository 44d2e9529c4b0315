package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"tavolo/config"
	httpapi "tavolo/internal/api/http"
	"tavolo/internal/handoff"
	"tavolo/internal/menuapi"
	"tavolo/internal/menustore"
	"tavolo/internal/service"
	"tavolo/internal/storage"
)

const handoffTTL = 30 * time.Minute

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	var source service.MenuSource
	switch config.Env("MENU_SOURCE", "remote") {
	case "postgres":
		db := config.MustInitPostgres()
		defer db.Close()
		source = menustore.New(db)
	default:
		source = menuapi.NewClient(
			config.Env("MENU_ENDPOINT", "https://safe-macaque-83.hasura.app/v1/graphql"),
			os.Getenv("MENU_ADMIN_SECRET"),
		)
	}

	var publisher service.CheckoutPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter("checkouts")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Println("KAFKA_BROKER not set, checkout events disabled")
	}

	orders := service.NewOrderService(source, handoff.NewRedisStore(rdb, handoffTTL), publisher)
	stats := storage.NewStatsStore(rdb)

	h := httpapi.NewHandler(orders, stats, config.Env("PUBLIC_BASE_URL", "http://localhost:3000/menu"))
	handler := httpapi.NewRouter(h)

	port := config.Env("PORT", "8080")
	log.Println("Order Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
