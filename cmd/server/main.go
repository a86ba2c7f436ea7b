package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fjod/go_pos/internal/auth"
	"github.com/fjod/go_pos/internal/cart"
	"github.com/fjod/go_pos/internal/catalog"
	"github.com/fjod/go_pos/internal/checkout"
	"github.com/fjod/go_pos/internal/events"
	h "github.com/fjod/go_pos/internal/http"
	"github.com/fjod/go_pos/internal/pricing"
	"github.com/fjod/go_pos/internal/session"
)

type Config struct {
	HTTPPort        string
	RegisterID      string
	TaxRate         float64
	RedisAddr       string
	KafkaBrokers    []string
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	taxRate, err := strconv.ParseFloat(getEnv("TAX_RATE", "0.10"), 64)
	if err != nil || taxRate < 0 {
		log.Fatalf("Invalid TAX_RATE: %v", os.Getenv("TAX_RATE"))
	}

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = strings.Split(v, ",")
	}

	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RegisterID:      getEnv("REGISTER_ID", "register-1"),
		TaxRate:         taxRate,
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		KafkaBrokers:    brokers,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	// Catalog with the initial seed; stock lives here for the whole run
	cat := catalog.New()
	if err := catalog.Seed(cat, catalog.DefaultProducts()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	log.Printf("Seeded catalog with %d products", len(cat.All()))

	// Event sink: kafka when brokers are configured, plain logs otherwise
	var publisher events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers...)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("Publishing events to kafka brokers %v", cfg.KafkaBrokers)
	} else {
		publisher = events.NewLogPublisher()
	}

	// Session store: redis survives register restarts mid-shift
	var sessions session.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		sessions = session.NewRedisStore(client)
		log.Printf("Using redis session store at %s", cfg.RedisAddr)
	} else {
		sessions = session.NewMemoryStore()
	}

	gate := auth.NewGate()
	policy := pricing.NewStandard(cfg.TaxRate)
	register := cart.New(publisher)
	controller := checkout.NewController(register, policy, gate, publisher)

	router := h.NewRouter(
		h.NewCatalogHandler(cat),
		h.NewCartHandler(register, cat, controller, gate, sessions, cfg.RegisterID),
		h.NewCheckoutHandler(controller, sessions, cfg.RegisterID),
		h.NewSessionHandler(sessions, cfg.RegisterID),
	)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("POS register %s listening on port %s (tax rate %.2f)",
			cfg.RegisterID, cfg.HTTPPort, cfg.TaxRate)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
