package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/config"
	httpapi "storefront/storefront-svc/internal/api/http"
	"storefront/storefront-svc/internal/catalog"
	"storefront/storefront-svc/internal/service"
	"storefront/storefront-svc/internal/storage"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "storefront-svc").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: cfg.CatalogTimeout}
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, httpClient)

	var sessions service.SessionStore = storage.NewMemorySessionStore()
	var popularityCache *storage.RedisPopularity
	if cfg.RedisEnabled() {
		rdb := config.MustInitRedis(cfg)
		defer rdb.Close()
		sessions = storage.NewRedisSessionStore(rdb, cfg.SessionKey)
		popularityCache = storage.NewRedisPopularity(rdb)
	}

	var archive *service.OrderArchive
	var popular *service.PopularityService
	if cfg.PostgresEnabled() {
		db := config.MustInitPostgres(cfg)
		defer db.Close()

		repo := storage.NewPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure schema")
		}
		archive = service.NewOrderArchive(repo, service.DefaultQRGenerator{BaseURL: cfg.ReceiptBaseURL})

		if popularityCache != nil {
			archive.CountPopularity(popularityCache)
			popular = service.NewPopularityService(popularityCache, repo)
		} else {
			popular = service.NewPopularityService(nil, repo)
		}
	}

	var sink service.OrderSink = service.LogSink{}
	switch {
	case cfg.KafkaEnabled():
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		sink = storage.NewKafkaPublisher(writer)

		if archive != nil {
			reader := config.NewKafkaReader(cfg)
			defer reader.Close()
			go service.NewOrderRecorder(reader, archive).Start(ctx)
		} else {
			log.Warn().Msg("Kafka configured without Postgres: published orders are not archived by this instance")
		}
	case archive != nil:
		sink = archive
	}

	pricing := service.NewPricingEngine(cfg.DeliveryFee)
	handler := httpapi.NewHandler(
		catalogClient,
		service.NewAuthService(catalogClient, sessions),
		service.NewOrderService(pricing, sink),
		service.NewReverseGeocoder(cfg.GeocoderURL, httpClient),
		cfg.DefaultAddress,
	)
	handler.LoginLimiter = rate.NewLimiter(rate.Limit(cfg.LoginRatePerSec), cfg.LoginBurst)
	if archive != nil {
		handler.Archive = archive
		handler.Popular = popular
	}

	srv := httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
