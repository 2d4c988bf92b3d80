package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cityworks/facilitybooking/config"
	"github.com/cityworks/facilitybooking/internal/bootstrap"
	"github.com/cityworks/facilitybooking/internal/cache"
	"github.com/cityworks/facilitybooking/internal/kafka"
	"github.com/cityworks/facilitybooking/internal/repository"
	"github.com/cityworks/facilitybooking/internal/service/auth"
	"github.com/cityworks/facilitybooking/internal/service/booking"
	"github.com/cityworks/facilitybooking/internal/service/facility"
	"github.com/cityworks/facilitybooking/internal/service/inspection"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis,
		time.Duration(cfg.Cache.FacilitiesTTLSeconds)*time.Second,
		time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute)

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	facilityRepo := repository.NewFacilityRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	inspectionRepo := repository.NewInspectionRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)

	facilitySvc := facility.NewFacilityService(facilityRepo, redisCache)
	bookingSvc := booking.NewBookingService(bookingRepo, producer, cfg.Kafka.BookingEventsTopic)
	inspectionSvc := inspection.NewInspectionService(inspectionRepo, bookingRepo, producer, cfg.Kafka.BookingEventsTopic)
	authSvc := auth.NewAuthService(adminRepo, redisCache)

	if err := bootstrap.Run(ctx, cfg, facilitySvc, bookingSvc, inspectionSvc, authSvc); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
