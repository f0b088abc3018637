package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"product-service/internal/config"
	productHandler "product-service/internal/domains/product/handler"
	productRepo "product-service/internal/domains/product/repository"
	productService "product-service/internal/domains/product/service"
	"product-service/internal/infrastructure/cache"
	"product-service/internal/infrastructure/database"
	"product-service/internal/infrastructure/messaging"
)

// Container holds the application's dependency graph.
// Initialization order matters: config, then infrastructure, then
// repositories, services and handlers.
type Container struct {
	Config   *config.Config
	DB       *database.PostgresDB
	Cache    *cache.RedisClient
	Producer *messaging.KafkaProducer

	ProductRepo    productRepo.Repository
	ProductService productService.Service
	ProductHandler *productHandler.ProductHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// Step 2: database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	log.Info().Msg("Database connected")

	// Step 3: cache
	redisCache := cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = redisCache
	log.Info().Msg("Redis connected")

	// Step 4: message broker
	if err := messaging.EnsureTopic(ctx, cfg.Kafka); err != nil {
		return nil, fmt.Errorf("failed to provision kafka topic: %w", err)
	}
	c.Producer = messaging.NewKafkaProducer(cfg.Kafka)
	log.Info().Str("topic", cfg.Kafka.Topic).Msg("Kafka producer ready")

	// Step 5: repository -> service -> handler
	c.ProductRepo = productRepo.NewRepository(db.Pool)
	c.ProductService = productService.NewProductService(
		c.ProductRepo,
		c.Producer,
		c.Cache,
		time.Duration(cfg.Redis.ProductTTL)*time.Second,
	)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)

	return c, nil
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	if c.Producer != nil {
		if err := c.Producer.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close kafka producer")
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
