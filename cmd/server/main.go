package main

import (
	"context"
	"log"
	"time"

	"harvestmarket/internal/config"
	"harvestmarket/internal/controllers/http"
	mmysql "harvestmarket/internal/infra/mysql"
	"harvestmarket/internal/infra/paystack"
	"harvestmarket/internal/infra/rabbitmq"
	mysqlrepo "harvestmarket/internal/repository/mysql"
	"harvestmarket/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.FromEnv()

	db, err := mmysql.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1000)
	sqlDB.SetMaxIdleConns(200)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	store := mysqlrepo.NewStore(db)

	gateway := paystack.NewClient(cfg.PaystackBaseURL, cfg.PaystackSecretKey, 10*time.Second)

	publisher, err := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.NotificationExchange)
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisHost + ":6379",
		DB:           0,
		PoolSize:     200,
		MinIdleConns: 20,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	notifier := services.NewNotificationService(store, publisher)
	authSvc := services.NewAuthService(store, cfg.JWTSecret)
	listingSvc := services.NewListingService(store)
	listingSvc.SetRedisClient(redisClient)
	searchSvc := services.NewSearchService(store)
	orderSvc := services.NewOrderService(store, notifier)
	paymentSvc := services.NewPaymentService(store, gateway, notifier)
	negotiationSvc := services.NewNegotiationService(store, notifier)
	disputeSvc := services.NewDisputeService(store, gateway, notifier)
	logisticsSvc := services.NewLogisticsService(store, notifier)
	catalogSvc := services.NewCatalogService(store)

	handler := http.NewHandler(authSvc, catalogSvc, listingSvc, searchSvc, orderSvc, paymentSvc,
		negotiationSvc, disputeSvc, logisticsSvc, notifier, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		time.Sleep(5 * time.Second)
		if err := listingSvc.WarmupListingCache(ctx, []uint64{1, 2}); err != nil {
			log.Printf("Failed to warm up cache: %v", err)
		} else {
			log.Println("Cache warmed up successfully")
		}
		return nil
	})

	g.Go(func() error {
		log.Printf("Starting harvestmarket server on port %s", cfg.Port)
		return r.Run(":" + cfg.Port)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
