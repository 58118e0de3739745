package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"waterdrop/cmd"
	httpin "waterdrop/internal/adapters/in/http"
	"waterdrop/internal/adapters/out/postgres/couponrepo"
	"waterdrop/internal/adapters/out/postgres/orderrepo"
	"waterdrop/internal/adapters/out/postgres/partnerrepo"
	"waterdrop/internal/adapters/out/postgres/payoutrepo"
	"waterdrop/internal/adapters/out/postgres/productrepo"
	"waterdrop/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	gommonlog "github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(config)
	migrateDB(gormDB)

	redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr})

	root, err := cmd.NewCompositionRoot(config, gormDB, redisClient, logger)
	if err != nil {
		gommonlog.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		gommonlog.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, config)
}

func getConfig() cmd.Config {
	// Missing .env is fine in containerized deployments where the
	// environment is already populated.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:      envOr("HTTP_PORT", "8080"),
		DBHost:        mustEnv("DB_HOST"),
		DBPort:        envOr("DB_PORT", "5432"),
		DBUser:        mustEnv("DB_USER"),
		DBPassword:    mustEnv("DB_PASSWORD"),
		DBName:        mustEnv("DB_NAME"),
		DBSslMode:     envOr("DB_SSLMODE", "disable"),
		RedisAddr:     envOr("REDIS_ADDR", "localhost:6379"),
		PushEndpoint:  mustEnv("PUSH_ENDPOINT"),
		PushAPIKey:    os.Getenv("PUSH_API_KEY"),
		JWTSecret:     mustEnv("JWT_SECRET"),
		PaymentSecret: mustEnv("PAYMENT_SECRET"),
	}
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		gommonlog.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustOpenDB(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		gommonlog.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusHistoryDTO{},
		&partnerrepo.PartnerDTO{},
		&productrepo.ProductDTO{},
		&couponrepo.CouponDTO{},
		&payoutrepo.PayoutDTO{},
		&payoutrepo.PayoutEntryDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		gommonlog.Fatalf("Failed to run database migrations: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, config cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(root.CreateHandlers(), root.PaymentProvider())
	server.RegisterRoutes(e, []byte(config.JWTSecret))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
