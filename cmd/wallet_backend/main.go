package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/KamilKvasnicka/player-wallet/internal/core/domain"
	portssvc "github.com/KamilKvasnicka/player-wallet/internal/core/ports/services"
	"github.com/KamilKvasnicka/player-wallet/internal/core/services"
	"github.com/KamilKvasnicka/player-wallet/internal/handlers"
	"github.com/KamilKvasnicka/player-wallet/internal/middleware"
	"github.com/KamilKvasnicka/player-wallet/internal/platform/cache"
	"github.com/KamilKvasnicka/player-wallet/internal/platform/config"
	"github.com/KamilKvasnicka/player-wallet/internal/platform/messaging"
	"github.com/KamilKvasnicka/player-wallet/internal/repositories/database/pgsql"
	"github.com/KamilKvasnicka/player-wallet/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Message bus. The service can run without a broker; wallet update events
	// are then skipped and logged by the processor.
	var bus portssvc.MessageBus
	rabbitBus, err := messaging.NewRabbitMQBus(cfg.RabbitMQURL, logger)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, wallet update events disabled", slog.String("error", err.Error()))
	} else {
		bus = rabbitBus
		defer rabbitBus.Close()
		logger.Info("Connected to RabbitMQ.")
	}

	// Balance cache is optional; an empty REDIS_ADDR disables it.
	var balanceCache portssvc.BalanceCache
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("Redis unavailable, balance cache disabled", slog.String("error", err.Error()))
		} else {
			balanceCache = cache.NewRedisBalanceCache(redisClient, cfg.BalanceCacheTTL)
			defer redisClient.Close()
			logger.Info("Connected to Redis.", slog.String("addr", cfg.RedisAddr))
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, bus, balanceCache)

	if bus != nil {
		if err := subscribeWalletUpdates(ctx, bus, cfg.WalletUpdatesQueue, logger); err != nil {
			logger.Warn("Failed to subscribe to wallet updates", slog.String("error", err.Error()))
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limit)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// subscribeWalletUpdates consumes the wallet updates queue and logs each
// committed wallet mutation. Downstream systems hang their own consumers off
// the same queue.
func subscribeWalletUpdates(ctx context.Context, bus portssvc.MessageBus, queue string, logger *slog.Logger) error {
	return bus.Subscribe(ctx, queue, func(ctx context.Context, body []byte) error {
		var event domain.WalletUpdateEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return err
		}
		logger.Info("Wallet update received",
			slog.String("player_id", event.PlayerID),
			slog.String("external_id", event.ExternalID),
			slog.String("amount", event.Amount.String()),
		)
		return nil
	})
}
