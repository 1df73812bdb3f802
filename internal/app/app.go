// File: internal/app/app.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/cristiAndreiTarasi/authentication-user-service/internal/config"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/interfaces"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/domain/repository/postgres"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/events/kafka"
	httpHandler "github.com/cristiAndreiTarasi/authentication-user-service/internal/handler/http"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/infrastructure/database"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/infrastructure/mail"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/infrastructure/media"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/infrastructure/ratelimit"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/infrastructure/security"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/migrations"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/service"
	"github.com/cristiAndreiTarasi/authentication-user-service/internal/utils/logger"
)

// nopPublisher swallows events when Kafka is disabled.
type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, string, any) error { return nil }

// Run wires the whole service together and blocks until shutdown.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.AutoMigrate {
		logger.Info("Running database migrations")
		if err := migrations.NewManager(&cfg.Database, logger).MigrateUp(); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	pool, err := database.NewDBPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable at startup; rate limits will fail open", zap.Error(err))
	}

	var publisher interfaces.EventPublisher = nopPublisher{}
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.Source, logger)
		if err != nil {
			return fmt.Errorf("connect to kafka: %w", err)
		}
		defer producer.Close()
		publisher = producer
	}

	mediaStore, err := media.NewS3Store(ctx, cfg.Media)
	if err != nil {
		return fmt.Errorf("init media store: %w", err)
	}

	passwords, err := security.NewPBKDF2PasswordService(security.PBKDF2Params{
		Iterations: cfg.Security.PasswordHash.Iterations,
		SaltLength: cfg.Security.PasswordHash.SaltLength,
		KeyLength:  cfg.Security.PasswordHash.KeyLength,
	})
	if err != nil {
		return fmt.Errorf("init password service: %w", err)
	}

	tokens, err := security.NewJWTService(security.JWTConfig{
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
		Secret:     cfg.JWT.Secret,
	})
	if err != nil {
		return fmt.Errorf("init token service: %w", err)
	}

	userRepo := postgres.NewUserRepositoryPostgres(pool)
	tokenRepo := postgres.NewRefreshTokenRepositoryPostgres(pool)
	streamRepo := postgres.NewStreamRepositoryPostgres(pool)
	imageRepo := postgres.NewImageRepositoryPostgres(pool)
	txManager := postgres.NewTransactionManager(pool)

	mailer := mail.NewSMTPSender(cfg.Mail, logger)
	limiter := ratelimit.NewRedisLimiter(redisClient)

	authService := service.NewAuthService(
		userRepo, tokenRepo, streamRepo, imageRepo,
		passwords, tokens, mailer, mediaStore, publisher,
		txManager, cfg, logger,
	)
	streamService := service.NewStreamService(streamRepo, imageRepo, mediaStore, logger)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthService:   authService,
		StreamService: streamService,
		TokenService:  tokens,
		Limiter:       limiter,
		Health:        httpHandler.NewHealthHandler(logger, pool, redisClient),
		Cfg:           cfg,
		Logger:        logger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Logging.Level
	if level == "" {
		level = "info"
	}
	format := cfg.Logging.Format
	if format == "" {
		format = "json"
	}
	return logger.NewLogger(level, format)
}
