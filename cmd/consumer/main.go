package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/samber/do"
	"github.com/serroba/pdf-link-shortener/internal/container"
	"github.com/serroba/pdf-link-shortener/internal/messaging"
	"go.uber.org/zap"
)

// config is the consumer's environment.
type config struct {
	RedisAddr     string `default:"localhost:6379" envconfig:"REDIS_ADDR"`
	LogFormat     string `default:"console"        envconfig:"LOG_FORMAT"`
	ConsumerGroup string `default:"analytics"      envconfig:"CONSUMER_GROUP"`
}

func main() {
	_ = godotenv.Load()

	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("load config: %v", err)
	}

	injector := do.New()
	do.ProvideValue(injector, &container.Options{
		RedisAddr:     cfg.RedisAddr,
		LogFormat:     cfg.LogFormat,
		ConsumerGroup: cfg.ConsumerGroup,
	})
	container.LoggerPackage(injector)
	container.RedisPackage(injector)
	container.ConsumerGroupPackage(injector)

	logger := do.MustInvoke[*zap.Logger](injector)
	group := do.MustInvoke[*messaging.ConsumerGroup](injector)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := group.Start(ctx); err != nil {
		logger.Fatal("failed to start consumer group", zap.Error(err))
	}

	logger.Info("consumer running", zap.String("group", cfg.ConsumerGroup))

	<-ctx.Done()

	logger.Info("shutting down")

	if err := injector.Shutdown(); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	_ = logger.Sync()
}
