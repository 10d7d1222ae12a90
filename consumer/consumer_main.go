package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ola007-cpu/webApp/config"
	"github.com/ola007-cpu/webApp/consumer/worker"
	infraPkg "github.com/ola007-cpu/webApp/infra"
	"github.com/ola007-cpu/webApp/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)

	if infra.RabbitMQ == nil {
		log.Fatal("RabbitMQ is not configured, consumer cannot start")
	}
	if infra.Redis == nil {
		log.Fatal("Redis is not configured, consumer has no cache to warm")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	videoConsumer := worker.NewVideoConsumer(infra.RabbitMQ.Channel, infra, repo)
	if err := videoConsumer.Start(ctx); err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to start video consumer: %v", err)
		log.Fatalf("Failed to start video consumer: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infra.Logger.InfoWithContextf(ctx, "Shutting down consumer...")
	cancel()

	infra.RabbitMQ.Close()
	infra.Logger.InfoWithContextf(ctx, "Consumer exited properly")
}
