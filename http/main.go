package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ola007-cpu/webApp/config"
	"github.com/ola007-cpu/webApp/http/controller"
	routes "github.com/ola007-cpu/webApp/http/route"
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

	ctrl := controller.NewController(cfg, infra, repo)
	router := routes.SetupRouter(ctrl)

	srv := &http.Server{
		Addr:    ":" + cfg.EnvConfig.Server.Port,
		Handler: router,
	}

	go func() {
		log.Println("HTTP Server started on :" + cfg.EnvConfig.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if infra.RabbitMQ != nil {
		infra.RabbitMQ.Close()
	}
	infra.Telemetry.Shutdown(ctx)
	if err := infra.Logger.Shutdown(ctx); err != nil {
		log.Printf("Logger shutdown: %v", err)
	}
	log.Println("Server exited")
}
