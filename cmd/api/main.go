package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArowuTest/committee-manager/api/routes"
	"github.com/ArowuTest/committee-manager/internal/config"
	"github.com/ArowuTest/committee-manager/internal/handlers"
	"github.com/ArowuTest/committee-manager/internal/services"
	"github.com/ArowuTest/committee-manager/pkg/jwt"
	"github.com/ArowuTest/committee-manager/pkg/random"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.ValidateAPI(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	config.SetupLogger(cfg, os.Stderr)
	gin.SetMode(cfg.Server.Mode)

	tokens := jwt.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiresIn)*time.Second)

	committeeService := services.NewCommitteeService(cfg.Committee.Name, cfg.Committee.UnitPrice, random.FromSeed(cfg.Committee.Seed))
	authService := services.NewAuthService(cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash, tokens)

	router := routes.SetupRouter(routes.HandlerDependencies{
		AuthHandler:      handlers.NewAuthHandler(authService),
		CommitteeHandler: handlers.NewCommitteeHandler(committeeService),
		Tokens:           tokens,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.Server.Port, "committee", cfg.Committee.Name)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	slog.Info("Server exiting")
}
