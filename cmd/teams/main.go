package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"contoso.com/officemock/internal/config"
	"contoso.com/officemock/internal/core/domain"
	"contoso.com/officemock/internal/core/service"
	"contoso.com/officemock/internal/handler"
	"contoso.com/officemock/internal/server"
	"contoso.com/officemock/internal/store"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load(config.Defaults{Name: "teams-service", Port: 5005})
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	teams := store.NewCollection(domain.SeedTeams(), func(t domain.Team) int { return t.ID })
	messages := store.NewCollection(domain.SeedMessages(), func(m domain.Message) int { return m.ID })
	meetings := store.NewCollection(domain.SeedMeetings(), func(m domain.Meeting) int { return m.ID })
	teamsService := service.NewTeamsService(teams, messages, meetings)

	srv := server.New(cfg, server.Info{
		Message: "Teams Service API",
		Endpoints: []string{
			"GET /health - Health check",
			"GET /teams - List all teams",
			"GET /teams/<id> - Get team by ID",
			"GET /teams/<id>/messages - Get team messages",
			"GET /meetings - List all meetings",
			"POST /teams/<id>/messages - Send message to team",
		},
	})
	handler.NewTeamsHandler(teamsService, validator.New()).Register(srv.Echo())

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.Infof("Starting %s on port %d", cfg.Name, cfg.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Infof("Shutting down %s...", cfg.Name)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
