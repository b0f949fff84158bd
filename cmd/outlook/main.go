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

	cfg, err := config.Load(config.Defaults{Name: "outlook-service", Port: 5004})
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	emails := store.NewCollection(domain.SeedEmails(), func(e domain.Email) int { return e.ID })
	mailbox := service.NewMailboxService(emails)

	srv := server.New(cfg, server.Info{
		Message: "Outlook Service API",
		Endpoints: []string{
			"GET /health - Health check",
			"GET /emails - List all emails",
			"GET /emails/<id> - Get email by ID",
			"GET /emails/unread - Get unread emails",
			"GET /emails/important - Get important emails",
			"POST /emails/send - Send new email",
		},
	})
	handler.NewOutlookHandler(mailbox, validator.New()).Register(srv.Echo())

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
