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

	cfg, err := config.Load(config.Defaults{Name: "onedrive-service", Port: 5003})
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	files := store.NewCollection(domain.SeedFiles(), func(f domain.File) int { return f.ID })
	folders := store.NewCollection(domain.SeedFolders(), func(f domain.Folder) int { return f.ID })
	drive := service.NewDriveService(files, folders)

	srv := server.New(cfg, server.Info{
		Message: "OneDrive Service API",
		Endpoints: []string{
			"GET /health - Health check",
			"GET /files - List all files",
			"GET /files/<id> - Get file by ID",
			"GET /folders - List all folders",
			"GET /files/shared - Get shared files",
			"GET /storage - Get storage info",
		},
	})
	handler.NewOneDriveHandler(drive).Register(srv.Echo())

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
