package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/youtubext/download-server/internal/engine"
	"github.com/youtubext/download-server/internal/http/handlers"
	"github.com/youtubext/download-server/internal/http/httpapi"
	"github.com/youtubext/download-server/internal/infra"
	"github.com/youtubext/download-server/internal/jobs"
	"github.com/youtubext/download-server/internal/storage"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	downloads, err := storage.NewDownloads(cfg.DownloadDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare download directory")
	}

	// Make sure a yt-dlp binary is available before accepting jobs.
	engine.Install(context.Background())

	registry := jobs.NewRegistry()
	eng := engine.NewYTDLP(downloads.Path(), logger)
	dispatcher := jobs.NewDispatcher(registry, eng, downloads, cfg.PublicBaseURL, logger)

	app := handlers.NewApp(dispatcher, registry, logger)
	router := httpapi.NewRouter(app, cfg.DefaultLocale, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("download server listening on http://%s:%s", cfg.Host, cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown; in-flight download workers are detached and simply
	// stop with the process.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
