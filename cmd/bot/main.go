package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-multierror"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/usecase/message"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/usecase/reward"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/bot"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/random"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/store"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/telegram"
	timeProvider "github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production || cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Component:  "greeting-bot",
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Error("Bot stopped with errors", map[string]any{"error": err})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	_ = appLogger.Flush()
}

func run(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) error {
	tp := timeProvider.NewRealTimeProvider()

	var (
		botMetrics coreport.Metrics = metrics.NewNoop()
		recorder   *metrics.Recorder
	)
	if cfg.Metrics.Enabled {
		recorder = metrics.NewRecorder(nil)
		botMetrics = recorder
	}

	repo, err := store.OpenOrDegrade(ctx, cfg.Store, cfg.Ledger.StrictWrites, tp, appLogger)
	if err != nil {
		return err
	}

	evaluator, err := reward.NewEvaluator(cfg.Rewards.Thresholds)
	if err != nil {
		return err
	}

	seed := cfg.Bot.RandomSeed
	if seed == 0 {
		seed = tp.Now().UnixNano()
	}

	pointsLedger := ledger.NewLedger(repo, tp, botMetrics, appLogger, ledger.Options{
		StrictWrites: cfg.Ledger.StrictWrites,
		StoreTimeout: coreport.Duration(cfg.Store.Timeout),
	})
	processor := message.NewProcessor(
		message.NewClassifier(cfg.Bot.Greetings),
		pointsLedger,
		evaluator,
		message.NewComposer(random.NewChooser(seed)),
		botMetrics,
		appLogger,
	)

	client, err := telegram.NewClient(telegram.Options{
		Token:       cfg.Telegram.Token,
		APIEndpoint: cfg.Telegram.APIEndpoint,
		Debug:       cfg.Telegram.Debug,
	}, appLogger)
	if err != nil {
		return closeAll(err, repo)
	}
	appLogger.Info("Authorized on Telegram", map[string]any{"bot": client.Username()})

	updateHandler := bot.NewHandler(processor, client, botMetrics, tp, appLogger, cfg.Bot.UpdateTimeout)
	webhookHandler := handler.NewWebhookHandler(cfg.Telegram.Secret(), cfg.Telegram.PublicURL, updateHandler, client, appLogger)

	router := gin.New()
	var observer middleware.RequestObserver
	var metricsHandler http.Handler
	if recorder != nil {
		observer = recorder
		metricsHandler = recorder.Handler()
	}
	routes.SetupMiddlewares(router, appLogger, observer)
	routes.SetupRoutes(
		router,
		handler.NewHealthHandler(cfg.Telegram.Token != "", cfg.Store.Driver, cfg.Telegram.Mode),
		webhookHandler,
		cfg.Metrics.Path,
		metricsHandler,
	)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":  server.Addr,
			"env":   cfg.Environment,
			"mode":  cfg.Telegram.Mode,
			"store": cfg.Store.Driver,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var dispatcher *bot.Dispatcher
	switch cfg.Telegram.Mode {
	case config.ModePolling:
		if err := client.DeleteWebhook(ctx); err != nil {
			appLogger.Warn("Could not remove webhook before polling", map[string]any{"error": err})
		}
		dispatcher = bot.NewDispatcher(func(ctx context.Context, event entity.MessageEvent) error {
			return updateHandler.Handle(ctx, bot.SourcePolling, event)
		}, cfg.Bot.QueueSize, appLogger)

		poller := telegram.NewPoller(client, cfg.Telegram.PollTimeout, appLogger)
		go func() {
			if err := poller.Run(ctx, dispatcher.Enqueue); err != nil {
				appLogger.Error("Polling failed", map[string]any{"error": err})
			}
		}()

	case config.ModeWebhook:
		if cfg.Telegram.SetWebhookOnStart && cfg.Telegram.PublicURL != "" {
			ok, err := client.SetWebhook(ctx, webhookHandler.WebhookURL())
			if err != nil || !ok {
				appLogger.Warn("Webhook registration on start failed, call /set_webhook", map[string]any{
					"ok":    ok,
					"error": err,
				})
			}
		}
	}

	var runErr error
	select {
	case <-ctx.Done():
		appLogger.Info("Shutting down...", nil)
	case err := <-serverErr:
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	var result *multierror.Error
	if runErr != nil {
		result = multierror.Append(result, runErr)
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		result = multierror.Append(result, err)
	}
	if dispatcher != nil {
		if err := dispatcher.Shutdown(shutdownCtx); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := closeAll(result.ErrorOrNil(), repo); err != nil {
		return err
	}
	appLogger.Info("Bot exited gracefully", nil)
	return nil
}

// closeAll closes the store and merges its error into err
func closeAll(err error, repo persistence.AccountRepository) error {
	if repo == nil {
		return err
	}
	if closeErr := repo.Close(); closeErr != nil {
		return multierror.Append(err, closeErr).ErrorOrNil()
	}
	return err
}
