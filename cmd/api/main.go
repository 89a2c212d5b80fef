package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agencia_maker/internal/adapter/http/handlers"
	"agencia_maker/internal/adapter/http/routes"
	"agencia_maker/internal/adapter/persistence/kvstore"
	"agencia_maker/internal/adapter/persistence/repository"
	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/infrastructure/ai"
	"agencia_maker/internal/infrastructure/config"
	"agencia_maker/internal/infrastructure/imagegen"
	"agencia_maker/internal/infrastructure/logging"
	"agencia_maker/internal/infrastructure/payments"
	"agencia_maker/internal/infrastructure/realtime"
	"agencia_maker/internal/infrastructure/scheduler"
	"agencia_maker/internal/usecase"
	"agencia_maker/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// @title           Agência Maker API
// @version         1.0
// @description     3D printing marketplace: quotes, maker matching, model search, print jobs, PIX checkout and chat.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("[api] server stopped with error", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := kvstore.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("[api] failed closing store", zap.Error(err))
		}
	}()

	repos := repository.NewRepositories(store, logger, time.Now)
	if err := repos.Initialize(ctx); err != nil {
		return err
	}

	var generative interfaces.IGenerativeClient
	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, "")
		if err != nil {
			logger.Warn("[api] gemini unavailable, using local fallbacks", zap.Error(err))
		} else {
			generative = client
		}
	} else {
		logger.Info("[api] GEMINI_API_KEY not set, using local fallbacks")
	}

	var gateway interfaces.IPixChargeGateway = payments.NewBRCodeGateway("")
	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, nil, logger)
	if err != nil {
		logger.Warn("[api] Mercado Pago gateway not configured, generating PIX codes locally", zap.Error(err))
	} else {
		gateway = mp
	}

	hub := realtime.NewChatHub(logger)
	tracker := usecase.NewRequestTracker()

	matching := usecase.NewMatchingUseCase(generative, repos.Users, logger)
	quotes := usecase.NewQuoteUseCase(generative, matching, logger)
	search := usecase.NewModelSearchUseCase(generative, imagegen.NewURLBuilder(), usecase.SearchStrategy(cfg.SearchStrategy), logger)
	jobs := usecase.NewPrintJobUseCase(repos.PrintJobs, quotes, cfg.ServiceFeeRate, logger)
	users := usecase.NewUserUseCase(repos.Users, logger)
	chat := usecase.NewChatUseCase(repos.Conversations, repos.Users, hub, logger)
	stats := usecase.NewAdminStatsUseCase(repos.Users, repos.PrintJobs)
	checkout := usecase.NewPaymentUseCase(jobs, gateway, usecase.PaymentTimings{
		Generate:   cfg.PaymentGenerateDelay,
		Confirm:    cfg.PaymentConfirmDelay,
		Completion: cfg.PaymentCompletionDelay,
	}, cfg.ServiceFeeRate, logger)
	checkout.OnCompleted(func(s entities.PaymentSession, job entities.PrintJob) {
		logger.Info("[api] print job paid",
			zap.String("job_id", job.ID),
			zap.String("session_id", s.ID),
			zap.Float64("maker_value", s.Breakdown.MakerValue))
	})

	jobsScheduler := scheduler.New(logger)
	if search.Strategy() == usecase.SearchStrategyGenerative {
		if err := jobsScheduler.Add("suggested-models", cfg.SuggestionsRefreshCron, search.RefreshSuggested); err != nil {
			return err
		}
	}
	jobsScheduler.Start()

	router := routes.NewRouter(routes.Handlers{
		Users:    handlers.NewUserHandler(users),
		Quotes:   handlers.NewQuoteHandler(quotes, matching),
		Models:   handlers.NewModelSearchHandler(search),
		Jobs:     handlers.NewPrintJobHandler(jobs),
		Payments: handlers.NewPaymentHandler(checkout),
		Chat:     handlers.NewChatHandler(chat, hub, logger),
		Admin:    handlers.NewAdminHandler(stats),
	}, routes.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Tracker:        tracker,
		Logger:         logger,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("[api] listening", zap.String("addr", server.Addr), zap.String("storage", cfg.StorageBackend))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("[api] shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("[api] http shutdown", zap.Error(err))
	}
	hub.Close()
	if err := checkout.Close(shutdownCtx); err != nil {
		logger.Warn("[api] pending payment completions not drained", zap.Error(err))
	}
	if err := jobsScheduler.Stop(shutdownCtx); err != nil {
		logger.Warn("[api] scheduler stop", zap.Error(err))
	}
	return nil
}
