package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	server "github.com/hazcam-nano/astra-intake-api/internal/adapters/primary/http"
	healthcheckController "github.com/hazcam-nano/astra-intake-api/internal/adapters/primary/http/controllers/healthcheck"
	readingController "github.com/hazcam-nano/astra-intake-api/internal/adapters/primary/http/controllers/reading"
	alerterAdapter "github.com/hazcam-nano/astra-intake-api/internal/adapters/secondary/alerter"
	"github.com/hazcam-nano/astra-intake-api/internal/adapters/secondary/hcaptcha"
	"github.com/hazcam-nano/astra-intake-api/internal/adapters/secondary/openai"
	"github.com/hazcam-nano/astra-intake-api/internal/adapters/secondary/pdfrender"
	"github.com/hazcam-nano/astra-intake-api/internal/adapters/secondary/sendgrid"
	"github.com/hazcam-nano/astra-intake-api/internal/pkg/logger"
	"github.com/hazcam-nano/astra-intake-api/internal/ports/service"
	"github.com/hazcam-nano/astra-intake-api/internal/usecases/reading"
	"golang.org/x/sync/errgroup"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  logger.New(name, cfg.Log),
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Log.Info("starting reading intake service",
		"test_mode", a.Cfg.Reading.TestMode,
		"brand", a.Cfg.Reading.Brand,
	)

	captchaClient := hcaptcha.NewClient(a.Cfg.Captcha, a.Log)
	generatorClient := openai.NewClient(a.Cfg.OpenAI, a.Log)
	mailClient := sendgrid.NewClient(a.Cfg.Mail, a.Log)
	renderer := pdfrender.New(a.Cfg.Reading.Brand, a.Log)

	// nil-алертер означает, что алерты выключены
	var alertService service.IAlerterService
	if alerterClient := alerterAdapter.NewClient(a.Cfg.Alerter, a.Log); alerterClient != nil {
		alertService = alerterClient
		a.Log.Info("operational alerter enabled")
	}

	readingService := reading.New(
		captchaClient,
		generatorClient,
		renderer,
		mailClient,
		alertService,
		a.Cfg.Reading,
		a.Log,
	)

	readingCtrl := readingController.New(readingService, a.Log, a.Cfg.Reading.ProxySecret)
	healthCheck := healthcheckController.New(a.Log)

	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log, healthCheck, readingCtrl)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting http server",
			"host", a.Cfg.Server.Host,
			"port", a.Cfg.Server.Port)

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.Log.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.Log.Error("failed to shutdown http server", "error", err)
		}

		a.Log.Info("application shutdown completed")
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Log.Error("application error", "error", err)
		return err
	}

	return nil
}
