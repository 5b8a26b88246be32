package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fxcalc/internal/adapters"
	"fxcalc/internal/adapters/cache"
	"fxcalc/internal/adapters/postgres"
	"fxcalc/internal/api"
	"fxcalc/internal/config"
	"fxcalc/internal/conversion"
	"fxcalc/internal/conversion/handler"
	"fxcalc/internal/domain"
	"fxcalc/internal/platform/db"
	httpserver "fxcalc/internal/platform/http"

	"github.com/sirupsen/logrus"
)

// Run wires the application components and serves the HTTP API until SIGINT/SIGTERM.
func Run(configPath string) error {
	appCfg, err := config.Init(configPath)
	if err != nil {
		return err
	}
	SetupLogging(appCfg.Logging)
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations, table load)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	table, err := LoadRateTable(startupCtx, appCfg)
	if err != nil {
		logrus.WithError(err).Error("Failed to load rate table")
		return err
	}
	logrus.WithFields(logrus.Fields{"source": appCfg.Rates.Source, "pairs": table.Len()}).Info("✅ Rate table loaded")

	quoteCache, err := cache.NewQuoteCache(appCfg.QuoteCache.MaxItems, time.Duration(appCfg.QuoteCache.TTLSeconds)*time.Second)
	if err != nil {
		return err
	}
	defer quoteCache.Close()

	// Services
	converter := conversion.NewLoggingConverter(logrus.StandardLogger(), conversion.NewEngine(table))
	conversionService := conversion.NewService(converter, table.Pairs(), quoteCache)
	currencyValidator := conversion.NewValidator(table.SupportedCodes())

	// Handlers and router
	conversionHandler := handler.NewConversionHandler(currencyValidator, conversionService)
	router := api.NewRouter(conversionHandler)

	logrus.Info("Starting http server")
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	logrus.Info("HTTP server stopped")
	return nil
}

// SetupLogging points logrus at stdout with the configured level, falling back to info.
func SetupLogging(cfg config.Logging) {
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
}

// LoadRateTable builds the immutable rate table from the configured source.
func LoadRateTable(ctx context.Context, cfg *config.AppConfig) (*conversion.RateTable, error) {
	switch cfg.Rates.Source {
	case config.RateSourcePostgres:
		rates, err := loadFromPostgres(ctx, cfg.DbServer)
		if err != nil {
			return nil, err
		}
		return conversion.NewRateTable(rates)
	default:
		return conversion.NewRateTable(ratesFromConfig(cfg.Rates.Table))
	}
}

func ratesFromConfig(entries []config.RateEntry) []domain.Rate {
	rates := make([]domain.Rate, 0, len(entries))
	for _, e := range entries {
		rates = append(rates, domain.Rate{Base: e.Base, Quote: e.Quote, Value: e.Value})
	}
	return rates
}

// loadFromPostgres reads the table once; the pool is closed before returning.
func loadFromPostgres(ctx context.Context, dbCfg config.DbServer) ([]domain.Rate, error) {
	if err := db.Migrate(ctx, dbCfg.GetConnectionStr()); err != nil {
		return nil, err
	}
	logrus.Info("✅ Migrations applied")

	pool, err := db.OpenPool(ctx, dbCfg.GetConnectionStr(), dbCfg.MaxConns)
	if err != nil {
		return nil, fmt.Errorf("error connecting to db: %w", err)
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	return loadRates(ctx, postgres.NewRateRepository(pool))
}

func loadRates(ctx context.Context, repo adapters.RateRepository) ([]domain.Rate, error) {
	rates, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(rates) == 0 {
		return nil, errors.New("no rates available")
	}
	return rates, nil
}
