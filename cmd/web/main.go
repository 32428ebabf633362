package main

import (
	"context"
	"encoding/gob"
	"log/slog"
	"os"
	"time"

	"github.com/GMRZ11/avaliacao-imobiliaria/internal/envstruct"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/errors"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/geodata"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/logging"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/pprofserver"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/sqlite"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/submission"
	"github.com/GMRZ11/avaliacao-imobiliaria/internal/wizard"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
)

func init() {
	gob.Register(wizard.State{})
}

type config struct {
	Addr      string `env:"AVALIACAO_ADDR" envDefault:"localhost:4000"`
	SqliteURL string `env:"AVALIACAO_SQLITE_URL" envDefault:"./avaliacao.sqlite"`
	// SheetURL is the external spreadsheet endpoint. Empty disables forwarding.
	SheetURL  string `env:"AVALIACAO_SHEET_URL" envDefault:""`
	PprofAddr string `env:"AVALIACAO_PPROF_ADDR" envDefault:""`
}

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	htmx           *htmx.HTMX
	atlas          *geodata.Atlas
	prices         geodata.PriceTable
	submissions    *submission.Repository
	forwarder      *submission.Forwarder
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "parse config")
	}

	if cfg.PprofAddr != "" {
		pprofserver.Launch(cfg.PprofAddr, logger)
	}

	dbs, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open database")
	}

	atlas, err := geodata.NewAtlas()
	if err != nil {
		return errors.Wrap(err, "load region dataset")
	}
	prices, err := geodata.NewPriceTable()
	if err != nil {
		return errors.Wrap(err, "load price dataset")
	}

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite.DB, 24*time.Hour)
	sessionManager.Lifetime = 12 * time.Hour

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		htmx:           htmx.New(),
		atlas:          atlas,
		prices:         prices,
		submissions:    submission.NewRepository(dbs, logger),
		forwarder:      submission.NewForwarder(cfg.SheetURL, logger),
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}

func main() {
	ctx := context.Background()

	loggerHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{ //nolint:exhaustruct
		Level:     slog.LevelDebug,
		AddSource: true,
	})
	logger := slog.New(logging.NewContextHandler(loggerHandler))

	// Missing .env is fine, the environment may be configured externally.
	if err := godotenv.Load(); err != nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "skipping .env", errors.SlogError(err))
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server error", errors.SlogError(err))
		os.Exit(1)
	}
}
