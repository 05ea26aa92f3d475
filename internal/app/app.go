package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/opsmatters/opsmatters-media-sub001/internal/config"
	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
	"github.com/opsmatters/opsmatters-media-sub001/internal/infrastructure/formatter"
	"github.com/opsmatters/opsmatters-media-sub001/internal/infrastructure/parser"
	"github.com/opsmatters/opsmatters-media-sub001/internal/infrastructure/storage"
	"github.com/opsmatters/opsmatters-media-sub001/internal/logging"
	"github.com/opsmatters/opsmatters-media-sub001/internal/ports"
	"github.com/opsmatters/opsmatters-media-sub001/internal/sheet"
	"github.com/opsmatters/opsmatters-media-sub001/internal/usecase"
)

// Application wires configs to use cases.
type Application struct {
	cfg           config.Config
	logger        *slog.Logger
	pool          *pgxpool.Pool
	registry      *prometheus.Registry
	organisations ports.OrganisationStore
	ingest        *usecase.Ingest
	roundup       *usecase.Roundup
}

// New builds the application. Organisations and parameters are read from
// Postgres when a DSN is configured and from the configuration otherwise.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	summary, err := cfg.SummaryConfig()
	if err != nil {
		return nil, fmt.Errorf("summary config: %w", err)
	}
	defaults, err := cfg.Defaults()
	if err != nil {
		return nil, fmt.Errorf("field defaults: %w", err)
	}

	a := &Application{cfg: cfg, logger: baseLogger, registry: prometheus.NewRegistry()}

	var parameters ports.Parameters
	if cfg.Database.DSN != "" {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		a.pool = pool
		a.organisations = storage.NewPostgresOrganisations(pool)
		parameters = storage.NewPostgresParameters(pool)
	} else {
		a.organisations = storage.NewMemoryOrganisations(cfg.OrganisationList()...)
		parameters = storage.NewMemoryParameters(cfg.Parameters)
	}

	summaries := formatter.New(baseLogger.With("component", "formatter"))
	scanner := parser.NewPageScanner(nil, baseLogger.With("component", "scanner"))
	metrics := usecase.NewMetrics(a.registry)

	a.ingest = usecase.NewIngest(usecase.IngestDeps{
		Parsers:       sheet.DefaultRegistry(),
		Organisations: a.organisations,
		Parameters:    parameters,
		Settings:      cfg,
		Formatter:     summaries,
		Summary:       summary,
		FieldDefaults: defaults,
		Metrics:       metrics,
		Logger:        baseLogger.With("component", "ingest"),
	})
	a.roundup = usecase.NewRoundup(usecase.RoundupDeps{
		Scanner:       scanner,
		Pages:         scanner,
		Formatter:     summaries,
		FieldDefaults: defaults,
		Metrics:       metrics,
		Logger:        baseLogger.With("component", "roundup"),
	})
	return a, nil
}

// Ingest parses a sheet of rows of one content type for a site.
func (a *Application) Ingest(ctx context.Context, req usecase.IngestRequest) (usecase.IngestResult, error) {
	return a.ingest.Run(ctx, req)
}

// Roundup crawls every organisation with a roundup configured for posts
// published after since.
func (a *Application) Roundup(ctx context.Context, since time.Time) (usecase.IngestResult, error) {
	sites, err := RoundupSites(a.cfg, since)
	if err != nil {
		return usecase.IngestResult{}, err
	}
	if len(sites) == 0 {
		a.logger.Warn("no organisation has a roundup configured")
	}
	return a.roundup.Run(ctx, sites)
}

// SyncOrganisations records every configured organisation in the
// organisation store and returns how many were saved.
func (a *Application) SyncOrganisations(ctx context.Context) (int, error) {
	orgs := a.cfg.OrganisationList()
	for _, org := range orgs {
		if err := a.organisations.SaveOrganisation(ctx, org); err != nil {
			return 0, fmt.Errorf("save organisation %s: %w", org.Code, err)
		}
	}
	a.logger.Info("organisations synced", "count", len(orgs))
	return len(orgs), nil
}

// Organisation resolves an organisation site from the store.
func (a *Application) Organisation(ctx context.Context, siteID, code string) (domain.Organisation, error) {
	return a.organisations.Organisation(ctx, siteID, code)
}

// RoundupSites resolves the roundup of every configured organisation.
func RoundupSites(cfg config.Config, since time.Time) ([]usecase.RoundupSite, error) {
	var sites []usecase.RoundupSite
	for _, o := range cfg.Organisations {
		req, ok, err := o.RoundupRequest(since)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		posts, err := o.PostConfig()
		if err != nil {
			return nil, err
		}
		sites = append(sites, usecase.RoundupSite{
			Organisation: o.Organisation(),
			Request:      req,
			Posts:        posts,
		})
	}
	return sites, nil
}

// Metrics exposes the counters collected by the use cases.
func (a *Application) Metrics() prometheus.Gatherer {
	return a.registry
}

// Close releases the database pool.
func (a *Application) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
