package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
	"github.com/opsmatters/opsmatters-media-sub001/internal/ports"
)

// RowParsers resolves the row parser of a content type.
type RowParsers interface {
	Resolve(t domain.ContentType) (ports.RowParser, error)
}

// IngestDeps wires all driven adapters into the ingest use case.
type IngestDeps struct {
	Parsers       RowParsers
	Organisations ports.Organisations
	Parameters    ports.Parameters
	Settings      ports.ContentSettings
	Formatter     ports.SummaryFormatter
	Summary       domain.SummaryConfig
	FieldDefaults []domain.FieldDefault
	Metrics       *Metrics
	Logger        *slog.Logger
}

// IngestRequest is one sheet of rows of a single content type.
type IngestRequest struct {
	SiteID string
	Type   domain.ContentType
	Rows   [][]string
}

// IngestResult holds the items built from a sheet, the rows that were
// rejected and the per-organisation rollups of the accepted items.
type IngestResult struct {
	Items     []*domain.Content
	Errors    []*domain.RowError
	Summaries map[string]*domain.OrganisationSummary
}

// Ingest turns spreadsheet rows into prepared content items.
type Ingest struct {
	parsers       RowParsers
	organisations ports.Organisations
	parameters    ports.Parameters
	settings      ports.ContentSettings
	formatter     ports.SummaryFormatter
	summary       domain.SummaryConfig
	fieldDefaults []domain.FieldDefault
	metrics       *Metrics
	logger        *slog.Logger
}

// NewIngest constructs the ingest use case.
func NewIngest(deps IngestDeps) *Ingest {
	summary := deps.Summary
	if summary == (domain.SummaryConfig{}) {
		summary = domain.DefaultSummaryConfig()
	}
	return &Ingest{
		parsers:       deps.Parsers,
		organisations: deps.Organisations,
		parameters:    deps.Parameters,
		settings:      deps.Settings,
		formatter:     deps.Formatter,
		summary:       summary,
		fieldDefaults: deps.FieldDefaults,
		metrics:       deps.Metrics,
		logger:        deps.Logger,
	}
}

// Run parses every row of the request. A bad row is recorded in the result
// and never stops the sheet; only a failing collaborator does.
func (i *Ingest) Run(ctx context.Context, req IngestRequest) (IngestResult, error) {
	result := IngestResult{Summaries: map[string]*domain.OrganisationSummary{}}

	if i.parsers == nil {
		return result, fmt.Errorf("row parsers are not configured")
	}
	parser, err := i.parsers.Resolve(req.Type)
	if err != nil {
		return result, err
	}

	minWebinar, err := i.minWebinarDuration(ctx)
	if err != nil {
		return result, err
	}

	i.debug("ingest sheet", "type", req.Type.Value(), "site", req.SiteID, "rows", len(req.Rows))

	byOrg := map[string][]*domain.Content{}
	for n, row := range req.Rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		c, err := i.ingestRow(ctx, req, parser, row, minWebinar)
		if err != nil {
			var fatal *collaboratorError
			if errors.As(err, &fatal) {
				return result, fatal.err
			}
			rowErr := &domain.RowError{Type: req.Type, Row: n + 1, Err: err}
			result.Errors = append(result.Errors, rowErr)
			i.metrics.row(req.Type.Value(), resultRejected)
			i.warn("row rejected", "type", req.Type.Value(), "row", n+1, "error", err)
			continue
		}

		result.Items = append(result.Items, c)
		byOrg[c.Code] = append(byOrg[c.Code], c)
		if _, ok := result.Summaries[c.Code]; !ok {
			result.Summaries[c.Code] = domain.NewOrganisationSummary(c.SiteID, c.Code, c.Organisation)
		}
		i.metrics.row(req.Type.Value(), resultIngested)
	}

	for code, items := range byOrg {
		result.Summaries[code].SetContent(items)
	}

	i.debug("ingest done", "type", req.Type.Value(), "items", len(result.Items), "rejected", len(result.Errors))
	return result, nil
}

func (i *Ingest) ingestRow(ctx context.Context, req IngestRequest, parser ports.RowParser, row []string, minWebinar int64) (*domain.Content, error) {
	c, err := parser.Parse(row)
	if err != nil {
		return nil, err
	}
	if c.SiteID == "" {
		c.SiteID = req.SiteID
	}

	if err := i.resolveOrganisation(ctx, c); err != nil {
		return nil, err
	}

	if err := domain.ApplyFieldDefaults(c, i.fieldDefaults); err != nil {
		return nil, err
	}

	summary := i.summary
	if c.Has(domain.HasToolFields) {
		tools, ok, err := i.toolConfig(c)
		if err != nil {
			return nil, err
		}
		if ok {
			c.FillDefaults(tools.Defaults())
			summary = tools.Summary
		}
	}

	if c.Has(domain.HasVideoFields) && c.VideoType == "" {
		c.VideoType = domain.GuessVideoType(c.Title+" "+c.Summary, c.Duration, minWebinar)
	}

	c.Init()
	c.Prepare(i.formatter, summary)
	return c, nil
}

func (i *Ingest) toolConfig(c *domain.Content) (domain.ToolConfig, bool, error) {
	if i.settings == nil {
		return domain.ToolConfig{}, false, nil
	}
	cfg, ok, err := i.settings.ToolConfig(c.SiteID, c.Code)
	if err != nil {
		return cfg, false, &collaboratorError{err: fmt.Errorf("tool settings of %s: %w", c.Code, err)}
	}
	return cfg, ok, nil
}

// resolveOrganisation fills the organisation name and email a row left
// blank.
func (i *Ingest) resolveOrganisation(ctx context.Context, c *domain.Content) error {
	if i.organisations == nil || !c.Has(domain.HasOrganisationLink) {
		return nil
	}
	if strings.TrimSpace(c.Code) == "" {
		return fmt.Errorf("%w: organisation code is empty", domain.ErrInvalidValue)
	}
	if c.Organisation != "" && c.Email != "" {
		return nil
	}

	org, err := i.organisations.Organisation(ctx, c.SiteID, c.Code)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return err
		}
		return &collaboratorError{err: fmt.Errorf("resolve organisation %s: %w", c.Code, err)}
	}
	if c.Organisation == "" {
		c.Organisation = org.Name
	}
	if c.Email == "" {
		c.Email = org.Email
	}
	return nil
}

func (i *Ingest) minWebinarDuration(ctx context.Context) (int64, error) {
	if i.parameters == nil {
		return domain.DefaultMinWebinarDuration, nil
	}
	v, ok, err := i.parameters.Int(ctx, domain.ParamMinWebinarDuration)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", domain.ParamMinWebinarDuration, err)
	}
	if !ok || v <= 0 {
		return domain.DefaultMinWebinarDuration, nil
	}
	return v, nil
}

// collaboratorError marks a failure of an adapter rather than of the row.
type collaboratorError struct {
	err error
}

func (e *collaboratorError) Error() string { return e.err.Error() }

func (e *collaboratorError) Unwrap() error { return e.err }

func (i *Ingest) debug(msg string, args ...interface{}) {
	if i.logger != nil {
		i.logger.Debug(msg, args...)
	}
}

func (i *Ingest) warn(msg string, args ...interface{}) {
	if i.logger != nil {
		i.logger.Warn(msg, args...)
	}
}
