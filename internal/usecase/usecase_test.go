package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
	"github.com/opsmatters/opsmatters-media-sub001/internal/infrastructure/storage"
	"github.com/opsmatters/opsmatters-media-sub001/internal/ports"
	"github.com/opsmatters/opsmatters-media-sub001/internal/sheet"
)

var acme = domain.Organisation{SiteID: "ops", Code: "acme", Name: "Acme Inc", Email: "press@acme.io"}

type firstSentence struct{}

func (firstSentence) FormatSummary(text string, _ domain.SummaryConfig) string {
	for i, r := range text {
		if r == '.' {
			return text[:i+1]
		}
	}
	return text
}

func ebookRow(id, code string) []string {
	return []string{
		id, "2024-04-01", "Cloud cost guide", "", "Costs explained. More detail follows.",
		"https://acme.io/guide", "", code, "finops",
		"", "", "", "", "", "",
		"Acme Research", "", "sheet", "1", "0",
	}
}

func videoRow(title, duration string) []string {
	return []string{
		"", "2024-04-01", title, "", "yt-1", "", "YOUTUBE", "chan", duration,
		"acme", "", "", "", "sheet", "0", "0",
	}
}

func newIngest(t *testing.T, orgs ports.Organisations, params map[string]int64) (*Ingest, *Metrics) {
	t.Helper()
	metrics := NewMetrics(prometheus.NewRegistry())
	return NewIngest(IngestDeps{
		Parsers:       sheet.DefaultRegistry(),
		Organisations: orgs,
		Parameters:    storage.NewMemoryParameters(params),
		Formatter:     firstSentence{},
		FieldDefaults: []domain.FieldDefault{{Name: domain.FieldLinkText, Value: "Download"}},
		Metrics:       metrics,
	}), metrics
}

func TestIngestRun(t *testing.T) {
	ingest, metrics := newIngest(t, storage.NewMemoryOrganisations(acme), nil)

	res, err := ingest.Run(context.Background(), IngestRequest{
		SiteID: "ops",
		Type:   domain.TypeEBook,
		Rows: [][]string{
			ebookRow("1", "acme"),
			ebookRow("2", "acme")[:12],
			ebookRow("3", "ghost"),
			ebookRow("x", "acme"),
			ebookRow("5", "acme"),
		},
	})
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	first := res.Items[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "ops", first.SiteID)
	assert.Equal(t, "Acme Inc", first.Organisation)
	assert.Equal(t, "press@acme.io", first.Email)
	assert.Equal(t, "Download", first.LinkText)
	assert.Equal(t, "Costs explained.", first.Summary)
	assert.NotEmpty(t, first.UUID)
	assert.Equal(t, domain.StatusNew, first.Status)
	assert.Equal(t, domain.SourceSpreadsheet, first.Source)

	require.Len(t, res.Errors, 3)
	assert.Equal(t, 2, res.Errors[0].Row)
	assert.ErrorIs(t, res.Errors[0], domain.ErrTooFewColumns)
	assert.Equal(t, 3, res.Errors[1].Row)
	assert.ErrorIs(t, res.Errors[1], ports.ErrNotFound)
	assert.Equal(t, 4, res.Errors[2].Row)
	assert.ErrorIs(t, res.Errors[2], domain.ErrInvalidValue)

	summary := res.Summaries["acme"]
	require.NotNil(t, summary)
	assert.Equal(t, 2, summary.ItemCount())
	assert.False(t, summary.IsDeployed())

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.rows.WithLabelValues("E-Book", resultIngested)))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.rows.WithLabelValues("E-Book", resultRejected)))
}

func TestIngestGuessesVideoType(t *testing.T) {
	interview := videoRow("Quick look", "60")
	interview[5] = "Interview"
	rows := [][]string{
		videoRow("Product demo", "900"),
		videoRow("Live webinar", "60"),
		interview,
	}

	ingest, _ := newIngest(t, storage.NewMemoryOrganisations(acme), nil)
	res, err := ingest.Run(context.Background(), IngestRequest{SiteID: "ops", Type: domain.TypeVideo, Rows: rows})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	assert.Equal(t, domain.VideoDemo, res.Items[0].VideoType)
	assert.Equal(t, domain.VideoWebinar, res.Items[1].VideoType)
	assert.Equal(t, domain.VideoInterview, res.Items[2].VideoType)

	ingest, _ = newIngest(t, storage.NewMemoryOrganisations(acme), map[string]int64{domain.ParamMinWebinarDuration: 600})
	res, err = ingest.Run(context.Background(), IngestRequest{SiteID: "ops", Type: domain.TypeVideo, Rows: rows[:1]})
	require.NoError(t, err)
	assert.Equal(t, domain.VideoWebinar, res.Items[0].VideoType)
}

type brokenOrganisations struct{}

func (brokenOrganisations) Organisation(context.Context, string, string) (domain.Organisation, error) {
	return domain.Organisation{}, errors.New("connection refused")
}

func TestIngestCollaboratorFailureStopsTheSheet(t *testing.T) {
	ingest, _ := newIngest(t, brokenOrganisations{}, nil)

	_, err := ingest.Run(context.Background(), IngestRequest{
		SiteID: "ops",
		Type:   domain.TypeEBook,
		Rows:   [][]string{ebookRow("1", "acme")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIngestUnknownType(t *testing.T) {
	ingest := NewIngest(IngestDeps{Parsers: sheet.NewRegistry()})
	_, err := ingest.Run(context.Background(), IngestRequest{Type: domain.TypePost})
	assert.ErrorIs(t, err, domain.ErrUnknownContentType)
}

func TestIngestCancelled(t *testing.T) {
	ingest, _ := newIngest(t, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ingest.Run(ctx, IngestRequest{Type: domain.TypeEBook, Rows: [][]string{ebookRow("1", "acme")}})
	assert.ErrorIs(t, err, context.Canceled)
}

type stubScanner struct {
	entries map[string][]domain.RoundupSummary
	err     error
}

func (s stubScanner) ScanRoundup(_ context.Context, req ports.RoundupRequest) ([]domain.RoundupSummary, error) {
	return s.entries[req.SiteName], s.err
}

func TestRoundupRun(t *testing.T) {
	scanner := stubScanner{entries: map[string][]domain.RoundupSummary{
		"acme": {
			{Title: "scaling tracing", URL: "https://acme.io/blog/tracing", Summary: "How we scaled."},
			{Title: "alert fatigue", URL: "https://acme.io/blog/alerts"},
		},
	}}
	metrics := NewMetrics(nil)
	roundup := NewRoundup(RoundupDeps{
		Scanner:   scanner,
		Formatter: firstSentence{},
		Metrics:   metrics,
	})

	res, err := roundup.Run(context.Background(), []RoundupSite{{
		Organisation: acme,
		Request:      ports.RoundupRequest{SiteName: "acme"},
		Posts:        domain.PostConfig{TitleCase: domain.FieldCaseTitle, Newsletter: true, Summary: domain.DefaultSummaryConfig()},
	}})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	post := res.Items[0]
	assert.Equal(t, domain.TypePost, post.Type)
	assert.Equal(t, "Scaling Tracing", post.Title)
	assert.Equal(t, "https://acme.io/blog/tracing", post.CanonicalURL)
	assert.True(t, post.Newsletter)
	assert.NotEmpty(t, post.UUID)
	assert.Equal(t, 2, res.Summaries["acme"].ItemCount())
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.entries.WithLabelValues("acme", resultIngested)))
}

func TestRoundupScanFailure(t *testing.T) {
	roundup := NewRoundup(RoundupDeps{Scanner: stubScanner{err: errors.New("timeout")}})
	_, err := roundup.Run(context.Background(), []RoundupSite{{Organisation: acme}})
	assert.ErrorContains(t, err, "scan site acme")

	_, err = NewRoundup(RoundupDeps{}).Run(context.Background(), nil)
	assert.Error(t, err)
}

func toolRow(pricing, provider string) []string {
	return []string{
		"", "2024-04-01", "Trace viewer", "", "Browse traces. Filters included.",
		"https://acme.io/viewer", "", "acme", "",
		"", pricing, "https://github.com/acme/viewer", provider, "",
		"", "", "0", "0",
	}
}

type stubSettings struct {
	tools map[string]domain.ToolConfig
	err   error
}

func (s stubSettings) ToolConfig(_, code string) (domain.ToolConfig, bool, error) {
	cfg, ok := s.tools[code]
	return cfg, ok, s.err
}

func TestIngestToolDefaults(t *testing.T) {
	settings := stubSettings{tools: map[string]domain.ToolConfig{
		"acme": {
			Tags:         []string{"tracing"},
			Pricing:      "Open Source",
			RepoProvider: domain.RepoGitLab,
			CreatedBy:    "Acme Tools",
			Summary:      domain.DefaultSummaryConfig(),
		},
	}}
	ingest := NewIngest(IngestDeps{
		Parsers:       sheet.DefaultRegistry(),
		Organisations: storage.NewMemoryOrganisations(acme),
		Parameters:    storage.NewMemoryParameters(nil),
		Settings:      settings,
		Formatter:     firstSentence{},
	})

	res, err := ingest.Run(context.Background(), IngestRequest{
		SiteID: "ops",
		Type:   domain.TypeTool,
		Rows:   [][]string{toolRow("", ""), toolRow("Free", "GitHub")},
	})
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Items, 2)

	filled := res.Items[0]
	assert.Equal(t, "Open Source", filled.Pricing)
	assert.Equal(t, domain.RepoGitLab, filled.RepoProvider)
	assert.Equal(t, "tracing", filled.Tags)
	assert.Equal(t, "Acme Tools", filled.CreatedBy)
	assert.Equal(t, "Browse traces.", filled.Summary)

	kept := res.Items[1]
	assert.Equal(t, "Free", kept.Pricing)
	assert.Equal(t, domain.RepoGitHub, kept.RepoProvider)

	assert.Equal(t, []string{"tracing"}, settings.tools["acme"].Tags)
}

func TestIngestToolSettingsFailureStopsTheSheet(t *testing.T) {
	ingest := NewIngest(IngestDeps{
		Parsers:       sheet.DefaultRegistry(),
		Organisations: storage.NewMemoryOrganisations(acme),
		Settings:      stubSettings{err: errors.New("bad tools attribute")},
	})

	_, err := ingest.Run(context.Background(), IngestRequest{
		SiteID: "ops",
		Type:   domain.TypeTool,
		Rows:   [][]string{toolRow("", "")},
	})
	assert.ErrorContains(t, err, "tool settings of acme")
}

type stubPages struct {
	fields map[string]string
	err    error
	seen   []map[string]string
}

func (s *stubPages) ScanPage(_ context.Context, pageURL string, _ []domain.FieldRule, entry map[string]string) (domain.CrawledPage, error) {
	s.seen = append(s.seen, entry)
	if s.err != nil {
		return domain.CrawledPage{}, s.err
	}
	page := domain.CrawledPage{URL: pageURL, Fields: domain.FieldMap{}}
	for k, v := range s.fields {
		name, ok := domain.FieldNameFromValue(k)
		if !ok {
			return page, fmt.Errorf("unknown field %q", k)
		}
		page.Fields.Put(name, v)
	}
	return page, nil
}

func TestRoundupReadsPageFields(t *testing.T) {
	scanner := stubScanner{entries: map[string][]domain.RoundupSummary{
		"acme": {{Title: "scaling tracing", URL: "https://acme.io/blog/tracing?utm=feed"}},
	}}
	pages := &stubPages{fields: map[string]string{
		"description":   "Tracing at scale. With numbers.",
		"canonical-url": "https://acme.io/blog/tracing",
	}}
	roundup := NewRoundup(RoundupDeps{Scanner: scanner, Pages: pages, Formatter: firstSentence{}})

	site := RoundupSite{
		Organisation: acme,
		Request: ports.RoundupRequest{
			SiteName:   "acme",
			PageFields: []domain.FieldRule{{Field: domain.FieldDescription}},
		},
		Posts: domain.PostConfig{Summary: domain.DefaultSummaryConfig()},
	}
	res, err := roundup.Run(context.Background(), []RoundupSite{site})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)

	post := res.Items[0]
	assert.Equal(t, "Tracing at scale. With numbers.", post.Description)
	assert.Equal(t, "Tracing at scale.", post.Summary)
	assert.Equal(t, "https://acme.io/blog/tracing", post.CanonicalURL)

	require.Len(t, pages.seen, 1)
	assert.Equal(t, "scaling tracing", pages.seen[0]["title"])
}

func TestRoundupPageFailureRejectsTheEntry(t *testing.T) {
	scanner := stubScanner{entries: map[string][]domain.RoundupSummary{
		"acme": {{Title: "gone", URL: "https://acme.io/blog/gone"}},
	}}
	metrics := NewMetrics(nil)
	roundup := NewRoundup(RoundupDeps{
		Scanner: scanner,
		Pages:   &stubPages{err: errors.New("404 Not Found")},
		Metrics: metrics,
	})

	res, err := roundup.Run(context.Background(), []RoundupSite{{
		Organisation: acme,
		Request: ports.RoundupRequest{
			SiteName:   "acme",
			PageFields: []domain.FieldRule{{Field: domain.FieldDescription}},
		},
	}})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 1, res.Errors[0].Row)
	assert.ErrorContains(t, res.Errors[0], "scan page https://acme.io/blog/gone")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.entries.WithLabelValues("acme", resultRejected)))
}
