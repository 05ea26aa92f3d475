package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsmatters/opsmatters-media-sub001/internal/config"
	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
	"github.com/opsmatters/opsmatters-media-sub001/internal/logging"
	"github.com/opsmatters/opsmatters-media-sub001/internal/ports"
	"github.com/opsmatters/opsmatters-media-sub001/internal/usecase"
)

const appConfig = `
organisations:
  - site: ops
    code: acme
    name: Acme Inc
    email: press@acme.io
    posts:
      title-case: upper
    roundup:
      url: https://acme.io/blog
      item: article
      fields:
        - field: title
          selector: h2
  - site: ops
    code: quiet
    name: Quiet Ltd
fieldDefaults:
  - field: link-text
    value: Read more
`

func newTestApp(t *testing.T) (*Application, config.Config) {
	t.Helper()
	cfg, err := config.Parse([]byte(appConfig))
	require.NoError(t, err)

	application, err := New(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(application.Close)
	return application, cfg
}

func TestApplicationIngest(t *testing.T) {
	application, _ := newTestApp(t)

	row := []string{
		"7", "2024-04-01", "Cloud cost guide", "A short guide.", "",
		"https://acme.io/guide", "", "acme", "",
		"", "", "", "", "", "",
		"Acme Research", "", "sheet", "1", "0",
	}
	res, err := application.Ingest(context.Background(), usecase.IngestRequest{
		SiteID: "ops",
		Type:   domain.TypeWhitePaper,
		Rows:   [][]string{row},
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Acme Inc", res.Items[0].Organisation)
	assert.Equal(t, "Read more", res.Items[0].LinkText)
	assert.Empty(t, res.Errors)

	families, err := application.Metrics().Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "content_ingest_rows_total")
}

func TestRoundupSites(t *testing.T) {
	_, cfg := newTestApp(t)
	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	sites, err := RoundupSites(cfg, since)
	require.NoError(t, err)
	require.Len(t, sites, 1)

	site := sites[0]
	assert.Equal(t, "acme", site.Organisation.Code)
	assert.Equal(t, "https://acme.io/blog", site.Request.URL)
	assert.Equal(t, since, site.Request.Since)
	assert.Equal(t, domain.FieldCaseUpper, site.Posts.TitleCase)
	require.Len(t, site.Request.Fields, 1)
	assert.Equal(t, domain.FieldTitle, site.Request.Fields[0].Field)
}

func TestRoundupSitesInvalidRule(t *testing.T) {
	cfg := config.Config{Organisations: []config.OrganisationConfig{{
		Site: "ops",
		Code: "acme",
		Roundup: &config.RoundupConfig{
			URL:    "https://acme.io/blog",
			Fields: []config.FieldRuleConfig{{Field: "no-such-field", Selector: "h2"}},
		},
	}}}

	_, err := RoundupSites(cfg, time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestSyncOrganisations(t *testing.T) {
	application, _ := newTestApp(t)
	ctx := context.Background()

	n, err := application.SyncOrganisations(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	org, err := application.Organisation(ctx, "ops", "quiet")
	require.NoError(t, err)
	assert.Equal(t, "Quiet Ltd", org.Name)

	_, err = application.Organisation(ctx, "ops", "ghost")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
