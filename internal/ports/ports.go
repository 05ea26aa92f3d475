package ports

import (
	"context"
	"errors"
	"time"

	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
)

// ErrNotFound is returned by lookups that match nothing.
var ErrNotFound = errors.New("not found")

// Organisations resolves the organisation site an item belongs to.
type Organisations interface {
	Organisation(ctx context.Context, siteID, code string) (domain.Organisation, error)
}

// OrganisationStore also records organisation sites.
type OrganisationStore interface {
	Organisations
	SaveOrganisation(ctx context.Context, org domain.Organisation) error
}

// ContentSettings resolves per-organisation settings of new content. ok is
// false when the organisation has none.
type ContentSettings interface {
	ToolConfig(siteID, code string) (cfg domain.ToolConfig, ok bool, err error)
}

// Parameters reads application parameters such as the webinar threshold.
type Parameters interface {
	Int(ctx context.Context, key string) (int64, bool, error)
}

// SummaryFormatter derives summaries from item descriptions.
type SummaryFormatter = domain.SummaryFormatter

// RowParser turns one positional sheet row into a content item.
type RowParser interface {
	Type() domain.ContentType
	Parse(row []string) (*domain.Content, error)
}

// RoundupRequest describes an organisation blog listing to crawl.
type RoundupRequest struct {
	SiteName  string
	URL       string
	Item      string
	PageParam string
	MaxPages  int
	Since     time.Time
	Fields    []domain.FieldRule
	// PageFields are read from the page of each entry. Feed rules name a
	// field of the listing entry ("summary", "author").
	PageFields []domain.FieldRule
}

// RoundupScanner lists the posts of an organisation blog.
type RoundupScanner interface {
	ScanRoundup(ctx context.Context, req RoundupRequest) ([]domain.RoundupSummary, error)
}

// PageScanner extracts ruled fields from a single page.
type PageScanner interface {
	ScanPage(ctx context.Context, pageURL string, rules []domain.FieldRule, entry map[string]string) (domain.CrawledPage, error)
}

// Scheduler triggers a job periodically until stopped.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
