package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
	"github.com/opsmatters/opsmatters-media-sub001/internal/ports"
)

// RoundupSite is one organisation blog to crawl for new posts.
type RoundupSite struct {
	Organisation domain.Organisation
	Request      ports.RoundupRequest
	Posts        domain.PostConfig
}

// RoundupDeps wires the crawler into the roundup use case. Pages is
// optional; without it page fields are not read.
type RoundupDeps struct {
	Scanner       ports.RoundupScanner
	Pages         ports.PageScanner
	Formatter     ports.SummaryFormatter
	FieldDefaults []domain.FieldDefault
	Metrics       *Metrics
	Logger        *slog.Logger
}

// Roundup promotes the entries of organisation blogs into new posts.
type Roundup struct {
	scanner       ports.RoundupScanner
	pages         ports.PageScanner
	formatter     ports.SummaryFormatter
	fieldDefaults []domain.FieldDefault
	metrics       *Metrics
	logger        *slog.Logger
}

func NewRoundup(deps RoundupDeps) *Roundup {
	return &Roundup{
		scanner:       deps.Scanner,
		pages:         deps.Pages,
		formatter:     deps.Formatter,
		fieldDefaults: deps.FieldDefaults,
		metrics:       deps.Metrics,
		logger:        deps.Logger,
	}
}

// Run crawls every site and returns the posts built from their entries.
// A site that cannot be crawled stops the run.
func (r *Roundup) Run(ctx context.Context, sites []RoundupSite) (IngestResult, error) {
	result := IngestResult{Summaries: map[string]*domain.OrganisationSummary{}}
	if r.scanner == nil {
		return result, fmt.Errorf("roundup scanner is not configured")
	}

	for _, site := range sites {
		org := site.Organisation
		r.debug("process site", "organisation", org.Code, "url", site.Request.URL)

		entries, err := r.scanner.ScanRoundup(ctx, site.Request)
		if err != nil {
			return result, fmt.Errorf("scan site %s: %w", org.Code, err)
		}

		summary := domain.NewOrganisationSummary(org.SiteID, org.Code, org.Name)
		var posts []*domain.Content
		for n, entry := range entries {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			post, err := r.promote(ctx, entry, site)
			if err != nil {
				result.Errors = append(result.Errors, &domain.RowError{Type: domain.TypePost, Row: n + 1, Err: err})
				r.metrics.entry(org.Code, resultRejected)
				continue
			}
			posts = append(posts, post)
			r.metrics.entry(org.Code, resultIngested)
		}
		summary.SetContent(posts)

		result.Items = append(result.Items, posts...)
		result.Summaries[org.Code] = summary
		r.debug("site produced posts", "organisation", org.Code, "count", len(posts))
	}
	return result, nil
}

func (r *Roundup) promote(ctx context.Context, entry domain.RoundupSummary, site RoundupSite) (*domain.Content, error) {
	post, err := domain.NewPostFromSummary(entry, site.Organisation, site.Posts.Defaults())
	if err != nil {
		return nil, err
	}
	if r.pages != nil && len(site.Request.PageFields) > 0 {
		page, err := r.pages.ScanPage(ctx, post.URL, site.Request.PageFields, entry.Fields().Strings())
		if err != nil {
			return nil, fmt.Errorf("scan page %s: %w", post.URL, err)
		}
		if err := page.Apply(post); err != nil {
			return nil, err
		}
	}
	if err := domain.ApplyFieldDefaults(post, r.fieldDefaults); err != nil {
		return nil, err
	}
	post.Init()
	post.Prepare(r.formatter, site.Posts.Summary)
	return post, nil
}

func (r *Roundup) debug(msg string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}
