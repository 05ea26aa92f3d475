package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"

	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
	"github.com/opsmatters/opsmatters-media-sub001/internal/ports"
)

const defaultMaxPages = 5

// linkFields hold URLs that are resolved against the page they came from.
var linkFields = map[domain.FieldName]bool{
	domain.FieldURL:          true,
	domain.FieldCanonicalURL: true,
	domain.FieldImage:        true,
	domain.FieldThumbnail:    true,
	domain.FieldAuthorLink:   true,
}

// PageScanner fetches pages and extracts content fields from them.
type PageScanner struct {
	client *http.Client
	logger *slog.Logger
}

var (
	_ ports.RoundupScanner = (*PageScanner)(nil)
	_ ports.PageScanner    = (*PageScanner)(nil)
)

// NewPageScanner wires an HTTP client; a nil client gets a 20s timeout.
func NewPageScanner(client *http.Client, logger *slog.Logger) *PageScanner {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &PageScanner{client: client, logger: logger}
}

// ScanPage extracts the ruled fields of a single page. Feed rules read
// from entry, the feed item the page was discovered through.
func (s *PageScanner) ScanPage(ctx context.Context, pageURL string, rules []domain.FieldRule, entry map[string]string) (domain.CrawledPage, error) {
	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		return domain.CrawledPage{}, err
	}
	base, _ := url.Parse(pageURL)
	return domain.CrawledPage{
		URL:    pageURL,
		Fields: s.extractFields(doc.Selection, doc.Selection, rules, entry, base),
	}, nil
}

// ScanRoundup walks the listing pages of a blog and returns every entry
// published at or after req.Since, newest first as listed.
func (s *PageScanner) ScanRoundup(ctx context.Context, req ports.RoundupRequest) ([]domain.RoundupSummary, error) {
	if req.URL == "" || req.Item == "" {
		return nil, fmt.Errorf("roundup for site %s needs a url and an item selector", req.SiteName)
	}

	maxPages := req.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	if req.PageParam == "" {
		maxPages = 1
	}

	var (
		results []domain.RoundupSummary
		seen    = map[string]struct{}{}
	)
	for page := 1; page <= maxPages; page++ {
		pageURL, err := buildPageURL(req.URL, req.PageParam, page)
		if err != nil {
			return nil, fmt.Errorf("site %s: %w", req.SiteName, err)
		}

		doc, err := s.fetchDocument(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("site %s: %w", req.SiteName, err)
		}

		base, _ := url.Parse(pageURL)
		entries, shouldContinue := s.extractEntries(doc, req, base)
		for _, entry := range entries {
			if _, ok := seen[entry.URL]; ok {
				continue
			}
			seen[entry.URL] = struct{}{}
			results = append(results, entry)
		}
		s.debug("roundup page scanned", "site", req.SiteName, "page", page, "entries", len(entries))

		if !shouldContinue {
			break
		}
	}
	return results, nil
}

func (s *PageScanner) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "contentctl/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %s", pageURL, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

func (s *PageScanner) extractEntries(doc *goquery.Document, req ports.RoundupRequest, base *url.URL) ([]domain.RoundupSummary, bool) {
	var (
		collected    []domain.RoundupSummary
		continueScan = true
		processed    int
	)

	doc.Find(req.Item).EachWithBreak(func(_ int, item *goquery.Selection) bool {
		processed++
		fields := s.extractFields(item, doc.Selection, req.Fields, nil, base)

		entry, err := summaryFromFields(fields)
		if err != nil {
			s.debug("skip roundup entry", "site", req.SiteName, "error", err)
			return true
		}
		if !req.Since.IsZero() && !entry.PublishedDate.IsZero() && entry.PublishedDate.Before(req.Since) {
			continueScan = false
			return false
		}
		collected = append(collected, entry)
		return true
	})

	if processed == 0 {
		continueScan = false
	}
	return collected, continueScan
}

// extractFields applies rules to scope; meta rules always read from the
// document head.
func (s *PageScanner) extractFields(scope, root *goquery.Selection, rules []domain.FieldRule, entry map[string]string, base *url.URL) domain.FieldMap {
	fields := domain.FieldMap{}
	for _, rule := range rules {
		var value string
		switch rule.Source {
		case domain.FieldSourceMeta:
			value = metaValue(root, rule.Selector)
		case domain.FieldSourceFeed:
			value = entry[rule.Selector]
		default:
			value = selectionValue(scope.Find(rule.Selector).First(), rule.Attr)
		}
		if value == "" {
			continue
		}

		if rule.Field == domain.FieldPublishedDate {
			published, err := dateparse.ParseIn(value, time.UTC)
			if err != nil {
				s.debug("unparseable date", "value", value, "error", err)
				continue
			}
			value = domain.FormatUTC(published, domain.DateTimeLayout)
		}
		if linkFields[rule.Field] {
			value = resolve(base, value)
		}
		fields.Put(rule.Field, rule.Case.Apply(value))
	}
	return fields
}

func summaryFromFields(fields domain.FieldMap) (domain.RoundupSummary, error) {
	entry := domain.RoundupSummary{
		Title:      fields[domain.FieldTitle],
		Summary:    fields[domain.FieldSummary],
		URL:        fields[domain.FieldURL],
		Image:      fields[domain.FieldImage],
		Author:     fields[domain.FieldAuthor],
		AuthorLink: fields[domain.FieldAuthorLink],
	}
	if entry.URL == "" || entry.Title == "" {
		return entry, fmt.Errorf("entry without url or title")
	}
	if v := fields[domain.FieldPublishedDate]; v != "" {
		published, err := domain.ParseUTC(v, domain.DateTimeLayout)
		if err != nil {
			return entry, err
		}
		entry.PublishedDate = published
	}
	return entry, nil
}

func selectionValue(sel *goquery.Selection, attr string) string {
	if sel.Length() == 0 {
		return ""
	}
	if attr != "" {
		v, _ := sel.Attr(attr)
		return strings.TrimSpace(v)
	}
	return strings.Join(strings.Fields(sel.Text()), " ")
}

func metaValue(root *goquery.Selection, name string) string {
	sel := root.Find(fmt.Sprintf(`meta[name=%q], meta[property=%q]`, name, name)).First()
	return selectionValue(sel, "content")
}

func resolve(base *url.URL, ref string) string {
	if base == nil {
		return ref
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(parsed).String()
}

func buildPageURL(base, param string, page int) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid roundup url %s: %w", base, err)
	}
	if param == "" || page <= 1 {
		return parsed.String(), nil
	}

	query := parsed.Query()
	query.Set(param, strconv.Itoa(page))
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func (s *PageScanner) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
