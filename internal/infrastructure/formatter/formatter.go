package formatter

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"

	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
)

const ellipsis = "..."

var (
	blankLineRe  = regexp.MustCompile(`\n\s*\n`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	markupRe     = regexp.MustCompile(`(?s)<[a-zA-Z/!][^>]*>`)
)

// SummaryFormatter derives plain-text summaries from HTML or text bodies.
type SummaryFormatter struct {
	converter *md.Converter
	logger    *slog.Logger
}

var _ domain.SummaryFormatter = (*SummaryFormatter)(nil)

// New builds a formatter whose markdown output keeps only the text of
// links, emphasis and headings.
func New(logger *slog.Logger) *SummaryFormatter {
	converter := md.NewConverter("", true, &md.Options{EscapeMode: "disabled"})
	converter.AddRules(
		md.Rule{
			Filter: []string{"a", "strong", "b", "em", "i", "code", "span"},
			Replacement: func(content string, _ *goquery.Selection, _ *md.Options) *string {
				return md.String(content)
			},
		},
		md.Rule{
			Filter: []string{"h1", "h2", "h3", "h4", "h5", "h6"},
			Replacement: func(content string, _ *goquery.Selection, _ *md.Options) *string {
				return md.String("\n\n" + strings.TrimSpace(content) + "\n\n")
			},
		},
		md.Rule{
			Filter: []string{"img", "script", "style", "figure", "iframe"},
			Replacement: func(string, *goquery.Selection, *md.Options) *string {
				return md.String("")
			},
		},
	)
	return &SummaryFormatter{converter: converter, logger: logger}
}

// FormatSummary takes up to cfg.MaxParagraphs paragraphs of text, more if
// needed to reach cfg.MinLength, and truncates the result to cfg.MaxLength
// on a word boundary.
func (f *SummaryFormatter) FormatSummary(text string, cfg domain.SummaryConfig) string {
	paragraphs := f.paragraphs(text)
	if len(paragraphs) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range paragraphs {
		if i >= cfg.MaxParagraphs && b.Len() >= cfg.MinLength {
			break
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(p)
		if cfg.MaxLength > 0 && b.Len() >= cfg.MaxLength {
			break
		}
	}
	return Truncate(b.String(), cfg.MaxLength)
}

func (f *SummaryFormatter) paragraphs(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if markupRe.MatchString(text) {
		if converted, err := f.converter.ConvertString(text); err != nil {
			f.debug("convert summary html", "error", err)
			text = stripTags(text)
		} else {
			text = converted
		}
	}

	var out []string
	for _, p := range blankLineRe.Split(text, -1) {
		if p = collapse(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Truncate shortens s to at most max bytes, cutting on the last space and
// appending an ellipsis. A non-positive max leaves s unchanged.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return strings.TrimSpace(validPrefix(s[:max]))
	}
	cut := s[:max-len(ellipsis)]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(validPrefix(cut), " ,;:.") + ellipsis
}

// validPrefix drops a rune split by a byte cut.
func validPrefix(s string) string {
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func stripTags(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return markupRe.ReplaceAllString(s, " ")
	}
	var parts []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		parts = append(parts, p.Text())
	})
	if len(parts) == 0 {
		return doc.Text()
	}
	return strings.Join(parts, "\n\n")
}

func (f *SummaryFormatter) debug(msg string, args ...interface{}) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}
