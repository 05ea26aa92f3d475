package domain

import (
	"errors"
	"fmt"
)

// SummaryConfig bounds the summaries derived from item descriptions.
type SummaryConfig struct {
	MaxLength     int
	MinLength     int
	MaxParagraphs int
}

// DefaultSummaryConfig is used for every attribute a config leaves out.
func DefaultSummaryConfig() SummaryConfig {
	return SummaryConfig{MaxLength: 500, MinLength: 0, MaxParagraphs: 1}
}

// ParseSummaryConfig builds a SummaryConfig from max-length, min-length and
// max-paragraphs.
func ParseSummaryConfig(attrs Attributes) (SummaryConfig, error) {
	cfg := DefaultSummaryConfig()
	var errs []error

	if v, ok, err := attrs.Int("max-length"); err != nil {
		errs = append(errs, err)
	} else if ok {
		cfg.MaxLength = v
	}
	if v, ok, err := attrs.Int("min-length"); err != nil {
		errs = append(errs, err)
	} else if ok {
		cfg.MinLength = v
	}
	if v, ok, err := attrs.Int("max-paragraphs"); err != nil {
		errs = append(errs, err)
	} else if ok {
		cfg.MaxParagraphs = v
	}

	if len(errs) == 0 {
		errs = append(errs, cfg.validate()...)
	}
	return cfg, errors.Join(errs...)
}

func (c SummaryConfig) validate() []error {
	var errs []error
	if c.MaxLength <= 0 {
		errs = append(errs, rangeError("max-length", "must be positive"))
	}
	if c.MinLength < 0 || c.MinLength > c.MaxLength {
		errs = append(errs, rangeError("min-length", "must be between 0 and max-length"))
	}
	if c.MaxParagraphs < 1 {
		errs = append(errs, rangeError("max-paragraphs", "must be at least 1"))
	}
	return errs
}

func rangeError(field, msg string) error {
	return &FieldError{Field: field, Err: fmt.Errorf("%w: %s", ErrInvalidAttribute, msg)}
}

// PostConfig holds the per-organisation settings for new posts.
type PostConfig struct {
	Tags       []string
	Promote    bool
	Newsletter bool
	Featured   bool
	Sponsored  bool
	TitleCase  ContentFieldCase
	CreatedBy  string
	Summary    SummaryConfig
}

// ParsePostConfig builds a PostConfig from its attribute map.
func ParsePostConfig(attrs Attributes) (PostConfig, error) {
	cfg := PostConfig{TitleCase: FieldCaseNone, Summary: DefaultSummaryConfig()}
	p := attrParser{attrs: attrs}

	p.stringList("tags", &cfg.Tags)
	p.flag("promote", &cfg.Promote)
	p.flag("newsletter", &cfg.Newsletter)
	p.flag("featured", &cfg.Featured)
	p.flag("sponsored", &cfg.Sponsored)
	p.str("created-by", &cfg.CreatedBy)
	p.fieldCase("title-case", &cfg.TitleCase)
	p.summary("summary", &cfg.Summary)

	return cfg, p.err()
}

// Defaults turns the config into the seed values of a new post.
func (c PostConfig) Defaults() ContentDefaults {
	return ContentDefaults{
		Promoted:   c.Promote,
		Newsletter: c.Newsletter,
		Featured:   c.Featured,
		Sponsored:  c.Sponsored,
		Tags:       c.Tags,
		TitleCase:  c.TitleCase,
		CreatedBy:  c.CreatedBy,
	}.Clone()
}

// ToolConfig holds the per-organisation settings for new tools.
type ToolConfig struct {
	Tags         []string
	Features     []string
	Promote      bool
	Pricing      string
	RepoProvider RepoProvider
	CreatedBy    string
	Summary      SummaryConfig
}

// ParseToolConfig builds a ToolConfig from its attribute map.
func ParseToolConfig(attrs Attributes) (ToolConfig, error) {
	cfg := ToolConfig{Summary: DefaultSummaryConfig()}
	p := attrParser{attrs: attrs}

	p.stringList("tags", &cfg.Tags)
	p.stringList("features", &cfg.Features)
	p.flag("promote", &cfg.Promote)
	p.str("pricing", &cfg.Pricing)
	p.str("created-by", &cfg.CreatedBy)
	p.repoProvider("repo-provider", &cfg.RepoProvider)
	p.summary("summary", &cfg.Summary)

	return cfg, p.err()
}

// Defaults turns the config into the seed values of a new tool.
func (c ToolConfig) Defaults() ContentDefaults {
	return ContentDefaults{
		Promoted:  c.Promote,
		Tags:      c.Tags,
		Features:  c.Features,
		Pricing:   c.Pricing,
		Provider:  c.RepoProvider,
		CreatedBy: c.CreatedBy,
	}.Clone()
}

// attrParser accumulates errors while reading attributes into a struct.
type attrParser struct {
	attrs Attributes
	errs  []error
}

func (p *attrParser) err() error { return errors.Join(p.errs...) }

func (p *attrParser) str(key string, dst *string) {
	if v, ok, err := p.attrs.String(key); err != nil {
		p.errs = append(p.errs, err)
	} else if ok {
		*dst = v
	}
}

func (p *attrParser) flag(key string, dst *bool) {
	if v, ok, err := p.attrs.Bool(key); err != nil {
		p.errs = append(p.errs, err)
	} else if ok {
		*dst = v
	}
}

func (p *attrParser) stringList(key string, dst *[]string) {
	if v, ok, err := p.attrs.StringList(key); err != nil {
		p.errs = append(p.errs, err)
	} else if ok {
		*dst = v
	}
}

func (p *attrParser) fieldCase(key string, dst *ContentFieldCase) {
	var s string
	p.str(key, &s)
	if s == "" {
		return
	}
	fc, ok := fieldCases.lookup(s)
	if !ok {
		p.errs = append(p.errs, &FieldError{Field: key, Err: fmt.Errorf("%w: unknown case %q", ErrInvalidAttribute, s)})
		return
	}
	*dst = fc
}

func (p *attrParser) repoProvider(key string, dst *RepoProvider) {
	var s string
	p.str(key, &s)
	if s == "" {
		return
	}
	rp, ok := repoProviders.lookup(s)
	if !ok {
		p.errs = append(p.errs, &FieldError{Field: key, Err: fmt.Errorf("%w: unknown provider %q", ErrInvalidAttribute, s)})
		return
	}
	*dst = rp
}

func (p *attrParser) summary(key string, dst *SummaryConfig) {
	m, ok, err := p.attrs.Map(key)
	if err != nil {
		p.errs = append(p.errs, err)
		return
	}
	if !ok {
		return
	}
	cfg, err := ParseSummaryConfig(m)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = cfg
}
