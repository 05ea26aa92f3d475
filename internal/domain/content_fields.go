package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// fieldSpec binds a FieldName to its accessors on Content.
type fieldSpec struct {
	get    func(*Content) string
	set    func(*Content, string) error
	doc    func(*Content) interface{}
	load   func(*Content, Document, FieldName) error
	always bool
}

// fieldGroup lists the fields carried with a capability; a zero capability
// means every type carries the group.
type fieldGroup struct {
	capability Capability
	names      []FieldName
}

var fieldGroups = []fieldGroup{
	{0, []FieldName{
		FieldID, FieldUUID, FieldSite, FieldCode, FieldType, FieldTitle,
		FieldSummary, FieldDescription, FieldPublishedDate, FieldPublished,
		FieldStatus, FieldArchiveReason, FieldSource, FieldCreatedBy,
	}},
	{0, []FieldName{FieldPromote, FieldNewsletter, FieldFeatured, FieldSponsored}},
	{HasOrganisationLink, []FieldName{FieldOrganisation, FieldEmail, FieldTags, FieldRevisedTitle}},
	{HasURLFields, []FieldName{FieldURL, FieldLinkText, FieldCanonicalURL, FieldFeatures}},
	{HasImageFields, []FieldName{
		FieldImage, FieldImageText, FieldImageTitle, FieldImageSource,
		FieldThumbnail, FieldThumbnailText, FieldThumbTitle,
	}},
	{HasAuthorFields, []FieldName{FieldAuthor, FieldAuthorLink}},
	{HasVideoFields, []FieldName{FieldVideoID, FieldVideoType, FieldProvider, FieldChannelID, FieldDuration}},
	{HasToolFields, []FieldName{FieldPricing, FieldRepo, FieldRepoProvider, FieldRepoURL, FieldWebsite}},
	{HasPublicationFields, []FieldName{FieldCreator, FieldCreatorEmail}},
}

func fieldNamesFor(caps Capability) []FieldName {
	var names []FieldName
	for _, g := range fieldGroups {
		if caps.Has(g.capability) {
			names = append(names, g.names...)
		}
	}
	return names
}

func carries(caps Capability, name FieldName) bool {
	for _, g := range fieldGroups {
		if !caps.Has(g.capability) {
			continue
		}
		for _, n := range g.names {
			if n == name {
				return true
			}
		}
	}
	return false
}

var contentFields = map[FieldName]fieldSpec{
	FieldID:   intSpec(func(c *Content) *int64 { return &c.ID }),
	FieldUUID: stringSpec(func(c *Content) *string { return &c.UUID }),
	FieldSite: stringSpec(func(c *Content) *string { return &c.SiteID }),
	FieldCode: stringSpec(func(c *Content) *string { return &c.Code }),
	FieldType: {
		get:    func(c *Content) string { return c.Type.Value() },
		doc:    func(c *Content) interface{} { return string(c.Type) },
		always: true,
	},
	FieldTitle:         stringSpec(func(c *Content) *string { return &c.Title }),
	FieldSummary:       stringSpec(func(c *Content) *string { return &c.Summary }),
	FieldDescription:   stringSpec(func(c *Content) *string { return &c.Description }),
	FieldPublishedDate: timeSpec(func(c *Content) *time.Time { return &c.PublishedDate }),
	FieldPublished:     boolSpec(func(c *Content) *bool { return &c.Published }),
	FieldStatus:        enumSpec(contentStatuses, func(c *Content) *ContentStatus { return &c.Status }),
	FieldArchiveReason: enumSpec(archiveReasons, func(c *Content) *ArchiveReason { return &c.ArchiveReason }),
	FieldSource:        enumSpec(contentSources, func(c *Content) *ContentSource { return &c.Source }),
	FieldCreatedBy:     stringSpec(func(c *Content) *string { return &c.CreatedBy }),

	FieldPromote:    boolSpec(func(c *Content) *bool { return &c.Promoted }),
	FieldNewsletter: boolSpec(func(c *Content) *bool { return &c.Newsletter }),
	FieldFeatured:   boolSpec(func(c *Content) *bool { return &c.Featured }),
	FieldSponsored:  boolSpec(func(c *Content) *bool { return &c.Sponsored }),

	FieldOrganisation: stringSpec(func(c *Content) *string { return &c.Organisation }),
	FieldEmail:        stringSpec(func(c *Content) *string { return &c.Email }),
	FieldTags:         listSpec(func(c *Content) *string { return &c.Tags }),
	FieldRevisedTitle: stringSpec(func(c *Content) *string { return &c.RevisedTitle }),

	FieldURL:          stringSpec(func(c *Content) *string { return &c.URL }),
	FieldLinkText:     stringSpec(func(c *Content) *string { return &c.LinkText }),
	FieldCanonicalURL: stringSpec(func(c *Content) *string { return &c.CanonicalURL }),
	FieldFeatures:     listSpec(func(c *Content) *string { return &c.Features }),

	FieldImage:         stringSpec(func(c *Content) *string { return &c.Image }),
	FieldImageText:     stringSpec(func(c *Content) *string { return &c.ImageText }),
	FieldImageTitle:    stringSpec(func(c *Content) *string { return &c.ImageTitle }),
	FieldImageSource:   stringSpec(func(c *Content) *string { return &c.ImageSource }),
	FieldThumbnail:     stringSpec(func(c *Content) *string { return &c.Thumbnail }),
	FieldThumbnailText: stringSpec(func(c *Content) *string { return &c.ThumbnailText }),
	FieldThumbTitle:    stringSpec(func(c *Content) *string { return &c.ThumbnailTitle }),

	FieldAuthor:     stringSpec(func(c *Content) *string { return &c.Author }),
	FieldAuthorLink: stringSpec(func(c *Content) *string { return &c.AuthorLink }),

	FieldVideoID:   stringSpec(func(c *Content) *string { return &c.VideoID }),
	FieldVideoType: enumSpec(videoTypes, func(c *Content) *VideoType { return &c.VideoType }),
	FieldProvider:  stringSpec(func(c *Content) *string { return &c.Provider }),
	FieldChannelID: stringSpec(func(c *Content) *string { return &c.ChannelID }),
	FieldDuration:  intSpec(func(c *Content) *int64 { return &c.Duration }),

	FieldPricing:      stringSpec(func(c *Content) *string { return &c.Pricing }),
	FieldRepo:         stringSpec(func(c *Content) *string { return &c.Repo }),
	FieldRepoProvider: enumSpec(repoProviders, func(c *Content) *RepoProvider { return &c.RepoProvider }),
	FieldRepoURL: {
		get: func(c *Content) string { return c.RepoLink() },
	},
	FieldWebsite: stringSpec(func(c *Content) *string { return &c.Website }),

	FieldCreator:      stringSpec(func(c *Content) *string { return &c.Creator }),
	FieldCreatorEmail: stringSpec(func(c *Content) *string { return &c.CreatorEmail }),
}

func stringSpec(p func(*Content) *string) fieldSpec {
	return fieldSpec{
		get: func(c *Content) string { return *p(c) },
		set: func(c *Content, v string) error {
			*p(c) = v
			return nil
		},
		doc: func(c *Content) interface{} { return *p(c) },
		load: func(c *Content, d Document, n FieldName) error {
			*p(c) = d.OptString(n)
			return nil
		},
	}
}

// listSpec is a stringSpec whose entries are trimmed on assignment.
func listSpec(p func(*Content) *string) fieldSpec {
	spec := stringSpec(p)
	spec.set = func(c *Content, v string) error {
		*p(c) = normaliseList(v)
		return nil
	}
	return spec
}

func boolSpec(p func(*Content) *bool) fieldSpec {
	return fieldSpec{
		get: func(c *Content) string { return boolField(*p(c)) },
		set: func(c *Content, v string) error {
			b, err := parseFlag(v)
			if err != nil {
				return err
			}
			*p(c) = b
			return nil
		},
		doc: func(c *Content) interface{} { return *p(c) },
		load: func(c *Content, d Document, n FieldName) error {
			*p(c) = d.OptBool(n)
			return nil
		},
		always: true,
	}
}

func intSpec(p func(*Content) *int64) fieldSpec {
	return fieldSpec{
		get: func(c *Content) string { return strconv.FormatInt(*p(c), 10) },
		set: func(c *Content, v string) error {
			n, err := parseInt(v)
			if err != nil {
				return err
			}
			*p(c) = n
			return nil
		},
		doc: func(c *Content) interface{} { return *p(c) },
		load: func(c *Content, d Document, n FieldName) error {
			*p(c) = d.OptInt(n)
			return nil
		},
	}
}

func timeSpec(p func(*Content) *time.Time) fieldSpec {
	return fieldSpec{
		get: func(c *Content) string { return FormatUTC(*p(c), DateTimeLayout) },
		set: func(c *Content, v string) error {
			t, err := parseDate(v)
			if err != nil {
				return err
			}
			*p(c) = t
			return nil
		},
		doc: func(c *Content) interface{} { return *p(c) },
		load: func(c *Content, d Document, n FieldName) error {
			t, err := d.OptTime(n)
			if err != nil {
				return err
			}
			*p(c) = t
			return nil
		},
	}
}

// enumSpec renders display values on templates and persists codes.
func enumSpec[T ~string](v vocabulary[T], p func(*Content) *T) fieldSpec {
	return fieldSpec{
		get: func(c *Content) string { return v.value(*p(c)) },
		set: func(c *Content, s string) error {
			if s == "" {
				*p(c) = ""
				return nil
			}
			code, ok := v.parse(s)
			if !ok {
				return fmt.Errorf("%w: %q", ErrInvalidValue, s)
			}
			*p(c) = code
			return nil
		},
		doc: func(c *Content) interface{} { return string(*p(c)) },
		load: func(c *Content, d Document, n FieldName) error {
			s := d.OptString(n)
			if s == "" {
				return nil
			}
			code, ok := v.parse(s)
			if !ok {
				return fmt.Errorf("%w: %q", ErrInvalidValue, s)
			}
			*p(c) = code
			return nil
		},
	}
}

// parseFlag accepts 1/0, true/false, yes/no and y/n in any case; "" is false.
func parseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "n":
		return false, nil
	case "1", "true", "yes", "y":
		return true, nil
	default:
		return false, fmt.Errorf("%w: flag %q", ErrInvalidValue, s)
	}
}

func parseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", ErrInvalidValue, s)
	}
	return n, nil
}

// parseDate reads the many date forms found in sheets and pages as UTC.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// normaliseList trims every entry of a delimited list and drops empties.
func normaliseList(s string) string {
	parts := SplitList(s)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return JoinList(out)
}
