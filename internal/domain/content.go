package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// nowFunc is the clock used by Init and NewContent.
var nowFunc = time.Now

// Item is the part of a content item every type carries.
type Item struct {
	Type          ContentType
	SiteID        string
	Code          string
	ID            int64
	UUID          string
	Title         string
	Summary       string
	Description   string
	Published     bool
	PublishedDate time.Time
	Status        ContentStatus
	ArchiveReason ArchiveReason
	Source        ContentSource
	CreatedBy     string
}

// Flags are independent editorial switches; none implies another.
type Flags struct {
	Promoted   bool
	Newsletter bool
	Featured   bool
	Sponsored  bool
}

// OrganisationLink ties an item to the publishing organisation.
type OrganisationLink struct {
	Organisation string
	Email        string
	Tags         string
	RevisedTitle string
}

// LinkFields describe a fetched web resource.
type LinkFields struct {
	URL          string
	LinkText     string
	CanonicalURL string
	Features     string
}

// ImageFields reference the item's image and thumbnail.
type ImageFields struct {
	Image          string
	ImageText      string
	ImageTitle     string
	ImageSource    string
	Thumbnail      string
	ThumbnailText  string
	ThumbnailTitle string
}

// AuthorFields credit the person behind a post or video.
type AuthorFields struct {
	Author     string
	AuthorLink string
}

// VideoFields identify a hosted video.
type VideoFields struct {
	VideoID   string
	VideoType VideoType
	Provider  string
	ChannelID string
	Duration  int64
}

// ToolFields describe a software tool listing.
type ToolFields struct {
	Pricing      string
	Repo         string
	RepoProvider RepoProvider
	Website      string
}

// PublicationFields credit the creator of an e-book or white paper.
type PublicationFields struct {
	Creator      string
	CreatorEmail string
}

// Content is a single content item of any type. Which field groups are
// meaningful is decided by Type.Capabilities(); the other groups stay
// zero and are neither serialized nor projected.
type Content struct {
	Item
	Flags
	OrganisationLink
	LinkFields
	ImageFields
	AuthorFields
	VideoFields
	ToolFields
	PublicationFields
}

// Organisation is the resolved organisation site an item belongs to.
type Organisation struct {
	SiteID  string
	Code    string
	Name    string
	Email   string
	Website string
}

// ContentDefaults seed a new item for an organisation.
type ContentDefaults struct {
	Promoted   bool
	Newsletter bool
	Featured   bool
	Sponsored  bool
	Tags       []string
	Features   []string
	Pricing    string
	Provider   RepoProvider
	TitleCase  ContentFieldCase
	CreatedBy  string
	Source     ContentSource
}

// Clone returns a copy whose tag and feature lists are not shared with d.
func (d ContentDefaults) Clone() ContentDefaults {
	var out ContentDefaults
	if err := copier.CopyWithOption(&out, &d, copier.Option{DeepCopy: true}); err != nil {
		out = d
		out.Tags = append([]string(nil), d.Tags...)
		out.Features = append([]string(nil), d.Features...)
	}
	return out
}

// SummaryFormatter derives a plain summary from a body of text.
type SummaryFormatter interface {
	FormatSummary(text string, cfg SummaryConfig) string
}

// NewContent creates an item of type t for org with the given defaults and
// field defaults applied.
func NewContent(t ContentType, org Organisation, defaults ContentDefaults, fields []FieldDefault) (*Content, error) {
	if _, ok := ContentTypeFromCode(string(t)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContentType, t)
	}

	c := &Content{
		Item: Item{
			Type:          t,
			SiteID:        org.SiteID,
			Code:          org.Code,
			PublishedDate: nowFunc().UTC().Truncate(time.Second),
			Status:        StatusNew,
			Source:        defaults.Source,
			CreatedBy:     defaults.CreatedBy,
		},
		Flags: Flags{
			Promoted:   defaults.Promoted,
			Newsletter: defaults.Newsletter,
			Featured:   defaults.Featured,
			Sponsored:  defaults.Sponsored,
		},
	}
	if c.Source == "" {
		c.Source = SourceManual
	}

	c.Organisation = org.Name
	c.Email = org.Email
	c.SetTagList(defaults.Tags)

	if c.Has(HasURLFields) {
		c.SetFeatureList(defaults.Features)
	}
	if c.Has(HasToolFields) {
		c.Pricing = defaults.Pricing
		c.RepoProvider = defaults.Provider
		c.Website = org.Website
	}

	if err := ApplyFieldDefaults(c, fields); err != nil {
		return nil, err
	}
	return c, nil
}

// FillDefaults assigns the defaults to the fields c leaves empty. Flags are
// left alone.
func (c *Content) FillDefaults(d ContentDefaults) {
	if c.Tags == "" {
		c.SetTagList(d.Tags)
	}
	if c.CreatedBy == "" {
		c.CreatedBy = d.CreatedBy
	}
	if c.Has(HasURLFields) && c.Features == "" {
		c.SetFeatureList(d.Features)
	}
	if c.Has(HasToolFields) {
		if c.Pricing == "" {
			c.Pricing = d.Pricing
		}
		if c.RepoProvider == "" {
			c.RepoProvider = d.Provider
		}
	}
}

// Capabilities returns the field groups carried by the item's type.
func (c *Content) Capabilities() Capability {
	return c.Type.Capabilities()
}

// Has reports whether the item carries the capability.
func (c *Content) Has(want Capability) bool {
	return c.Capabilities().Has(want)
}

func (c *Content) IsDeployed() bool { return c.Status == StatusDeployed }

func (c *Content) IsSkipped() bool { return c.Status == StatusSkipped }

func (c *Content) IsArchived() bool { return c.Status == StatusArchived }

// PublishedAt returns the published date.
func (c *Content) PublishedAt() time.Time { return c.PublishedDate }

// Archive marks the item archived for reason.
func (c *Content) Archive(reason ArchiveReason) {
	c.Status = StatusArchived
	c.ArchiveReason = reason
}

// TagList returns the tags as a list.
func (c *Content) TagList() []string { return SplitList(c.Tags) }

// SetTagList stores the tags.
func (c *Content) SetTagList(tags []string) { c.Tags = JoinList(tags) }

// FeatureList returns the features as a list.
func (c *Content) FeatureList() []string { return SplitList(c.Features) }

// SetFeatureList stores the features.
func (c *Content) SetFeatureList(features []string) { c.Features = JoinList(features) }

// RepoLink expands the tool repository into a URL.
func (c *Content) RepoLink() string {
	return c.RepoProvider.URL(c.Repo)
}

// DisplayTitle prefers the revised title when one is set.
func (c *Content) DisplayTitle() string {
	if c.RevisedTitle != "" {
		return c.RevisedTitle
	}
	return c.Title
}

// Init fills the identity and lifecycle fields a new item is missing.
func (c *Content) Init() {
	if c.UUID == "" {
		c.UUID = uuid.NewString()
	}
	if c.PublishedDate.IsZero() {
		c.PublishedDate = nowFunc().UTC().Truncate(time.Second)
	}
	if c.Status == "" {
		c.Status = StatusNew
	}
	if c.Status != StatusArchived && c.ArchiveReason == "" {
		c.ArchiveReason = ArchiveReasonNone
	}
}

// Prepare normalises text fields and derives a missing summary from the
// description. A nil formatter leaves the summary alone.
func (c *Content) Prepare(f SummaryFormatter, cfg SummaryConfig) {
	c.Title = strings.TrimSpace(c.Title)
	c.Summary = strings.TrimSpace(c.Summary)
	c.Description = strings.TrimSpace(c.Description)
	c.RevisedTitle = strings.TrimSpace(c.RevisedTitle)

	if c.Summary == "" && c.Description != "" && f != nil {
		c.Summary = f.FormatSummary(c.Description, cfg)
	}

	if c.Has(HasURLFields) {
		c.URL = strings.TrimSpace(c.URL)
		c.CanonicalURL = strings.TrimSpace(c.CanonicalURL)
	}
}

// ApplyCase converts the named field to the given case.
func (c *Content) ApplyCase(name FieldName, fc ContentFieldCase) error {
	v, ok := c.Field(name)
	if !ok {
		return fmt.Errorf("%w: %s on %s", ErrUnsupportedField, name.Value(), c.Type.Value())
	}
	return c.SetField(name, fc.Apply(v))
}

// Clone returns a copy owned by the caller. Content holds only values and
// lists stored as strings, so a struct copy is deep.
func (c *Content) Clone() *Content {
	cp := *c
	return &cp
}

// FieldNames lists the fields the item carries, in a stable order.
func (c *Content) FieldNames() []FieldName {
	return fieldNamesFor(c.Capabilities())
}

// Field returns the template form of a field and whether the item carries it.
func (c *Content) Field(name FieldName) (string, bool) {
	if !carries(c.Capabilities(), name) {
		return "", false
	}
	return contentFields[name].get(c), true
}

// SetField assigns a field from its string form.
func (c *Content) SetField(name FieldName, value string) error {
	if !carries(c.Capabilities(), name) {
		return fmt.Errorf("%w: %s on %s", ErrUnsupportedField, name.Value(), c.Type.Value())
	}
	spec := contentFields[name]
	if spec.set == nil {
		return fmt.Errorf("%w: %s is read-only", ErrUnsupportedField, name.Value())
	}
	if err := spec.set(c, value); err != nil {
		return fmt.Errorf("field %s: %w", name.Value(), err)
	}
	return nil
}

// Fields projects the item onto its template field map. Every carried field
// is present; booleans render as "1"/"0".
func (c *Content) Fields() FieldMap {
	m := FieldMap{}
	for _, name := range c.FieldNames() {
		m[name] = contentFields[name].get(c)
	}
	return m
}

// ToJSON builds the persisted document. Optional values are written only
// when set; booleans are always written.
func (c *Content) ToJSON() Document {
	doc := Document{}
	for _, name := range c.FieldNames() {
		spec := contentFields[name]
		if spec.doc == nil {
			continue
		}
		if spec.always {
			doc.Put(name, spec.doc(c))
		} else {
			doc.PutOpt(name, spec.doc(c))
		}
	}
	return doc
}

// ContentFromJSON rebuilds an item from its persisted document.
func ContentFromJSON(doc Document) (*Content, error) {
	raw := doc.OptString(FieldType)
	t, ok := ContentTypeFromCode(raw)
	if !ok {
		if t, ok = ContentTypeFromValue(raw); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownContentType, raw)
		}
	}

	c := &Content{Item: Item{Type: t}}
	for _, name := range c.FieldNames() {
		spec := contentFields[name]
		if spec.load == nil || !doc.Has(name) {
			continue
		}
		if err := spec.load(c, doc, name); err != nil {
			return nil, fmt.Errorf("field %s: %w", name.Value(), err)
		}
	}
	return c, nil
}

func (c *Content) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToJSON())
}

func (c *Content) UnmarshalJSON(data []byte) error {
	doc, err := ParseDocument(data)
	if err != nil {
		return err
	}
	parsed, err := ContentFromJSON(doc)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}
