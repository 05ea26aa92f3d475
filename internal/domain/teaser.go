package domain

import (
	"strconv"
	"time"
)

// ArticleTeaser is the list view of any content item.
type ArticleTeaser struct {
	Type          ContentType
	SiteID        string
	Code          string
	ID            int64
	Title         string
	Summary       string
	URL           string
	Image         string
	PublishedDate time.Time
}

// Teaser builds the list view of the item.
func (c *Content) Teaser() ArticleTeaser {
	t := ArticleTeaser{
		Type:          c.Type,
		SiteID:        c.SiteID,
		Code:          c.Code,
		ID:            c.ID,
		Title:         c.DisplayTitle(),
		Summary:       c.Summary,
		PublishedDate: c.PublishedDate,
	}
	if c.Has(HasURLFields) {
		t.URL = c.URL
	}
	if c.Has(HasImageFields) {
		t.Image = c.Image
		if t.Image == "" {
			t.Image = c.Thumbnail
		}
	}
	return t
}

func (t ArticleTeaser) Fields() FieldMap {
	m := FieldMap{}
	m.Put(FieldType, t.Type.Value())
	m.Put(FieldSite, t.SiteID)
	m.Put(FieldCode, t.Code)
	m.Put(FieldID, strconv.FormatInt(t.ID, 10))
	m.Put(FieldTitle, t.Title)
	m.Put(FieldSummary, t.Summary)
	m.Put(FieldURL, t.URL)
	m.Put(FieldImage, t.Image)
	m.Put(FieldPublishedDate, FormatUTC(t.PublishedDate, DateTimeLayout))
	return m
}

// NewContentFromTeaser promotes a teaser into a new item for org.
func NewContentFromTeaser(t ArticleTeaser, org Organisation) *Content {
	c := &Content{
		Item: Item{
			Type:          t.Type,
			SiteID:        org.SiteID,
			Code:          org.Code,
			Title:         t.Title,
			Summary:       t.Summary,
			PublishedDate: t.PublishedDate,
			Status:        StatusNew,
			Source:        SourceFeed,
		},
		OrganisationLink: OrganisationLink{Organisation: org.Name, Email: org.Email},
	}
	if c.Has(HasURLFields) {
		c.URL = t.URL
	}
	if c.Has(HasImageFields) {
		c.Image = t.Image
	}
	return c
}

// RoundupSummary is a crawled post listed on an organisation's blog.
type RoundupSummary struct {
	Title         string
	Summary       string
	URL           string
	Image         string
	Author        string
	AuthorLink    string
	PublishedDate time.Time
}

func (s RoundupSummary) Fields() FieldMap {
	m := FieldMap{}
	m.Put(FieldTitle, s.Title)
	m.Put(FieldSummary, s.Summary)
	m.Put(FieldURL, s.URL)
	m.Put(FieldImage, s.Image)
	m.Put(FieldAuthor, s.Author)
	m.Put(FieldAuthorLink, s.AuthorLink)
	m.Put(FieldPublishedDate, FormatUTC(s.PublishedDate, DateTimeLayout))
	return m
}

// NewPostFromSummary promotes a crawled roundup summary into a post.
func NewPostFromSummary(s RoundupSummary, org Organisation, defaults ContentDefaults) (*Content, error) {
	if defaults.Source == "" {
		defaults.Source = SourcePage
	}
	c, err := NewContent(TypePost, org, defaults, nil)
	if err != nil {
		return nil, err
	}
	c.Title = defaults.TitleCase.Apply(s.Title)
	c.Summary = s.Summary
	c.URL = s.URL
	c.CanonicalURL = s.URL
	c.Image = s.Image
	c.ImageSource = s.Image
	c.Author = s.Author
	c.AuthorLink = s.AuthorLink
	if !s.PublishedDate.IsZero() {
		c.PublishedDate = s.PublishedDate.UTC()
	}
	return c, nil
}

// VideoSummary is a video listed on a provider channel.
type VideoSummary struct {
	VideoID       string
	Title         string
	Provider      string
	ChannelID     string
	Duration      int64
	Author        string
	PublishedDate time.Time
}

func (s VideoSummary) Fields() FieldMap {
	m := FieldMap{}
	m.Put(FieldVideoID, s.VideoID)
	m.Put(FieldTitle, s.Title)
	m.Put(FieldProvider, s.Provider)
	m.Put(FieldChannelID, s.ChannelID)
	m.PutInt(FieldDuration, s.Duration)
	m.Put(FieldAuthor, s.Author)
	m.Put(FieldPublishedDate, FormatUTC(s.PublishedDate, DateTimeLayout))
	return m
}

// VideoDetails is the full provider record of a video.
type VideoDetails struct {
	VideoSummary
	Description string
	AuthorLink  string
	Thumbnail   string
}

func (d VideoDetails) Fields() FieldMap {
	m := d.VideoSummary.Fields()
	m.Put(FieldDescription, d.Description)
	m.Put(FieldAuthorLink, d.AuthorLink)
	m.Put(FieldThumbnail, d.Thumbnail)
	return m
}

// NewVideoFromDetails promotes provider details into a video, guessing its
// type from the title and description.
func NewVideoFromDetails(d VideoDetails, org Organisation, defaults ContentDefaults, minWebinarSecs int64) (*Content, error) {
	if defaults.Source == "" {
		defaults.Source = SourceAPI
	}
	c, err := NewContent(TypeVideo, org, defaults, nil)
	if err != nil {
		return nil, err
	}
	c.Title = defaults.TitleCase.Apply(d.Title)
	c.Description = d.Description
	c.VideoID = d.VideoID
	c.Provider = d.Provider
	c.ChannelID = d.ChannelID
	c.Duration = d.Duration
	c.Author = d.Author
	c.AuthorLink = d.AuthorLink
	c.Thumbnail = d.Thumbnail
	c.VideoType = GuessVideoType(d.Title+" "+d.Description, d.Duration, minWebinarSecs)
	if !d.PublishedDate.IsZero() {
		c.PublishedDate = d.PublishedDate.UTC()
	}
	return c, nil
}

// ToolSummary is a crawled tool listing.
type ToolSummary struct {
	Title        string
	Summary      string
	URL          string
	Website      string
	Pricing      string
	Repo         string
	RepoProvider RepoProvider
}

func (s ToolSummary) Fields() FieldMap {
	m := FieldMap{}
	m.Put(FieldTitle, s.Title)
	m.Put(FieldSummary, s.Summary)
	m.Put(FieldURL, s.URL)
	m.Put(FieldWebsite, s.Website)
	m.Put(FieldPricing, s.Pricing)
	m.Put(FieldRepo, s.Repo)
	m.Put(FieldRepoProvider, s.RepoProvider.Value())
	return m
}

// NewToolFromSummary promotes a crawled tool listing into a tool.
func NewToolFromSummary(s ToolSummary, org Organisation, defaults ContentDefaults) (*Content, error) {
	if defaults.Source == "" {
		defaults.Source = SourcePage
	}
	c, err := NewContent(TypeTool, org, defaults, nil)
	if err != nil {
		return nil, err
	}
	c.Title = defaults.TitleCase.Apply(s.Title)
	c.Summary = s.Summary
	c.URL = s.URL
	if s.Website != "" {
		c.Website = s.Website
	}
	if s.Pricing != "" {
		c.Pricing = s.Pricing
	}
	c.Repo = s.Repo
	if s.RepoProvider != "" {
		c.RepoProvider = s.RepoProvider
	}
	return c, nil
}
