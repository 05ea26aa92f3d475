package domain

import "time"

// Deployable is what the site aggregates need to know about an item.
type Deployable interface {
	IsDeployed() bool
	IsSkipped() bool
	PublishedAt() time.Time
}

// ContentSiteSettings tracks the items of one content type for one
// organisation site.
//
// Deployed is true only when the aggregate holds at least one item and
// every counted item is deployed.
type ContentSiteSettings struct {
	SiteID        string
	Code          string
	Type          ContentType
	Count         int
	Deployed      bool
	LastPublished time.Time
}

// NewContentSiteSettings creates an empty aggregate.
func NewContentSiteSettings(siteID, code string, t ContentType) *ContentSiteSettings {
	return &ContentSiteSettings{SiteID: siteID, Code: code, Type: t}
}

// SetContent recomputes the aggregate from the full list of items.
// Skipped items are not counted.
func (s *ContentSiteSettings) SetContent(items []*Content) {
	s.Count = 0
	s.Deployed = true
	s.LastPublished = time.Time{}

	for _, item := range items {
		if item == nil || item.IsSkipped() {
			continue
		}
		s.advance(item.PublishedAt())
		s.Count++
		if !item.IsDeployed() {
			s.Deployed = false
		}
	}

	if s.Count == 0 {
		s.Deployed = false
	}
}

// AddItem counts a new item; the site needs deploying again.
func (s *ContentSiteSettings) AddItem(item Deployable) {
	s.Count++
	s.Deployed = false
	s.advance(item.PublishedAt())
}

// RemoveItem uncounts an item. Removing a deployed item means the site
// needs deploying again.
func (s *ContentSiteSettings) RemoveItem(item Deployable) {
	if s.Count > 0 {
		s.Count--
	}
	if item.IsDeployed() || s.Count == 0 {
		s.Deployed = false
	}
}

func (s *ContentSiteSettings) advance(t time.Time) {
	if t.After(s.LastPublished) {
		s.LastPublished = t
	}
}

// Fields projects the aggregate for templates.
func (s *ContentSiteSettings) Fields() FieldMap {
	m := FieldMap{}
	m.Put(FieldSite, s.SiteID)
	m.Put(FieldCode, s.Code)
	m.Put(FieldType, s.Type.Value())
	m.Put(FieldPublishedDate, FormatUTC(s.LastPublished, DateTimeLayout))
	m.PutInt(FieldCount, int64(s.Count))
	m.PutBool(FieldDeployed, s.Deployed)
	return m
}
