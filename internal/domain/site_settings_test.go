package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func item(t ContentType, status ContentStatus, published time.Time) *Content {
	return &Content{Item: Item{Type: t, Status: status, PublishedDate: published}}
}

func TestContentSiteSettingsSetContent(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		items    []*Content
		count    int
		deployed bool
		last     time.Time
	}{
		{
			name:     "all deployed",
			items:    []*Content{item(TypePost, StatusDeployed, d1), item(TypePost, StatusDeployed, d2)},
			count:    2,
			deployed: true,
			last:     d2,
		},
		{
			name:     "one not deployed",
			items:    []*Content{item(TypePost, StatusDeployed, d2), item(TypePost, StatusNew, d1)},
			count:    2,
			deployed: false,
			last:     d2,
		},
		{
			name:     "empty",
			items:    nil,
			count:    0,
			deployed: false,
		},
		{
			name:     "skipped items are not counted",
			items:    []*Content{item(TypePost, StatusSkipped, d3), item(TypePost, StatusDeployed, d1)},
			count:    1,
			deployed: true,
			last:     d1,
		},
		{
			name:     "only skipped",
			items:    []*Content{item(TypePost, StatusSkipped, d3)},
			count:    0,
			deployed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewContentSiteSettings("ops", "acme", TypePost)
			s.SetContent(tt.items)
			assert.Equal(t, tt.count, s.Count)
			assert.Equal(t, tt.deployed, s.Deployed)
			assert.Equal(t, tt.last, s.LastPublished)
		})
	}
}

func TestContentSiteSettingsAddRemove(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	deployed := item(TypePost, StatusDeployed, d2)
	s := NewContentSiteSettings("ops", "acme", TypePost)
	s.SetContent([]*Content{deployed})
	assert.True(t, s.Deployed)

	s.AddItem(item(TypePost, StatusNew, d1))
	assert.Equal(t, 2, s.Count)
	assert.False(t, s.Deployed)
	assert.Equal(t, d2, s.LastPublished, "last published never moves back")

	s.Deployed = true
	s.RemoveItem(item(TypePost, StatusNew, d1))
	assert.Equal(t, 1, s.Count)
	assert.True(t, s.Deployed)

	s.RemoveItem(deployed)
	assert.Equal(t, 0, s.Count)
	assert.False(t, s.Deployed)

	s.RemoveItem(deployed)
	assert.Equal(t, 0, s.Count)
}

func TestContentSiteSettingsFields(t *testing.T) {
	s := NewContentSiteSettings("ops", "acme", TypeWhitePaper)
	s.AddItem(item(TypeWhitePaper, StatusNew, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)))

	f := s.Fields()
	assert.Equal(t, "White Paper", f[FieldType])
	assert.Equal(t, "2024-05-06T07:08:09Z", f[FieldPublishedDate])
	assert.Equal(t, "1", f[FieldCount])
	assert.Equal(t, "0", f[FieldDeployed])
}

func TestOrganisationSummary(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	o := NewOrganisationSummary("ops", "acme", "Acme Inc")

	assert.False(t, o.IsDeployed())

	o.SetContent([]*Content{
		item(TypePost, StatusDeployed, d),
		item(TypeVideo, StatusDeployed, d),
		item(TypeVideo, StatusSkipped, d),
	})
	assert.Equal(t, 2, o.ItemCount())
	assert.True(t, o.IsDeployed())
	assert.Equal(t, []ContentType{TypePost, TypeVideo}, o.Types())

	videos := o.TypeFields(TypeVideo)
	assert.Equal(t, "Acme Inc", videos[FieldOrganisation])
	assert.Equal(t, "Video", videos[FieldType])
	assert.Equal(t, "1", videos[FieldCount])
	assert.Equal(t, "1", videos[FieldDeployed])

	o.AddItem(item(TypeTool, StatusNew, d))
	assert.Equal(t, 3, o.ItemCount())
	assert.False(t, o.IsDeployed())

	o.SetContent([]*Content{item(TypePost, StatusDeployed, d)})
	assert.Equal(t, 1, o.ItemCount())
	assert.Equal(t, 0, o.Settings(TypeVideo).Count)
	assert.True(t, o.IsDeployed())
}
