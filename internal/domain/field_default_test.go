package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFieldDefaults(t *testing.T) {
	defaults := []FieldDefault{
		{Name: FieldCreatedBy, Value: "editor"},
		{Code: "acme", Name: FieldLinkText, Value: "Read more"},
		{Code: "other", Name: FieldSummary, Value: "not for acme"},
		{SiteID: "ops", Name: FieldFeatured, Value: "1"},
		{Name: FieldVideoID, Value: "ignored on posts"},
		{Name: FieldTitle, Value: "kept"},
	}

	c, err := NewContent(TypePost, acme, ContentDefaults{}, nil)
	require.NoError(t, err)
	c.Title = "Existing"

	require.NoError(t, ApplyFieldDefaults(c, defaults))
	assert.Equal(t, "editor", c.CreatedBy)
	assert.Equal(t, "Read more", c.LinkText)
	assert.Empty(t, c.Summary)
	assert.True(t, c.Featured)
	assert.Empty(t, c.VideoID)
	assert.Equal(t, "Existing", c.Title)
}

func TestApplyFieldDefaultsInvalidValue(t *testing.T) {
	c := &Content{Item: Item{Type: TypePost}}
	err := ApplyFieldDefaults(c, []FieldDefault{{Name: FieldPromote, Value: "sometimes"}})
	assert.ErrorIs(t, err, ErrInvalidValue)
}
