package domain

import (
	"strings"

	"github.com/pkg/errors"
)

// rowLayout is the positional column order of a sheet. Columns at or past
// min are optional.
type rowLayout struct {
	columns []FieldName
	min     int
}

var publicationLayout = rowLayout{
	columns: []FieldName{
		FieldID, FieldPublishedDate, FieldTitle, FieldSummary, FieldDescription,
		FieldURL, FieldLinkText, FieldCode, FieldTags,
		FieldImage, FieldImageText, FieldImageTitle,
		FieldThumbnail, FieldThumbnailText, FieldThumbTitle,
		FieldCreator, FieldCreatorEmail, FieldCreatedBy,
		FieldPublished, FieldPromote, FieldCanonicalURL,
	},
	min: 20,
}

var rowLayouts = map[ContentType]rowLayout{
	TypePost: {
		columns: []FieldName{
			FieldID, FieldPublishedDate, FieldTitle, FieldSummary,
			FieldURL, FieldLinkText, FieldCode, FieldTags,
			FieldImage, FieldImageText, FieldImageTitle,
			FieldAuthor, FieldAuthorLink, FieldCreatedBy,
			FieldPublished, FieldPromote, FieldNewsletter, FieldCanonicalURL,
		},
		min: 16,
	},
	TypeVideo: {
		columns: []FieldName{
			FieldID, FieldPublishedDate, FieldTitle, FieldSummary,
			FieldVideoID, FieldVideoType, FieldProvider, FieldChannelID, FieldDuration,
			FieldCode, FieldTags, FieldAuthor, FieldAuthorLink, FieldCreatedBy,
			FieldPublished, FieldPromote, FieldNewsletter,
		},
		min: 16,
	},
	TypeTool: {
		columns: []FieldName{
			FieldID, FieldPublishedDate, FieldTitle, FieldSummary, FieldDescription,
			FieldURL, FieldLinkText, FieldCode, FieldTags, FieldFeatures,
			FieldPricing, FieldRepo, FieldRepoProvider, FieldWebsite,
			FieldImage, FieldCreatedBy, FieldPublished, FieldPromote,
		},
		min: 18,
	},
	TypeEBook:      publicationLayout,
	TypeWhitePaper: publicationLayout,
	TypeImage: {
		columns: []FieldName{
			FieldID, FieldPublishedDate, FieldTitle, FieldSummary,
			FieldCode, FieldTags, FieldImage, FieldImageText, FieldImageTitle,
			FieldImageSource, FieldCreatedBy, FieldPublished, FieldPromote,
		},
		min: 12,
	},
}

// RowHeader returns the column names of the sheet layout for t.
func RowHeader(t ContentType) []string {
	layout := rowLayouts[t]
	out := make([]string, len(layout.columns))
	for i, name := range layout.columns {
		out[i] = name.Value()
	}
	return out
}

// MinColumns returns how many columns a row of type t must have.
func MinColumns(t ContentType) int {
	return rowLayouts[t].min
}

// ParseRow builds an item of type t from a positional sheet row.
//
// A row shorter than the layout minimum fails with ErrTooFewColumns; a
// malformed date, number or flag fails with the cell's parse error.
func ParseRow(t ContentType, row []string) (*Content, error) {
	layout, ok := rowLayouts[t]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownContentType, "no sheet layout for %q", t)
	}
	if len(row) < layout.min {
		return nil, errors.Wrapf(ErrTooFewColumns, "%s row has %d columns, need %d",
			t.Value(), len(row), layout.min)
	}

	c := &Content{Item: Item{Type: t, Source: SourceSpreadsheet}}
	for i, name := range layout.columns {
		if i >= len(row) {
			break
		}
		if err := c.SetField(name, strings.TrimSpace(row[i])); err != nil {
			return nil, errors.Wrapf(err, "column %d", i+1)
		}
	}
	return c, nil
}
