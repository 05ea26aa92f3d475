package domain

// FieldName is a key of the persisted JSON document and of the template
// field map. The code is the programmatic name; the value is the key.
type FieldName string

const (
	FieldID            FieldName = "ID"
	FieldUUID          FieldName = "UUID"
	FieldSite          FieldName = "SITE"
	FieldCode          FieldName = "CODE"
	FieldType          FieldName = "TYPE"
	FieldTitle         FieldName = "TITLE"
	FieldRevisedTitle  FieldName = "REVISED_TITLE"
	FieldSummary       FieldName = "SUMMARY"
	FieldDescription   FieldName = "DESCRIPTION"
	FieldPublishedDate FieldName = "PUBLISHED_DATE"
	FieldPublished     FieldName = "PUBLISHED"
	FieldStatus        FieldName = "STATUS"
	FieldArchiveReason FieldName = "ARCHIVE_REASON"
	FieldSource        FieldName = "SOURCE"
	FieldCreatedBy     FieldName = "CREATED_BY"
	FieldPromote       FieldName = "PROMOTE"
	FieldNewsletter    FieldName = "NEWSLETTER"
	FieldFeatured      FieldName = "FEATURED"
	FieldSponsored     FieldName = "SPONSORED"
	FieldOrganisation  FieldName = "ORGANISATION"
	FieldEmail         FieldName = "EMAIL"
	FieldTags          FieldName = "TAGS"
	FieldURL           FieldName = "URL"
	FieldLinkText      FieldName = "LINK_TEXT"
	FieldCanonicalURL  FieldName = "CANONICAL_URL"
	FieldFeatures      FieldName = "FEATURES"
	FieldImage         FieldName = "IMAGE"
	FieldImageText     FieldName = "IMAGE_TEXT"
	FieldImageTitle    FieldName = "IMAGE_TITLE"
	FieldImageSource   FieldName = "IMAGE_SOURCE"
	FieldThumbnail     FieldName = "THUMBNAIL"
	FieldThumbnailText FieldName = "THUMBNAIL_TEXT"
	FieldThumbTitle    FieldName = "THUMBNAIL_TITLE"
	FieldVideoID       FieldName = "VIDEO_ID"
	FieldVideoType     FieldName = "VIDEO_TYPE"
	FieldProvider      FieldName = "PROVIDER"
	FieldChannelID     FieldName = "CHANNEL_ID"
	FieldDuration      FieldName = "DURATION"
	FieldAuthor        FieldName = "AUTHOR"
	FieldAuthorLink    FieldName = "AUTHOR_LINK"
	FieldPricing       FieldName = "PRICING"
	FieldRepo          FieldName = "REPO"
	FieldRepoProvider  FieldName = "REPO_PROVIDER"
	FieldRepoURL       FieldName = "REPO_URL"
	FieldWebsite       FieldName = "WEBSITE"
	FieldCreator       FieldName = "CREATOR"
	FieldCreatorEmail  FieldName = "CREATOR_EMAIL"
	FieldCount         FieldName = "COUNT"
	FieldDeployed      FieldName = "DEPLOYED"
)

var fieldNames = newVocabulary(
	term[FieldName]{code: FieldID, value: "id"},
	term[FieldName]{code: FieldUUID, value: "uuid"},
	term[FieldName]{code: FieldSite, value: "site"},
	term[FieldName]{code: FieldCode, value: "code"},
	term[FieldName]{code: FieldType, value: "type"},
	term[FieldName]{code: FieldTitle, value: "title"},
	term[FieldName]{code: FieldRevisedTitle, value: "revised-title"},
	term[FieldName]{code: FieldSummary, value: "summary"},
	term[FieldName]{code: FieldDescription, value: "description"},
	term[FieldName]{code: FieldPublishedDate, value: "published-date"},
	term[FieldName]{code: FieldPublished, value: "published"},
	term[FieldName]{code: FieldStatus, value: "status"},
	term[FieldName]{code: FieldArchiveReason, value: "archive-reason"},
	term[FieldName]{code: FieldSource, value: "source"},
	term[FieldName]{code: FieldCreatedBy, value: "created-by"},
	term[FieldName]{code: FieldPromote, value: "promote"},
	term[FieldName]{code: FieldNewsletter, value: "newsletter"},
	term[FieldName]{code: FieldFeatured, value: "featured"},
	term[FieldName]{code: FieldSponsored, value: "sponsored"},
	term[FieldName]{code: FieldOrganisation, value: "organisation"},
	term[FieldName]{code: FieldEmail, value: "email"},
	term[FieldName]{code: FieldTags, value: "tags"},
	term[FieldName]{code: FieldURL, value: "url"},
	term[FieldName]{code: FieldLinkText, value: "link-text"},
	term[FieldName]{code: FieldCanonicalURL, value: "canonical-url"},
	term[FieldName]{code: FieldFeatures, value: "features"},
	term[FieldName]{code: FieldImage, value: "image"},
	term[FieldName]{code: FieldImageText, value: "image-text"},
	term[FieldName]{code: FieldImageTitle, value: "image-title"},
	term[FieldName]{code: FieldImageSource, value: "image-source"},
	term[FieldName]{code: FieldThumbnail, value: "thumbnail"},
	term[FieldName]{code: FieldThumbnailText, value: "thumbnail-text"},
	term[FieldName]{code: FieldThumbTitle, value: "thumbnail-title"},
	term[FieldName]{code: FieldVideoID, value: "video-id"},
	term[FieldName]{code: FieldVideoType, value: "video-type"},
	term[FieldName]{code: FieldProvider, value: "provider"},
	term[FieldName]{code: FieldChannelID, value: "channel-id"},
	term[FieldName]{code: FieldDuration, value: "duration"},
	term[FieldName]{code: FieldAuthor, value: "author"},
	term[FieldName]{code: FieldAuthorLink, value: "author-link"},
	term[FieldName]{code: FieldPricing, value: "pricing"},
	term[FieldName]{code: FieldRepo, value: "repo"},
	term[FieldName]{code: FieldRepoProvider, value: "repo-provider"},
	term[FieldName]{code: FieldRepoURL, value: "repo-url"},
	term[FieldName]{code: FieldWebsite, value: "website"},
	term[FieldName]{code: FieldCreator, value: "creator"},
	term[FieldName]{code: FieldCreatorEmail, value: "creator-email"},
	term[FieldName]{code: FieldCount, value: "count"},
	term[FieldName]{code: FieldDeployed, value: "deployed"},
)

// Value returns the document/template key of the field.
func (f FieldName) Value() string { return fieldNames.value(f) }

// String implements fmt.Stringer with the display value.
func (f FieldName) String() string { return f.Value() }

// FieldNameFromValue looks a field up by its display value.
func FieldNameFromValue(value string) (FieldName, bool) {
	return fieldNames.fromValue(value)
}

// FieldNameFromCode looks a field up by its code.
func FieldNameFromCode(code string) (FieldName, bool) {
	return fieldNames.fromCode(code)
}

// ParseFieldName accepts a key ("image-text") or a code ("IMAGE_TEXT").
func ParseFieldName(s string) (FieldName, bool) {
	return fieldNames.lookup(s)
}

// ContainsFieldName reports whether value is a known display value.
func ContainsFieldName(value string) bool {
	return fieldNames.contains(value)
}

// FieldNames lists every field in declaration order.
func FieldNames() []FieldName { return fieldNames.codes() }
