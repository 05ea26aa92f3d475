package domain

// ContentType is the concrete variant of a Content item.
type ContentType string

const (
	TypePost       ContentType = "POST"
	TypeVideo      ContentType = "VIDEO"
	TypeTool       ContentType = "TOOL"
	TypeEBook      ContentType = "EBOOK"
	TypeWhitePaper ContentType = "WHITE_PAPER"
	TypeImage      ContentType = "IMAGE"
)

var contentTypes = newVocabulary(
	term[ContentType]{code: TypePost, value: "Post"},
	term[ContentType]{code: TypeVideo, value: "Video"},
	term[ContentType]{code: TypeTool, value: "Tool"},
	term[ContentType]{code: TypeEBook, value: "E-Book"},
	term[ContentType]{code: TypeWhitePaper, value: "White Paper"},
	term[ContentType]{code: TypeImage, value: "Image"},
)

// Capability marks a field group carried by a content type.
type Capability uint8

const (
	HasOrganisationLink Capability = 1 << iota
	HasURLFields
	HasImageFields
	HasAuthorFields
	HasVideoFields
	HasToolFields
	HasPublicationFields
)

var typeCapabilities = map[ContentType]Capability{
	TypePost:       HasOrganisationLink | HasURLFields | HasImageFields | HasAuthorFields,
	TypeVideo:      HasOrganisationLink | HasVideoFields | HasImageFields | HasAuthorFields,
	TypeTool:       HasOrganisationLink | HasURLFields | HasImageFields | HasToolFields,
	TypeEBook:      HasOrganisationLink | HasURLFields | HasImageFields | HasPublicationFields,
	TypeWhitePaper: HasOrganisationLink | HasURLFields | HasImageFields | HasPublicationFields,
	TypeImage:      HasOrganisationLink | HasImageFields,
}

// Has reports whether every capability in want is set.
func (c Capability) Has(want Capability) bool { return c&want == want }

// Capabilities returns the field groups carried by the type.
func (t ContentType) Capabilities() Capability { return typeCapabilities[t] }

// IsPublication reports whether the type is an e-book or white paper.
func (t ContentType) IsPublication() bool {
	return t.Capabilities().Has(HasPublicationFields)
}

// Value returns the display value of the content type.
func (t ContentType) Value() string { return contentTypes.value(t) }

// String implements fmt.Stringer with the display value.
func (t ContentType) String() string { return t.Value() }

// ContentTypeFromValue looks a content type up by its display value.
func ContentTypeFromValue(value string) (ContentType, bool) {
	return contentTypes.fromValue(value)
}

// ContentTypeFromCode looks a content type up by its code.
func ContentTypeFromCode(code string) (ContentType, bool) {
	return contentTypes.fromCode(code)
}

// ParseContentType accepts either a display value or a code, ignoring case
// of the code ("ebook", "EBOOK" and "E-Book" all resolve).
func ParseContentType(s string) (ContentType, bool) {
	return contentTypes.parse(s)
}

// ContainsContentType reports whether value is a known display value.
func ContainsContentType(value string) bool {
	return contentTypes.contains(value)
}

// ContentTypes lists every content type in declaration order.
func ContentTypes() []ContentType { return contentTypes.codes() }
