package domain

// ContentFieldSource is where a crawled field is read from.
type ContentFieldSource string

const (
	FieldSourcePage ContentFieldSource = "PAGE"
	FieldSourceFeed ContentFieldSource = "FEED"
	FieldSourceMeta ContentFieldSource = "META"
)

var fieldSources = newVocabulary(
	term[ContentFieldSource]{code: FieldSourcePage, value: "page"},
	term[ContentFieldSource]{code: FieldSourceFeed, value: "feed"},
	term[ContentFieldSource]{code: FieldSourceMeta, value: "meta"},
)

// Value returns the display value of the source.
func (s ContentFieldSource) Value() string { return fieldSources.value(s) }

// String implements fmt.Stringer with the display value.
func (s ContentFieldSource) String() string { return s.Value() }

// ContentFieldSourceFromValue looks a source up by its display value.
func ContentFieldSourceFromValue(value string) (ContentFieldSource, bool) {
	return fieldSources.fromValue(value)
}

// ContentFieldSourceFromCode looks a source up by its code.
func ContentFieldSourceFromCode(code string) (ContentFieldSource, bool) {
	return fieldSources.fromCode(code)
}

// ContainsContentFieldSource reports whether value is a known display value.
func ContainsContentFieldSource(value string) bool {
	return fieldSources.contains(value)
}

// ContentFieldSources lists every source in declaration order.
func ContentFieldSources() []ContentFieldSource { return fieldSources.codes() }
