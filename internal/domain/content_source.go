package domain

// ContentSource is the channel a content item entered the system through.
type ContentSource string

const (
	SourcePage        ContentSource = "PAGE"
	SourceFeed        ContentSource = "FEED"
	SourceSpreadsheet ContentSource = "SPREADSHEET"
	SourceAPI         ContentSource = "API"
	SourceManual      ContentSource = "MANUAL"
)

var contentSources = newVocabulary(
	term[ContentSource]{code: SourcePage, value: "Page"},
	term[ContentSource]{code: SourceFeed, value: "Feed"},
	term[ContentSource]{code: SourceSpreadsheet, value: "Spreadsheet"},
	term[ContentSource]{code: SourceAPI, value: "API"},
	term[ContentSource]{code: SourceManual, value: "Manual"},
)

// Value returns the display value of the source.
func (s ContentSource) Value() string { return contentSources.value(s) }

// String implements fmt.Stringer with the display value.
func (s ContentSource) String() string { return s.Value() }

// ContentSourceFromValue looks a source up by its display value.
func ContentSourceFromValue(value string) (ContentSource, bool) {
	return contentSources.fromValue(value)
}

// ContentSourceFromCode looks a source up by its code.
func ContentSourceFromCode(code string) (ContentSource, bool) {
	return contentSources.fromCode(code)
}

// ContainsContentSource reports whether value is a known display value.
func ContainsContentSource(value string) bool {
	return contentSources.contains(value)
}

// ContentSources lists every source in declaration order.
func ContentSources() []ContentSource { return contentSources.codes() }
