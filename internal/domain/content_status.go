package domain

// ContentStatus is the editorial state of a content item.
type ContentStatus string

const (
	StatusNew      ContentStatus = "NEW"
	StatusReview   ContentStatus = "REVIEW"
	StatusStaged   ContentStatus = "STAGED"
	StatusDeployed ContentStatus = "DEPLOYED"
	StatusSkipped  ContentStatus = "SKIPPED"
	StatusArchived ContentStatus = "ARCHIVED"
)

var contentStatuses = newVocabulary(
	term[ContentStatus]{code: StatusNew, value: "New"},
	term[ContentStatus]{code: StatusReview, value: "Review"},
	term[ContentStatus]{code: StatusStaged, value: "Staged"},
	term[ContentStatus]{code: StatusDeployed, value: "Deployed"},
	term[ContentStatus]{code: StatusSkipped, value: "Skipped"},
	term[ContentStatus]{code: StatusArchived, value: "Archived"},
)

// Value returns the display value of the status.
func (s ContentStatus) Value() string { return contentStatuses.value(s) }

// String implements fmt.Stringer with the display value.
func (s ContentStatus) String() string { return s.Value() }

// ContentStatusFromValue looks a status up by its display value.
func ContentStatusFromValue(value string) (ContentStatus, bool) {
	return contentStatuses.fromValue(value)
}

// ContentStatusFromCode looks a status up by its code.
func ContentStatusFromCode(code string) (ContentStatus, bool) {
	return contentStatuses.fromCode(code)
}

// ContainsContentStatus reports whether value is a known display value.
func ContainsContentStatus(value string) bool {
	return contentStatuses.contains(value)
}

// ContentStatuses lists every status in declaration order.
func ContentStatuses() []ContentStatus { return contentStatuses.codes() }
