package domain

// ArchiveReason records why a content item was archived.
type ArchiveReason string

const (
	ArchiveReasonNone       ArchiveReason = "NONE"
	ArchiveReasonDuplicate  ArchiveReason = "DUPLICATE"
	ArchiveReasonOutOfDate  ArchiveReason = "OUT_OF_DATE"
	ArchiveReasonBrokenLink ArchiveReason = "BROKEN_LINK"
	ArchiveReasonIrrelevant ArchiveReason = "IRRELEVANT"
	ArchiveReasonLowQuality ArchiveReason = "LOW_QUALITY"
	ArchiveReasonExpired    ArchiveReason = "EXPIRED"
)

var archiveReasons = newVocabulary(
	term[ArchiveReason]{code: ArchiveReasonNone, value: "None"},
	term[ArchiveReason]{code: ArchiveReasonDuplicate, value: "Duplicate"},
	term[ArchiveReason]{code: ArchiveReasonOutOfDate, value: "Out of Date"},
	term[ArchiveReason]{code: ArchiveReasonBrokenLink, value: "Broken Link"},
	term[ArchiveReason]{code: ArchiveReasonIrrelevant, value: "Irrelevant"},
	term[ArchiveReason]{code: ArchiveReasonLowQuality, value: "Low Quality"},
	term[ArchiveReason]{code: ArchiveReasonExpired, value: "Expired"},
)

// Value returns the display value of the reason.
func (r ArchiveReason) Value() string { return archiveReasons.value(r) }

// String implements fmt.Stringer with the display value.
func (r ArchiveReason) String() string { return r.Value() }

// ArchiveReasonFromValue looks a reason up by its display value.
func ArchiveReasonFromValue(value string) (ArchiveReason, bool) {
	return archiveReasons.fromValue(value)
}

// ArchiveReasonFromCode looks a reason up by its code.
func ArchiveReasonFromCode(code string) (ArchiveReason, bool) {
	return archiveReasons.fromCode(code)
}

// ContainsArchiveReason reports whether value is a known display value.
func ContainsArchiveReason(value string) bool {
	return archiveReasons.contains(value)
}

// ArchiveReasons lists every reason in declaration order.
func ArchiveReasons() []ArchiveReason { return archiveReasons.codes() }
