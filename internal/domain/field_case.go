package domain

import (
	"strings"
	"unicode"
)

// ContentFieldCase is the case conversion applied to an extracted field.
type ContentFieldCase string

const (
	FieldCaseNone  ContentFieldCase = "NONE"
	FieldCaseUpper ContentFieldCase = "UPPER"
	FieldCaseLower ContentFieldCase = "LOWER"
	FieldCaseTitle ContentFieldCase = "TITLE"
)

var fieldCases = newVocabulary(
	term[ContentFieldCase]{code: FieldCaseNone, value: "none"},
	term[ContentFieldCase]{code: FieldCaseUpper, value: "upper"},
	term[ContentFieldCase]{code: FieldCaseLower, value: "lower"},
	term[ContentFieldCase]{code: FieldCaseTitle, value: "title"},
)

// Value returns the display value of the case.
func (c ContentFieldCase) Value() string { return fieldCases.value(c) }

// String implements fmt.Stringer with the display value.
func (c ContentFieldCase) String() string { return c.Value() }

// Apply converts s to the case. Unknown cases leave s untouched.
func (c ContentFieldCase) Apply(s string) string {
	switch c {
	case FieldCaseUpper:
		return strings.ToUpper(s)
	case FieldCaseLower:
		return strings.ToLower(s)
	case FieldCaseTitle:
		return titleCase(s)
	default:
		return s
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// ContentFieldCaseFromValue looks a case up by its display value.
func ContentFieldCaseFromValue(value string) (ContentFieldCase, bool) {
	return fieldCases.fromValue(value)
}

// ContentFieldCaseFromCode looks a case up by its code.
func ContentFieldCaseFromCode(code string) (ContentFieldCase, bool) {
	return fieldCases.fromCode(code)
}

// ContainsContentFieldCase reports whether value is a known display value.
func ContainsContentFieldCase(value string) bool {
	return fieldCases.contains(value)
}

// ContentFieldCases lists every case in declaration order.
func ContentFieldCases() []ContentFieldCase { return fieldCases.codes() }
