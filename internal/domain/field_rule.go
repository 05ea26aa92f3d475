package domain

import "fmt"

// FieldRule says where a crawled field is read from and how it is cased.
// Selector is a CSS selector for page fields, a meta name or property for
// meta fields and an entry key for feed fields. Attr, when set, reads an
// attribute instead of the element text.
type FieldRule struct {
	Field    FieldName
	Source   ContentFieldSource
	Selector string
	Attr     string
	Case     ContentFieldCase
}

// NewFieldRule resolves the field, source and case by value or code. An
// empty source means the page and an empty case means none.
func NewFieldRule(field, source, selector, attr, fieldCase string) (FieldRule, error) {
	name, ok := ParseFieldName(field)
	if !ok {
		return FieldRule{}, fmt.Errorf("%w: field %q", ErrInvalidValue, field)
	}
	rule := FieldRule{
		Field:    name,
		Source:   FieldSourcePage,
		Selector: selector,
		Attr:     attr,
		Case:     FieldCaseNone,
	}
	if source != "" {
		if rule.Source, ok = fieldSources.lookup(source); !ok {
			return FieldRule{}, fmt.Errorf("%w: source %q", ErrInvalidValue, source)
		}
	}
	if fieldCase != "" {
		if rule.Case, ok = fieldCases.lookup(fieldCase); !ok {
			return FieldRule{}, fmt.Errorf("%w: case %q", ErrInvalidValue, fieldCase)
		}
	}
	if selector == "" {
		return FieldRule{}, fmt.Errorf("%w: field %s has no selector", ErrInvalidValue, name.Value())
	}
	return rule, nil
}
