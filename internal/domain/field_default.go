package domain

import (
	"errors"
	"fmt"
)

// FieldDefault is a value given to a field of every new item of an
// organisation. An empty SiteID or Code matches any site or organisation.
type FieldDefault struct {
	SiteID string
	Code   string
	Name   FieldName
	Value  string
}

// Matches reports whether the default applies to the item.
func (d FieldDefault) Matches(c *Content) bool {
	return (d.SiteID == "" || d.SiteID == c.SiteID) &&
		(d.Code == "" || d.Code == c.Code)
}

// ApplyFieldDefaults assigns each matching default to an empty field.
// Defaults for fields the item's type does not carry are ignored.
func ApplyFieldDefaults(c *Content, defaults []FieldDefault) error {
	for _, d := range defaults {
		if !d.Matches(c) {
			continue
		}
		current, ok := c.Field(d.Name)
		if !ok || !isEmptyField(d.Name, current) {
			continue
		}
		if err := c.SetField(d.Name, d.Value); err != nil {
			if errors.Is(err, ErrUnsupportedField) {
				continue
			}
			return fmt.Errorf("default %s for %s: %w", d.Name.Value(), c.Code, err)
		}
	}
	return nil
}

func isEmptyField(name FieldName, value string) bool {
	spec := contentFields[name]
	if spec.always {
		return value == "0"
	}
	return value == "" || (value == "0" && (name == FieldID || name == FieldDuration))
}
