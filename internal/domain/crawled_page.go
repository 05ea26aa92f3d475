package domain

import "fmt"

// CrawledPage holds the fields extracted from one page.
type CrawledPage struct {
	URL    string
	Fields FieldMap
}

// Apply assigns the non-empty extracted fields to c, ignoring fields its
// type does not carry.
func (p CrawledPage) Apply(c *Content) error {
	for _, name := range FieldNames() {
		value, ok := p.Fields.Get(name)
		if !ok || value == "" {
			continue
		}
		if _, carried := c.Field(name); !carried {
			continue
		}
		if err := c.SetField(name, value); err != nil {
			return fmt.Errorf("page %s: %w", p.URL, err)
		}
	}
	return nil
}
