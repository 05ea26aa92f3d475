package domain

// OrganisationSummary rolls up the per-type site settings of one
// organisation site.
type OrganisationSummary struct {
	SiteID string
	Code   string
	Name   string

	settings map[ContentType]*ContentSiteSettings
}

// NewOrganisationSummary creates an empty summary.
func NewOrganisationSummary(siteID, code, name string) *OrganisationSummary {
	return &OrganisationSummary{
		SiteID:   siteID,
		Code:     code,
		Name:     name,
		settings: map[ContentType]*ContentSiteSettings{},
	}
}

// Settings returns the aggregate for t, creating it on first use.
func (o *OrganisationSummary) Settings(t ContentType) *ContentSiteSettings {
	if o.settings == nil {
		o.settings = map[ContentType]*ContentSiteSettings{}
	}
	s, ok := o.settings[t]
	if !ok {
		s = NewContentSiteSettings(o.SiteID, o.Code, t)
		o.settings[t] = s
	}
	return s
}

// SetContent recomputes every per-type aggregate from items.
func (o *OrganisationSummary) SetContent(items []*Content) {
	byType := map[ContentType][]*Content{}
	for _, item := range items {
		if item != nil {
			byType[item.Type] = append(byType[item.Type], item)
		}
	}
	for t := range o.settings {
		if _, ok := byType[t]; !ok {
			o.settings[t].SetContent(nil)
		}
	}
	for t, list := range byType {
		o.Settings(t).SetContent(list)
	}
}

func (o *OrganisationSummary) AddItem(c *Content) {
	o.Settings(c.Type).AddItem(c)
}

func (o *OrganisationSummary) RemoveItem(c *Content) {
	o.Settings(c.Type).RemoveItem(c)
}

// ItemCount is the number of counted items across all types.
func (o *OrganisationSummary) ItemCount() int {
	total := 0
	for _, s := range o.settings {
		total += s.Count
	}
	return total
}

// IsDeployed reports whether the summary has items and every non-empty
// aggregate is deployed.
func (o *OrganisationSummary) IsDeployed() bool {
	if o.ItemCount() == 0 {
		return false
	}
	for _, s := range o.settings {
		if s.Count > 0 && !s.Deployed {
			return false
		}
	}
	return true
}

// Types lists the content types with an aggregate, in declaration order.
func (o *OrganisationSummary) Types() []ContentType {
	var out []ContentType
	for _, t := range ContentTypes() {
		if _, ok := o.settings[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// TypeFields projects the aggregate of type t together with the
// organisation name.
func (o *OrganisationSummary) TypeFields(t ContentType) FieldMap {
	m := FieldMap{}
	m.Put(FieldOrganisation, o.Name)
	m.Add(o.Settings(t).Fields())
	return m
}
