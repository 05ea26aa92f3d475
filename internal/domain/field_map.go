package domain

import (
	"sort"
	"strconv"
	"strings"
)

// FieldMap holds the string values substituted into rendering templates.
// Every field an entity carries is present, possibly empty.
type FieldMap map[FieldName]string

// Put writes a string value.
func (m FieldMap) Put(name FieldName, value string) {
	m[name] = value
}

// PutBool writes "1" or "0".
func (m FieldMap) PutBool(name FieldName, value bool) {
	m[name] = boolField(value)
}

// PutInt writes a decimal value.
func (m FieldMap) PutInt(name FieldName, value int64) {
	m[name] = strconv.FormatInt(value, 10)
}

// Get returns the value and whether the field is present.
func (m FieldMap) Get(name FieldName) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Add copies every entry of other into m.
func (m FieldMap) Add(other FieldMap) {
	for k, v := range other {
		m[k] = v
	}
}

// Strings keys the map by field value, the form templates consume.
func (m FieldMap) Strings() map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k.Value()] = v
	}
	return out
}

// Substitute replaces every ${field} placeholder in tmpl with its value.
// Placeholders for absent fields are left as they are.
func (m FieldMap) Substitute(tmpl string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k.Value())
	}
	sort.Strings(keys)

	values := m.Strings()
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "${"+k+"}", values[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
