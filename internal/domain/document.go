package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Document is the flat JSON object an entity persists to.
type Document map[string]interface{}

// Put always writes the value.
func (d Document) Put(name FieldName, value interface{}) {
	d[name.Value()] = value
}

// PutOpt writes the value only when it is not the zero value of its type.
func (d Document) PutOpt(name FieldName, value interface{}) {
	switch v := value.(type) {
	case nil:
		return
	case string:
		if v == "" {
			return
		}
	case int:
		if v == 0 {
			return
		}
	case int64:
		if v == 0 {
			return
		}
	case time.Time:
		if v.IsZero() {
			return
		}
		d[name.Value()] = FormatUTC(v, DateTimeLayout)
		return
	}
	d[name.Value()] = value
}

// Has reports whether the field is present.
func (d Document) Has(name FieldName) bool {
	_, ok := d[name.Value()]
	return ok
}

// OptString returns the field as a string, or "" when absent.
func (d Document) OptString(name FieldName) string {
	switch v := d[name.Value()].(type) {
	case string:
		return v
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

// OptBool returns the field as a bool, or false when absent.
func (d Document) OptBool(name FieldName) bool {
	switch v := d[name.Value()].(type) {
	case bool:
		return v
	case string:
		b, _ := parseFlag(v)
		return b
	case float64:
		return v != 0
	case int:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	default:
		return false
	}
}

// OptInt returns the field as an int64, or 0 when absent or not numeric.
func (d Document) OptInt(name FieldName) int64 {
	switch v := d[name.Value()].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case json.Number:
		n, _ := v.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}

// OptTime parses the field as an RFC 3339 timestamp.
func (d Document) OptTime(name FieldName) (time.Time, error) {
	return ParseUTC(d.OptString(name), DateTimeLayout)
}

// ParseDocument decodes a JSON object. Numbers are kept as json.Number so
// ids and durations beyond float64 precision survive.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}
