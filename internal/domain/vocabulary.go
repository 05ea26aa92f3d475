package domain

import "strings"

// term is a single entry of a controlled vocabulary.
type term[T ~string] struct {
	code  T
	value string
	url   string
}

// vocabulary is an ordered, read-only lookup table built once at init.
type vocabulary[T ~string] struct {
	terms   []term[T]
	byCode  map[T]term[T]
	byValue map[string]T
}

func newVocabulary[T ~string](terms ...term[T]) vocabulary[T] {
	v := vocabulary[T]{
		terms:   terms,
		byCode:  make(map[T]term[T], len(terms)),
		byValue: make(map[string]T, len(terms)),
	}
	for _, t := range terms {
		v.byCode[t.code] = t
		v.byValue[t.value] = t.code
	}
	return v
}

func (v vocabulary[T]) fromValue(value string) (T, bool) {
	code, ok := v.byValue[value]
	return code, ok
}

func (v vocabulary[T]) fromCode(code string) (T, bool) {
	t, ok := v.byCode[T(code)]
	return t.code, ok
}

// contains never fails for unrecognised input.
func (v vocabulary[T]) contains(value string) bool {
	_, ok := v.byValue[value]
	return ok
}

func (v vocabulary[T]) value(code T) string {
	return v.byCode[code].value
}

func (v vocabulary[T]) url(code T) string {
	return v.byCode[code].url
}

func (v vocabulary[T]) codes() []T {
	out := make([]T, len(v.terms))
	for i, t := range v.terms {
		out[i] = t.code
	}
	return out
}

// lookup resolves a value first by display value and then by code.
func (v vocabulary[T]) lookup(s string) (T, bool) {
	if code, ok := v.fromValue(s); ok {
		return code, true
	}
	return v.fromCode(s)
}

// parse is lookup falling back to the display value in any case and to the
// code spelled in any case, with dashes or spaces for underscores ("how-to"
// and "How To" give HOW_TO).
func (v vocabulary[T]) parse(s string) (T, bool) {
	if code, ok := v.lookup(s); ok {
		return code, true
	}
	for _, t := range v.terms {
		if strings.EqualFold(t.value, s) {
			return t.code, true
		}
	}
	return v.fromCode(upperSnake(s))
}
