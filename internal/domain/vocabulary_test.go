package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vocabCase struct {
	name      string
	codes     func() []string
	value     func(code string) string
	fromValue func(v string) (string, bool)
	fromCode  func(c string) (string, bool)
	contains  func(v string) bool
}

func vocabCaseFor[T ~string](name string, all func() []T, value func(T) string,
	fromValue func(string) (T, bool), fromCode func(string) (T, bool), contains func(string) bool) vocabCase {
	return vocabCase{
		name: name,
		codes: func() []string {
			var out []string
			for _, c := range all() {
				out = append(out, string(c))
			}
			return out
		},
		value: func(code string) string { return value(T(code)) },
		fromValue: func(v string) (string, bool) {
			c, ok := fromValue(v)
			return string(c), ok
		},
		fromCode: func(c string) (string, bool) {
			code, ok := fromCode(c)
			return string(code), ok
		},
		contains: contains,
	}
}

func allVocabularies() []vocabCase {
	return []vocabCase{
		vocabCaseFor("ArchiveReason", ArchiveReasons, ArchiveReason.Value, ArchiveReasonFromValue, ArchiveReasonFromCode, ContainsArchiveReason),
		vocabCaseFor("ContentFieldCase", ContentFieldCases, ContentFieldCase.Value, ContentFieldCaseFromValue, ContentFieldCaseFromCode, ContainsContentFieldCase),
		vocabCaseFor("ContentFieldSource", ContentFieldSources, ContentFieldSource.Value, ContentFieldSourceFromValue, ContentFieldSourceFromCode, ContainsContentFieldSource),
		vocabCaseFor("ContentSource", ContentSources, ContentSource.Value, ContentSourceFromValue, ContentSourceFromCode, ContainsContentSource),
		vocabCaseFor("RepoProvider", RepoProviders, RepoProvider.Value, RepoProviderFromValue, RepoProviderFromCode, ContainsRepoProvider),
		vocabCaseFor("VideoType", VideoTypes, VideoType.Value, VideoTypeFromValue, VideoTypeFromCode, ContainsVideoType),
		vocabCaseFor("ContentType", ContentTypes, ContentType.Value, ContentTypeFromValue, ContentTypeFromCode, ContainsContentType),
		vocabCaseFor("ContentStatus", ContentStatuses, ContentStatus.Value, ContentStatusFromValue, ContentStatusFromCode, ContainsContentStatus),
		vocabCaseFor("FieldName", FieldNames, FieldName.Value, FieldNameFromValue, FieldNameFromCode, ContainsFieldName),
	}
}

func TestVocabularyRoundTrip(t *testing.T) {
	for _, vc := range allVocabularies() {
		t.Run(vc.name, func(t *testing.T) {
			codes := vc.codes()
			require.NotEmpty(t, codes)

			for _, code := range codes {
				value := vc.value(code)
				require.NotEmpty(t, value, "code %s has no value", code)

				got, ok := vc.fromValue(value)
				assert.True(t, ok)
				assert.Equal(t, code, got)

				got, ok = vc.fromCode(code)
				assert.True(t, ok)
				assert.Equal(t, code, got)

				assert.True(t, vc.contains(value))
			}
		})
	}
}

func TestVocabularyUnknownInput(t *testing.T) {
	inputs := []string{"no-such-value", "", " ", "NONE ", "\x00", "webinar!", "Ω"}

	for _, vc := range allVocabularies() {
		t.Run(vc.name, func(t *testing.T) {
			for _, in := range inputs {
				_, ok := vc.fromValue(in)
				assert.False(t, ok, "fromValue(%q)", in)
				_, ok = vc.fromCode(in)
				assert.False(t, ok, "fromCode(%q)", in)
				assert.NotPanics(t, func() { vc.contains(in) })
				assert.False(t, vc.contains(in), "contains(%q)", in)
			}
		})
	}
}

func TestVocabularyValuesAreUnique(t *testing.T) {
	for _, vc := range allVocabularies() {
		seen := map[string]bool{}
		for _, code := range vc.codes() {
			v := vc.value(code)
			assert.False(t, seen[v], "%s: duplicate value %q", vc.name, v)
			seen[v] = true
		}
	}
}

func TestParseContentType(t *testing.T) {
	tests := []struct {
		in   string
		want ContentType
		ok   bool
	}{
		{"EBOOK", TypeEBook, true},
		{"E-Book", TypeEBook, true},
		{"ebook", TypeEBook, true},
		{"white-paper", TypeWhitePaper, true},
		{"White Paper", TypeWhitePaper, true},
		{"post", TypePost, true},
		{"podcast", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseContentType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepoProviderURL(t *testing.T) {
	assert.Equal(t, "https://github.com/opsmatters/media", RepoGitHub.URL("opsmatters/media"))
	assert.Equal(t, "https://gitlab.com/group/tool", RepoGitLab.URL("group/tool"))
	assert.Empty(t, RepoGitHub.URL(""))
	assert.Empty(t, RepoProvider("SVN").URL("x/y"))
}

func TestContentFieldCaseApply(t *testing.T) {
	tests := []struct {
		fc   ContentFieldCase
		in   string
		want string
	}{
		{FieldCaseNone, "Mixed case", "Mixed case"},
		{FieldCaseUpper, "Mixed case", "MIXED CASE"},
		{FieldCaseLower, "Mixed Case", "mixed case"},
		{FieldCaseTitle, "observability  in PRACTICE", "Observability In Practice"},
		{ContentFieldCase(""), "as is", "as is"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.fc.Apply(tt.in), "%s.Apply(%q)", tt.fc, tt.in)
	}
}
