package domain

import "fmt"

// RepoProvider hosts the source repository of a tool.
type RepoProvider string

const (
	RepoGitHub    RepoProvider = "GITHUB"
	RepoGitLab    RepoProvider = "GITLAB"
	RepoBitbucket RepoProvider = "BITBUCKET"
)

var repoProviders = newVocabulary(
	term[RepoProvider]{code: RepoGitHub, value: "GitHub", url: "https://github.com/%s"},
	term[RepoProvider]{code: RepoGitLab, value: "GitLab", url: "https://gitlab.com/%s"},
	term[RepoProvider]{code: RepoBitbucket, value: "Bitbucket", url: "https://bitbucket.org/%s"},
)

// Value returns the display value of the provider.
func (p RepoProvider) Value() string { return repoProviders.value(p) }

// String implements fmt.Stringer with the display value.
func (p RepoProvider) String() string { return p.Value() }

// URL expands the provider's url template for the given "owner/name" repo.
// It returns "" for an unknown provider or an empty repo.
func (p RepoProvider) URL(repo string) string {
	tmpl := repoProviders.url(p)
	if tmpl == "" || repo == "" {
		return ""
	}
	return fmt.Sprintf(tmpl, repo)
}

// RepoProviderFromValue looks a provider up by its display value.
func RepoProviderFromValue(value string) (RepoProvider, bool) {
	return repoProviders.fromValue(value)
}

// RepoProviderFromCode looks a provider up by its code.
func RepoProviderFromCode(code string) (RepoProvider, bool) {
	return repoProviders.fromCode(code)
}

// ContainsRepoProvider reports whether value is a known display value.
func ContainsRepoProvider(value string) bool {
	return repoProviders.contains(value)
}

// RepoProviders lists every provider in declaration order.
func RepoProviders() []RepoProvider { return repoProviders.codes() }
