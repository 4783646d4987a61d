package dataset

import "strings"

// DefaultBaseURL is the public artifact host for datasets.
const DefaultBaseURL = "https://huggingface.co/datasets"

const (
	resolveMainSegment = "resolve/main"
	descriptorPath     = "meta/info.json"
)

// NormalizePrefix strips leading and trailing slashes and appends a single
// trailing slash when anything remains. It is idempotent.
func NormalizePrefix(prefix string) string {
	trimmed := strings.Trim(prefix, "/")
	if trimmed == "" {
		return ""
	}
	return trimmed + "/"
}

// URLBuilder produces artifact URLs for a fixed artifact host.
type URLBuilder struct {
	BaseURL string
}

// NewURLBuilder returns a builder for baseURL, falling back to DefaultBaseURL.
func NewURLBuilder(baseURL string) URLBuilder {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return URLBuilder{BaseURL: baseURL}
}

// ArtifactURL returns {base}/{repoID}/resolve/main/{prefix}{relPath}.
//
// version is accepted so callers can pass the resolved schema generation;
// every supported generation currently shares one URL layout.
func (b URLBuilder) ArtifactURL(repoID, version, relPath, prefix string) string {
	base := strings.TrimRight(b.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	var sb strings.Builder
	sb.Grow(len(base) + len(repoID) + len(resolveMainSegment) + len(prefix) + len(relPath) + 4)
	sb.WriteString(base)
	sb.WriteByte('/')
	sb.WriteString(repoID)
	sb.WriteByte('/')
	sb.WriteString(resolveMainSegment)
	sb.WriteByte('/')
	sb.WriteString(NormalizePrefix(prefix))
	sb.WriteString(relPath)
	return sb.String()
}

// BuildArtifactURL builds an artifact URL against DefaultBaseURL.
func BuildArtifactURL(repoID, version, relPath, prefix string) string {
	return URLBuilder{BaseURL: DefaultBaseURL}.ArtifactURL(repoID, version, relPath, prefix)
}
