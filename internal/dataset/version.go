package dataset

// Allowlisted codebase versions, newest first. Matching is exact.
var supportedVersions = []string{"v3.0", "v2.1", "v2.0"}

// SupportedVersions returns a copy of the allowlisted codebase versions.
func SupportedVersions() []string {
	out := make([]string, len(supportedVersions))
	copy(out, supportedVersions)
	return out
}

// IsSupportedVersion reports whether version is on the allowlist.
func IsSupportedVersion(version string) bool {
	for _, v := range supportedVersions {
		if v == version {
			return true
		}
	}
	return false
}

// ValidateVersion extracts the declared codebase version and checks it
// against the allowlist. The version is returned verbatim.
func ValidateVersion(repoID string, desc *Descriptor) (string, error) {
	if desc == nil || desc.CodebaseVersion == "" {
		return "", &Error{Kind: KindMissingVersion, RepoID: repoID}
	}
	version := desc.CodebaseVersion
	if !IsSupportedVersion(version) {
		return "", &Error{Kind: KindUnsupportedVersion, RepoID: repoID, Version: version}
	}
	return version, nil
}
