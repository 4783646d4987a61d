package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why a resolution failed so callers can branch without
// matching on message text.
type Kind int

const (
	// KindUnknown is reported by KindOf for errors that did not come from this package.
	KindUnknown Kind = iota
	// KindAccessDenied means the hub answered 401 or 403.
	KindAccessDenied
	// KindFetchFailed means the hub answered with any other non-success status.
	KindFetchFailed
	// KindNetwork means the transport failed before a response arrived.
	KindNetwork
	// KindTimeout means the resolution deadline fired or the caller cancelled.
	KindTimeout
	// KindMalformedDescriptor means the response body lacked the required shape.
	KindMalformedDescriptor
	// KindMissingVersion means the descriptor declared no codebase version.
	KindMissingVersion
	// KindUnsupportedVersion means the declared version is outside the allowlist.
	KindUnsupportedVersion
	// KindIncompatibleDataset is the fallback for failures with no better classification.
	KindIncompatibleDataset
)

func (k Kind) String() string {
	switch k {
	case KindAccessDenied:
		return "access-denied"
	case KindFetchFailed:
		return "fetch-failed"
	case KindNetwork:
		return "network-fault"
	case KindTimeout:
		return "timeout"
	case KindMalformedDescriptor:
		return "malformed-descriptor"
	case KindMissingVersion:
		return "missing-version"
	case KindUnsupportedVersion:
		return "unsupported-version"
	case KindIncompatibleDataset:
		return "incompatible-dataset"
	default:
		return "unknown"
	}
}

const (
	accessDeniedHint       = "the dataset may be private or gated; request access on the hub and set HF_TOKEN (or hub.token) to a token that can read it"
	unsupportedVersionHint = "convert the dataset to a supported codebase version with a recent LeRobot release"
)

// Error is the single failure type returned by the fetcher, validator and resolver.
type Error struct {
	Kind       Kind
	RepoID     string
	URL        string
	StatusCode int
	Version    string
	Detail     string
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var msg string
	switch e.Kind {
	case KindAccessDenied:
		msg = fmt.Sprintf("access denied to dataset %q (HTTP %d) at %s: %s", e.RepoID, e.StatusCode, e.URL, e.Hint())
	case KindFetchFailed:
		msg = fmt.Sprintf("fetch dataset descriptor for %q failed: HTTP %d at %s", e.RepoID, e.StatusCode, e.URL)
	case KindNetwork:
		msg = fmt.Sprintf("fetch dataset descriptor for %q from %s: %v", e.RepoID, e.URL, e.Err)
	case KindTimeout:
		msg = fmt.Sprintf("fetch dataset descriptor for %q from %s cancelled: %v", e.RepoID, e.URL, e.Err)
	case KindMalformedDescriptor:
		msg = fmt.Sprintf("malformed dataset descriptor for %q at %s: %s", e.RepoID, e.URL, e.detail())
	case KindMissingVersion:
		msg = fmt.Sprintf("dataset %q descriptor declares no codebase_version", e.RepoID)
	case KindUnsupportedVersion:
		msg = fmt.Sprintf("dataset %q uses unsupported codebase version %q; supported versions: %s; %s",
			e.RepoID, e.Version, strings.Join(SupportedVersions(), ", "), e.Hint())
	default:
		if e.Err != nil {
			msg = fmt.Sprintf("dataset %q is incompatible: %v", e.RepoID, e.Err)
		} else {
			msg = fmt.Sprintf("dataset %q is incompatible with this viewer", e.RepoID)
		}
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Hint returns remediation guidance for failures a user can act on.
func (e *Error) Hint() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindAccessDenied:
		return accessDeniedHint
	case KindUnsupportedVersion:
		return unsupportedVersionHint
	default:
		return ""
	}
}

func (e *Error) detail() string {
	switch {
	case e.Detail != "" && e.Err != nil:
		return e.Detail + ": " + e.Err.Error()
	case e.Detail != "":
		return e.Detail
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "unexpected response shape"
	}
}

// KindOf reports the failure kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var typed *Error
	if errors.As(err, &typed) && typed != nil {
		return typed.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given failure kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// asResolutionError keeps typed failures intact and wraps anything else
// without discarding its message.
func asResolutionError(repoID string, err error) error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) && typed != nil {
		return err
	}
	return &Error{Kind: KindIncompatibleDataset, RepoID: repoID, Err: err}
}

func incompatibleDataset(repoID string) *Error {
	return &Error{Kind: KindIncompatibleDataset, RepoID: repoID}
}
