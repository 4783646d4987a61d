package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKindOfWrappedError(t *testing.T) {
	base := &Error{Kind: KindAccessDenied, RepoID: "lerobot/x", URL: "https://h/x", StatusCode: 401}
	wrapped := fmt.Errorf("load episode: %w", base)

	if KindOf(wrapped) != KindAccessDenied {
		t.Fatalf("expected access-denied through wrapping, got %s", KindOf(wrapped))
	}
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Fatal("expected unknown kind for foreign errors")
	}
	if IsKind(nil, KindUnknown) {
		t.Fatal("nil error must not match any kind")
	}
}

func TestTimeoutUnwrapsContextError(t *testing.T) {
	err := &Error{Kind: KindTimeout, RepoID: "lerobot/x", URL: "https://h/x", Err: context.DeadlineExceeded}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("expected deadline exceeded to unwrap")
	}
	if !strings.Contains(err.Error(), "deadline exceeded") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestHintOnlyForActionableKinds(t *testing.T) {
	if (&Error{Kind: KindAccessDenied}).Hint() == "" {
		t.Fatal("expected access-denied hint")
	}
	if (&Error{Kind: KindUnsupportedVersion}).Hint() == "" {
		t.Fatal("expected unsupported-version hint")
	}
	if hint := (&Error{Kind: KindNetwork}).Hint(); hint != "" {
		t.Fatalf("unexpected hint %q", hint)
	}
}

func TestKindStrings(t *testing.T) {
	kinds := map[Kind]string{
		KindAccessDenied:        "access-denied",
		KindFetchFailed:         "fetch-failed",
		KindNetwork:             "network-fault",
		KindTimeout:             "timeout",
		KindMalformedDescriptor: "malformed-descriptor",
		KindMissingVersion:      "missing-version",
		KindUnsupportedVersion:  "unsupported-version",
		KindIncompatibleDataset: "incompatible-dataset",
		KindUnknown:             "unknown",
	}
	for kind, want := range kinds {
		if kind.String() != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", kind, kind.String(), want)
		}
	}
}

func TestAsResolutionErrorKeepsMessage(t *testing.T) {
	err := asResolutionError("lerobot/x", errors.New("unexpected EOF"))
	if KindOf(err) != KindIncompatibleDataset {
		t.Fatalf("expected incompatible-dataset, got %s", KindOf(err))
	}
	if !strings.Contains(err.Error(), "unexpected EOF") {
		t.Fatalf("expected original message, got %q", err.Error())
	}
	if asResolutionError("lerobot/x", nil) != nil {
		t.Fatal("nil in, nil out")
	}
}
