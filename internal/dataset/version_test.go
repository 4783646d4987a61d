package dataset_test

import (
	"strings"
	"testing"

	"lerobotviz/internal/dataset"
)

func TestValidateVersionAllowlist(t *testing.T) {
	cases := []struct {
		version string
		kind    dataset.Kind
	}{
		{"v3.0", dataset.KindUnknown},
		{"v2.1", dataset.KindUnknown},
		{"v2.0", dataset.KindUnknown},
		{"v1.0", dataset.KindUnsupportedVersion},
		{"v1.6", dataset.KindUnsupportedVersion},
		{"v3.1", dataset.KindUnsupportedVersion},
		{"3.0", dataset.KindUnsupportedVersion},
		{"V3.0", dataset.KindUnsupportedVersion},
		{" v3.0", dataset.KindUnsupportedVersion},
		{"", dataset.KindMissingVersion},
	}
	for _, tc := range cases {
		desc := &dataset.Descriptor{CodebaseVersion: tc.version}
		got, err := dataset.ValidateVersion("lerobot/pusht", desc)
		if tc.kind == dataset.KindUnknown {
			if err != nil {
				t.Fatalf("version %q: unexpected error %v", tc.version, err)
			}
			if got != tc.version {
				t.Fatalf("version %q: expected verbatim return, got %q", tc.version, got)
			}
			continue
		}
		if !dataset.IsKind(err, tc.kind) {
			t.Fatalf("version %q: expected %s, got %v", tc.version, tc.kind, err)
		}
		if got != "" {
			t.Fatalf("version %q: expected empty version on failure, got %q", tc.version, got)
		}
	}
}

func TestValidateVersionNilDescriptor(t *testing.T) {
	if _, err := dataset.ValidateVersion("lerobot/pusht", nil); !dataset.IsKind(err, dataset.KindMissingVersion) {
		t.Fatalf("expected missing-version, got %v", err)
	}
}

func TestUnsupportedVersionMessage(t *testing.T) {
	_, err := dataset.ValidateVersion("lerobot/aloha", &dataset.Descriptor{CodebaseVersion: "v1.0"})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"lerobot/aloha", `"v1.0"`, "v3.0", "v2.1", "v2.0"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestSupportedVersionsReturnsCopy(t *testing.T) {
	versions := dataset.SupportedVersions()
	versions[0] = "tampered"
	if !dataset.IsSupportedVersion("v3.0") {
		t.Fatal("mutating the returned slice must not change the allowlist")
	}
	if dataset.IsSupportedVersion("tampered") {
		t.Fatal("unexpected allowlist entry")
	}
}
