package dataset_test

import (
	"testing"

	"lerobotviz/internal/dataset"
)

func TestBuildArtifactURLPusht(t *testing.T) {
	got := dataset.BuildArtifactURL("lerobot/pusht", "v2.1", "meta/info.json", "")
	want := "https://huggingface.co/datasets/lerobot/pusht/resolve/main/meta/info.json"
	if got != want {
		t.Fatalf("unexpected url: got %q want %q", got, want)
	}
}

func TestArtifactURLWithPrefixAndCustomHost(t *testing.T) {
	b := dataset.NewURLBuilder("http://localhost:8080/datasets/")
	got := b.ArtifactURL("org/name", "v3.0", "videos/chunk-000/file-000.mp4", "/nested/root/")
	want := "http://localhost:8080/datasets/org/name/resolve/main/nested/root/videos/chunk-000/file-000.mp4"
	if got != want {
		t.Fatalf("unexpected url: got %q want %q", got, want)
	}
}

func TestArtifactURLIsDeterministic(t *testing.T) {
	inputs := [][4]string{
		{"lerobot/pusht", "v2.1", "meta/info.json", ""},
		{"lerobot/aloha_sim", "v3.0", "data/chunk-000/file-000.parquet", "a/b"},
		{"x/y", "v2.0", "meta/episodes.jsonl", "/p/"},
	}
	first := make([]string, len(inputs))
	for i, in := range inputs {
		first[i] = dataset.BuildArtifactURL(in[0], in[1], in[2], in[3])
	}
	for i := len(inputs) - 1; i >= 0; i-- {
		in := inputs[i]
		if got := dataset.BuildArtifactURL(in[0], in[1], in[2], in[3]); got != first[i] {
			t.Fatalf("url changed between calls: %q vs %q", got, first[i])
		}
	}
}

func TestArtifactURLIgnoresVersion(t *testing.T) {
	a := dataset.BuildArtifactURL("lerobot/pusht", "v2.0", "meta/info.json", "")
	b := dataset.BuildArtifactURL("lerobot/pusht", "v3.0", "meta/info.json", "")
	if a != b {
		t.Fatalf("expected identical layout across versions: %q vs %q", a, b)
	}
}

func TestNormalizePrefix(t *testing.T) {
	cases := map[string]string{
		"":        "",
		"/":       "",
		"//":      "",
		"a":       "a/",
		"a/b":     "a/b/",
		"a/b/":    "a/b/",
		"/a/b/":   "a/b/",
		"//a/b//": "a/b/",
	}
	for in, want := range cases {
		got := dataset.NormalizePrefix(in)
		if got != want {
			t.Fatalf("NormalizePrefix(%q) = %q, want %q", in, got, want)
		}
		if again := dataset.NormalizePrefix(got); again != got {
			t.Fatalf("NormalizePrefix not idempotent for %q: %q then %q", in, got, again)
		}
	}
}
