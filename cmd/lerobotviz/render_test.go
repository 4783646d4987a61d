package main

import (
	"strings"
	"testing"

	"lerobotviz/internal/dataset"
)

func TestFormatCountGroupsDigits(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		206:     "206",
		25650:   "25,650",
		1234567: "1,234,567",
	}
	for in, want := range cases {
		if got := formatCount(in); got != want {
			t.Fatalf("formatCount(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitRowsSortedAndTitled(t *testing.T) {
	desc := &dataset.Descriptor{Splits: map[string]string{"validation": "180:206", "train": "0:180"}}
	rows := splitRows(desc)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Train" || rows[0][1] != "0:180" {
		t.Fatalf("unexpected first row %v", rows[0])
	}
	if rows[1][0] != "Validation" {
		t.Fatalf("unexpected second row %v", rows[1])
	}
}

func TestRenderSectionHeaderColor(t *testing.T) {
	plain := renderSectionHeader("lerobot/pusht", false)
	if plain[0] != "== lerobot/pusht ==" || len(plain[1]) != len(plain[0]) {
		t.Fatalf("unexpected header %v", plain)
	}
	colored := renderSectionHeader("lerobot/pusht", true)
	if !strings.HasPrefix(colored[0], ansiBlue) || !strings.HasSuffix(colored[0], ansiReset) {
		t.Fatalf("expected blue header, got %q", colored[0])
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"Split", "Episodes"}, [][]string{{"Train"}}, nil, false)
	if !strings.Contains(out, "Train") || !strings.Contains(out, "Episodes") {
		t.Fatalf("unexpected table:\n%s", out)
	}
	if renderTable(nil, nil, nil, false) != "" {
		t.Fatal("expected empty output without headers")
	}
}

func TestFormatOptionalValues(t *testing.T) {
	if formatOptional("  ") != "-" || formatFPS(0) != "-" || formatSizeMB(0) != "-" {
		t.Fatal("expected placeholders for empty values")
	}
	if formatFPS(29.97) != "29.97" {
		t.Fatalf("unexpected fps %q", formatFPS(29.97))
	}
}
