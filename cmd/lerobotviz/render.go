package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"lerobotviz/internal/dataset"
)

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"
)

var countPrinter = message.NewPrinter(language.English)

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatCount groups digits for display, e.g. 25650 -> "25,650".
func formatCount(n int64) string {
	return countPrinter.Sprintf("%d", n)
}

func formatOptional(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatFPS(fps float64) string {
	if fps == 0 {
		return "-"
	}
	return strconv.FormatFloat(fps, 'f', -1, 64)
}

func formatSizeMB(mb float64) string {
	if mb == 0 {
		return "-"
	}
	return countPrinter.Sprintf("%.1f MB", mb)
}

// splitRows returns one row per split, ordered by split name.
func splitRows(desc *dataset.Descriptor) [][]string {
	names := desc.SplitNames()
	caser := cases.Title(language.Und)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{caser.String(name), desc.Splits[name]})
	}
	return rows
}
