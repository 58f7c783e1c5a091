package ui

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTable(t *testing.T) {
	got := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"ab", "short"},
			{"cdef", "a longer title"},
		},
	)
	want := "ID    TITLE\n" +
		"ab    short\n" +
		"cdef  a longer title\n"
	if got != want {
		t.Fatalf("FormatTable =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatTableIgnoresANSIWidth(t *testing.T) {
	styled := "\x1b[1m\x1b[36mab\x1b[0mcd"
	got := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{styled, "x"},
			{"abcd", "y"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), got)
	}
	styledCol := strings.Index(ansiPattern.ReplaceAllString(lines[1], ""), "x")
	plainCol := strings.Index(lines[2], "y")
	if styledCol != plainCol {
		t.Fatalf("styled row column %d != plain row column %d:\n%s", styledCol, plainCol, got)
	}
}

func TestTruncateTableCell(t *testing.T) {
	if got := TruncateTableCell("short"); got != "short" {
		t.Errorf("TruncateTableCell(short) = %q", got)
	}

	long := strings.Repeat("x", 80)
	got := TruncateTableCell(long)
	if len(got) != tableCellMaxWidth {
		t.Errorf("truncated length = %d, want %d", len(got), tableCellMaxWidth)
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Errorf("truncated cell %q lacks ellipsis", got)
	}

	if got := TruncateTableCell("line one\nline two"); got != "line one line two" {
		t.Errorf("newlines not flattened: %q", got)
	}
}

func TestFormatDueDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		due  time.Time
		want string
	}{
		{time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC), "Today"},
		{time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), "Tomorrow"},
		{time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC), "Yesterday"},
		{time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), "Dec 25, 2026"},
		{time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), "Aug 1, 2026"},
	}
	for _, tt := range tests {
		if got := FormatDueDate(tt.due, now); got != tt.want {
			t.Errorf("FormatDueDate(%v) = %q, want %q", tt.due, got, tt.want)
		}
	}
}

func TestFormatDurationShort(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m"},
		{2 * time.Hour, "2h"},
		{49 * time.Hour, "2d"},
		{-time.Minute, "0s"},
	}
	for _, tt := range tests {
		if got := FormatDurationShort(tt.in); got != tt.want {
			t.Errorf("FormatDurationShort(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	if got := FormatTimeAgo(now.Add(-5*time.Minute), now); got != "5m ago" {
		t.Errorf("FormatTimeAgo = %q", got)
	}
	if got := FormatTimeAgo(time.Time{}, now); got != "-" {
		t.Errorf("FormatTimeAgo of zero time = %q", got)
	}
	if got := FormatTimeAgo(now.Add(time.Hour), now); got != "-" {
		t.Errorf("FormatTimeAgo of future time = %q", got)
	}
}

func TestUniqueIDPrefixLengths(t *testing.T) {
	lengths := UniqueIDPrefixLengths([]string{"abc123", "abd456", "xyz789"})

	if lengths["abc123"] != 3 {
		t.Errorf("prefix length of abc123 = %d, want 3", lengths["abc123"])
	}
	if lengths["abd456"] != 3 {
		t.Errorf("prefix length of abd456 = %d, want 3", lengths["abd456"])
	}
	if lengths["xyz789"] != 1 {
		t.Errorf("prefix length of xyz789 = %d, want 1", lengths["xyz789"])
	}
}

func TestHighlightIDWithoutTTY(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := HighlightID("abc123", 3); got != "abc123" {
		t.Errorf("HighlightID = %q, want plain ID without a terminal", got)
	}
}
