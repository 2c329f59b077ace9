package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateTableCellCountsRunes(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth-1) + "é"

	if got := TruncateTableCell(value); got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellAddsEllipsis(t *testing.T) {
	value := strings.Repeat("b", tableCellMaxWidth+10)

	got := TruncateTableCell(value)
	if lipgloss.Width(got) != tableCellMaxWidth {
		t.Fatalf("expected width %d, got %d", tableCellMaxWidth, lipgloss.Width(got))
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Fatalf("expected ellipsis, got %q", got)
	}
}

func TestTruncateTableCellIgnoresANSICodes(t *testing.T) {
	value := "\x1b[1m\x1b[36m" + strings.Repeat("a", tableCellMaxWidth) + "\x1b[0m"

	if got := TruncateTableCell(value); got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestFormatTableNormalizesLineBreaks(t *testing.T) {
	got := FormatTable([]string{"CONTENT"}, [][]string{{"call\nmum"}})

	expected := "CONTENT\ncall mum\n"
	if got != expected {
		t.Fatalf("expected normalized table output, got %q", got)
	}
}

func TestFormatTableAlignsStyledCells(t *testing.T) {
	headers := []string{"ID", "WHEN", "CONTENT"}
	rows := [][]string{
		{"1", "\x1b[1mToday\x1b[0m", "call mum"},
		{"12", "Whenever", "read"},
	}

	got := FormatTable(headers, rows)

	expected := "" +
		"ID  WHEN      CONTENT\n" +
		"1   \x1b[1mToday\x1b[0m     call mum\n" +
		"12  Whenever  read\n"
	if got != expected {
		t.Fatalf("unexpected table:\n%q\nwant:\n%q", got, expected)
	}
}

func TestTableBuilder(t *testing.T) {
	builder := NewTableBuilder([]string{"ID", "CONTENT"}, 1)
	builder.AddRow([]string{"3", "water plants"})

	expected := "ID  CONTENT\n3   water plants\n"
	if got := builder.String(); got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}
