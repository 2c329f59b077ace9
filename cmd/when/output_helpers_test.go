package main

import (
	"errors"
	"slices"
	"testing"

	"github.com/amonks/when/parser"
)

func TestParseIDArgs(t *testing.T) {
	p := parser.New(parser.Options{})

	tests := []struct {
		args []string
		want []int
	}{
		{[]string{"3"}, []int{3}},
		{[]string{"1,4"}, []int{1, 4}},
		{[]string{"1", "4", "7"}, []int{1, 4, 7}},
		{[]string{"2..4"}, []int{2, 3, 4}},
	}
	for _, tt := range tests {
		got, err := parseIDArgs(p, tt.args)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.args, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Fatalf("parse %q: expected %v, got %v", tt.args, tt.want, got)
		}
	}
}

func TestParseIDArgsRejects(t *testing.T) {
	p := parser.New(parser.Options{})

	if _, err := parseIDArgs(p, []string{"3..1"}); err == nil {
		t.Fatal("expected an empty range to be rejected")
	}
	_, err := parseIDArgs(p, []string{"one"})
	if !errors.Is(err, parser.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestParseID(t *testing.T) {
	if id, err := parseID(" 12 "); err != nil || id != 12 {
		t.Fatalf("expected 12, got %d (%v)", id, err)
	}
	for _, arg := range []string{"0", "-3", "abc", ""} {
		if _, err := parseID(arg); err == nil {
			t.Fatalf("expected %q to be rejected", arg)
		}
	}
}

func TestJoinArgs(t *testing.T) {
	got := joinArgs([]string{"by", " fri,", "send\tthe  report"})
	if got != "by fri, send the report" {
		t.Fatalf("unexpected join %q", got)
	}
}
