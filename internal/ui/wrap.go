package ui

import (
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	internalstrings "github.com/amonks/when/internal/strings"
)

// Wrap word-wraps value to width and indents every line by spaces.
func Wrap(value string, width, spaces int) string {
	value = internalstrings.NormalizeWhitespace(value)
	if value == "" {
		return ""
	}
	if width-spaces > 0 {
		value = wordwrap.String(value, width-spaces)
	}
	if spaces > 0 {
		value = indent.String(value, uint(spaces))
	}
	return strings.TrimRight(value, " ")
}
