package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	internalstrings "github.com/amonks/when/internal/strings"
	"github.com/amonks/when/parser"
)

func encodeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// joinArgs turns the words of a command line back into one phrase.
func joinArgs(args []string) string {
	return internalstrings.NormalizeWhitespace(strings.Join(args, " "))
}

// parseIDArgs reads ids given as "3", "1,4", "2..6" or "1 4 7".
func parseIDArgs(p *parser.Parser, args []string) ([]int, error) {
	ids, err := p.ParseIDList(strings.Join(args, ", "))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no task ids in %q", strings.Join(args, " "))
	}
	return ids, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}
