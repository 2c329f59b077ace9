// Package parser reads free-form scheduling phrases such as "by 25 oct",
// "12 nov 11, 8:30pm" or "mon from 9am to noon" into timeframe values.
//
// The grammar is made of small rules. Where phrasings overlap, the rule
// that consumes the most text wins and declaration order breaks ties, so
// "13/12/11" is a full date and not "13/12" followed by "11". Relative
// phrases (today, next fri, 9pm) are resolved against one reference instant
// read once per call.
package parser

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/amonks/when/timeframe"
)

// MaxInputLength is the longest text a Parser accepts.
const MaxInputLength = 512

// Options configures a Parser.
type Options struct {
	// Now returns the reference instant. Defaults to time.Now.
	Now func() time.Time
	// Logger receives rejected inputs at debug level. Defaults to a no-op
	// logger.
	Logger *zap.Logger
}

// Parser parses scheduling phrases. It holds no mutable state and is safe
// for concurrent use.
type Parser struct {
	now    func() time.Time
	logger *zap.Logger
}

// New returns a Parser.
func New(opts Options) *Parser {
	p := &Parser{now: opts.Now, logger: opts.Logger}
	if p.now == nil {
		p.now = time.Now
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

// ParseTimeframe parses the whole of text as a timeframe. Empty text is
// Whenever.
func (p *Parser) ParseTimeframe(text string) (timeframe.Timeframe, error) {
	return run(p, "timeframe", text, timeframeRule)
}

// ParseTask splits text into a timeframe and the task content after it.
//
// When text contains "|", the timeframe is everything before the bar.
// Otherwise the longest timeframe at the start of the text is taken, and the
// content starts after the following comma, dash or spaces. Text with no
// leading timeframe is Whenever.
func (p *Parser) ParseTask(text string) (string, timeframe.Timeframe, error) {
	r := looseTask
	if isStrict(text) {
		r = strictTask
	}
	t, err := run(p, "task", text, r)
	if err != nil {
		return "", timeframe.Timeframe{}, err
	}
	return t.content, t.tf, nil
}

// ParseIDList parses "a..b" or a comma-separated list of ids.
func (p *Parser) ParseIDList(text string) ([]int, error) {
	return run(p, "list of ids", text, ids)
}

// ParseMoment parses text as a single date and/or time.
func (p *Parser) ParseMoment(text string) (timeframe.Moment, error) {
	return run(p, "date or time", text, moment)
}

func run[T any](p *Parser, what, text string, r rule[T]) (T, error) {
	var zero T
	trimmed := strings.TrimSpace(text)
	if len(trimmed) > MaxInputLength {
		return zero, p.reject(&Error{Input: text, What: what, Kind: ErrInputTooLong, Offset: MaxInputLength})
	}

	s := newScan(trimmed, p.now())
	v, end, ok := r(s, 0)
	if m := s.mismatch; m != nil {
		return zero, p.reject(&Error{Input: text, What: what, Kind: m.kind, Offset: m.pos, Detail: m.detail})
	}
	if ok && end == len(trimmed) {
		return v, nil
	}

	err := &Error{Input: text, What: what, Kind: ErrLexicalMismatch}
	switch {
	case ok && (s.fail.pos <= end || s.fail.kind == ErrLexicalMismatch):
		err.Kind, err.Offset = ErrTrailingInput, end
		err.Detail = "unexpected " + quoteSnippet(trimmed[end:])
	case s.fail.kind != nil:
		err.Kind, err.Offset, err.Detail = s.fail.kind, s.fail.pos, s.fail.detail
	}
	return zero, p.reject(err)
}

func (p *Parser) reject(err *Error) error {
	p.logger.Debug("rejected input",
		zap.String("what", err.What),
		zap.String("input", err.Input),
		zap.Error(err),
	)
	return err
}

func quoteSnippet(s string) string {
	const limit = 20
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return `"` + s + `"`
}
