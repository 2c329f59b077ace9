package parser

import "fmt"

// MaxIDRange bounds the span of an "a..b" id range.
const MaxIDRange = 10000

// ids is an "a..b" range or a comma-separated list.
func ids(s *scan, pos int) ([]int, int, bool) {
	return first(s, pos, intRange, intList)
}

// intRange is "a..b", inclusive. It is empty when b < a.
func intRange(s *scan, pos int) ([]int, int, bool) {
	a, end, ok := integer(s, pos)
	if !ok {
		return nil, pos, false
	}
	p := s.spaces(end)
	if p+2 > len(s.src) || s.src[p:p+2] != ".." {
		s.failAt(p, ErrLexicalMismatch, `expected ".."`)
		return nil, pos, false
	}
	b, end, ok := integer(s, s.spaces(p+2))
	if !ok {
		return nil, pos, false
	}
	if b < a {
		return []int{}, end, true
	}
	if b-a > MaxIDRange {
		s.failAt(end, ErrRangeViolation, fmt.Sprintf("range %d..%d wider than %d", a, b, MaxIDRange))
		return nil, pos, false
	}
	out := make([]int, 0, b-a+1)
	for i := a; i <= b; i++ {
		out = append(out, i)
	}
	return out, end, true
}

// intList is zero or more integers separated by commas. A comma must be
// followed by another integer.
func intList(s *scan, pos int) ([]int, int, bool) {
	n, end, ok := integer(s, pos)
	if !ok {
		return []int{}, pos, true
	}
	out := []int{n}
	for {
		sep, ok := s.padded(end, ',')
		if !ok {
			return out, end, true
		}
		if n, end, ok = integer(s, sep); !ok {
			return nil, pos, false
		}
		out = append(out, n)
	}
}
