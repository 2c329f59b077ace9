package timeframe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidEncoding is returned when stored timeframe text cannot be decoded.
var ErrInvalidEncoding = errors.New("invalid timeframe encoding")

const openSide = "_"

// MarshalText encodes the timeframe in its storage form:
//
//	""     Whenever
//	"a"    FixPoint
//	"_,b"  By
//	"a,_"  From
//	"a,b"  Between
//
// where each moment is its Unix milliseconds, prefixed by "." when it has
// second precision.
func (tf Timeframe) MarshalText() ([]byte, error) {
	var s string
	switch tf.kind {
	case KindWhenever:
		s = ""
	case KindFixPoint:
		s = encodeMoment(tf.start)
	case KindBy:
		s = openSide + "," + encodeMoment(tf.end)
	case KindFrom:
		s = encodeMoment(tf.start) + "," + openSide
	case KindBetween:
		s = encodeMoment(tf.start) + "," + encodeMoment(tf.end)
	default:
		return nil, fmt.Errorf("%w: unknown kind %s", ErrInvalidEncoding, tf.kind)
	}
	return []byte(s), nil
}

// UnmarshalText decodes the storage form written by MarshalText. Stored
// windows are trusted and not re-validated.
func (tf *Timeframe) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		*tf = Whenever()
		return nil
	}

	parts := strings.Split(s, ",")
	switch len(parts) {
	case 1:
		m, err := decodeMoment(parts[0])
		if err != nil {
			return err
		}
		*tf = FixPoint(m)
		return nil
	case 2:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEncoding, s)
	}

	switch {
	case parts[0] == openSide && parts[1] == openSide:
		return fmt.Errorf("%w: %q", ErrInvalidEncoding, s)
	case parts[0] == openSide:
		m, err := decodeMoment(parts[1])
		if err != nil {
			return err
		}
		*tf = By(m)
	case parts[1] == openSide:
		m, err := decodeMoment(parts[0])
		if err != nil {
			return err
		}
		*tf = From(m)
	default:
		start, err := decodeMoment(parts[0])
		if err != nil {
			return err
		}
		end, err := decodeMoment(parts[1])
		if err != nil {
			return err
		}
		*tf = Timeframe{kind: KindBetween, start: start, end: end}
	}
	return nil
}

func encodeMoment(m Moment) string {
	ms := strconv.FormatInt(m.UnixMilli(), 10)
	if m.IsPrecise() {
		return "." + ms
	}
	return ms
}

func decodeMoment(s string) (Moment, error) {
	p := Day
	if rest, ok := strings.CutPrefix(s, "."); ok {
		p = Second
		s = rest
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Moment{}, fmt.Errorf("%w: moment %q: %w", ErrInvalidEncoding, s, err)
	}
	return MomentFromUnixMilli(ms, p), nil
}
