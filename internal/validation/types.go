package validation

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Number is a float64 that also accepts numeric JSON strings, mirroring the
// coercion the storage layer used to rely on.
type Number float64

// UnmarshalJSON accepts both 12.5 and "12.5".
func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*n = Number(parsed)
	return nil
}

// Float returns the underlying value.
func (n Number) Float() float64 {
	return float64(n)
}

// Integer is an int64 that also accepts numeric JSON strings. Fractional
// values are rejected.
type Integer int64

// UnmarshalJSON accepts both 7 and "7".
func (i *Integer) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	*i = Integer(parsed)
	return nil
}

// Int returns the underlying value.
func (i Integer) Int() int64 {
	return int64(i)
}

// CanonicalDateTimeLayout is the form every date-like input is normalized to
// before it reaches the repository layer.
const CanonicalDateTimeLayout = "2006-01-02 15:04:05"

var dateTimeLayouts = []string{
	CanonicalDateTimeLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// DateTime carries a timestamp normalized to "YYYY-MM-DD HH:MM:SS". ISO-like
// inputs (with T separator, optional seconds, optional zone) are accepted.
type DateTime string

// UnmarshalJSON parses the accepted layouts and stores the canonical form.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = DateTime(parsed.Format(CanonicalDateTimeLayout))
	return nil
}

// String returns the canonical representation.
func (d DateTime) String() string {
	return string(d)
}

// Time parses the canonical representation back into a time.Time.
func (d DateTime) Time() (time.Time, error) {
	return time.Parse(CanonicalDateTimeLayout, string(d))
}

// ParseDateTime tries each accepted layout in order.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}
