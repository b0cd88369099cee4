package gpg

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// isoBasicTime is the timestamp layout GnuPG uses in colon listings
// when --fixed-list-mode is not set
const isoBasicTime = "20060102T150405"

var expiryLayouts = []string{
	time.RFC3339Nano,
	isoBasicTime,
}

// ParseExpiry converts an expiry value reported by a key backend into a time.
//
// The value may be empty, an epoch number of seconds (an integer or a
// decimal string), or an already structured timestamp.
// Empty values, including a numeric zero, return the zero time meaning
// that no expiry has been set. The string "0" is not empty and
// is returned as the Unix epoch.
func ParseExpiry(value any) (time.Time, error) {
	if isEmptyExpiry(value) {
		return time.Time{}, nil
	}

	switch v := value.(type) {
	case time.Time:
		return canonicalTime(v), nil
	case *time.Time:
		return canonicalTime(*v), nil
	case string:
		return parseExpiryString(v)
	case []byte:
		return parseExpiryString(string(v))
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return parseExpiryString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return epoch(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return time.Time{}, errors.Wrapf(ErrInvalidExpiry, "epoch out of range: %d", u)
		}
		return epoch(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		// float64(math.MaxInt64) rounds up to 2^63
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return time.Time{}, errors.Wrapf(ErrInvalidExpiry, "epoch out of range: %v", f)
		}
		return epoch(int64(f)), nil
	}

	return time.Time{}, errors.Wrapf(ErrInvalidExpiry, "unsupported type %T", value)
}

// MustParseExpiry is like ParseExpiry but panics if the value can not be parsed
func MustParseExpiry(value any) time.Time {
	t, err := ParseExpiry(value)
	if err != nil {
		panic(err)
	}
	return t
}

// isEmptyExpiry reports values that mean "no expiry".
// The check is on the raw value, so "0" is not empty while 0 is.
func isEmptyExpiry(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case time.Time:
		return v.IsZero()
	case *time.Time:
		return v == nil || v.IsZero()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface, reflect.Map:
		return rv.IsNil()
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	}
	return false
}

func parseExpiryString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return epoch(n), nil
	}
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return canonicalTime(t), nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrInvalidExpiry, "unable to parse %q", s)
}

func epoch(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// canonicalTime drops the monotonic clock reading and location,
// so that equal instants compare equal with ==
func canonicalTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return t.Round(0).UTC()
}
