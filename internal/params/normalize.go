package params

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Order is the direction results are sorted in.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Orders lists every accepted Order.
var Orders = []Order{OrderAsc, OrderDesc}

// SortMethod is a sort accepted by the questions endpoint.
type SortMethod string

const (
	SortActivity SortMethod = "activity"
	SortVotes    SortMethod = "votes"
	SortCreation SortMethod = "creation"
	SortHot      SortMethod = "hot"
	SortWeek     SortMethod = "week"
	SortMonth    SortMethod = "month"
)

// SortMethods lists every accepted SortMethod.
var SortMethods = []SortMethod{SortActivity, SortVotes, SortCreation, SortHot, SortWeek, SortMonth}

// BoundPolicy says how min and max are typed for a sort.
type BoundPolicy int

const (
	// BoundNone: the API defines no min/max for the sort.
	BoundNone BoundPolicy = iota
	// BoundDate: min/max are epoch timestamps.
	BoundDate
	// BoundCount: min/max are plain integers.
	BoundCount
)

func (s SortMethod) BoundPolicy() BoundPolicy {
	switch s {
	case SortActivity, SortCreation:
		return BoundDate
	case SortVotes:
		return BoundCount
	default:
		return BoundNone
	}
}

// Representable range for timestamps: 0001-01-01T00:00:00Z to 9999-12-31T23:59:59Z.
const (
	minUnix int64 = -62135596800
	maxUnix int64 = 253402300799
)

// Offset-aware layouts are tried first; the naive ones parse as UTC.
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Bound is an inclusive integer limit for NormalizeInteger.
type Bound struct {
	n     int
	upper bool
}

func Lower(n int) Bound { return Bound{n: n} }
func Upper(n int) Bound { return Bound{n: n, upper: true} }

// NormalizeInteger extracts an int from an integer, a float (truncated) or a
// numeric string, and checks it against the given bounds. Lower bounds are
// checked before upper bounds.
func NormalizeInteger(name string, value any, bounds ...Bound) (int, error) {
	if isZero(value) {
		return 0, invalid(name, value, ErrMissingValue, "")
	}

	n, ok := toInt(value)
	if !ok {
		return 0, invalid(name, value, ErrNotANumber, "")
	}

	for _, b := range bounds {
		if !b.upper && n < b.n {
			return 0, invalid(name, value, ErrBelowLower, strconv.Itoa(b.n))
		}
	}
	for _, b := range bounds {
		if b.upper && n > b.n {
			return 0, invalid(name, value, ErrAboveUpper, strconv.Itoa(b.n))
		}
	}
	return n, nil
}

// NormalizeOrder matches value case-insensitively against Orders.
func NormalizeOrder(value any) (Order, error) {
	if isZero(value) {
		return "", invalid("order", value, ErrMissingValue, "")
	}
	want := Order(token(value))
	for _, o := range Orders {
		if o == want {
			return o, nil
		}
	}
	return "", invalid("order", value, ErrInvalidOrder, "")
}

// NormalizeSort matches value case-insensitively against SortMethods.
func NormalizeSort(value any) (SortMethod, error) {
	if isZero(value) {
		return "", invalid("sort", value, ErrMissingValue, "")
	}
	want := SortMethod(token(value))
	for _, s := range SortMethods {
		if s == want {
			return s, nil
		}
	}
	return "", invalid("sort", value, ErrInvalidSort, "")
}

// NormalizeTimestamp converts an epoch number, a numeric string, an ISO-8601
// date or date-time string, or a time.Time into epoch seconds. Strings
// without an offset are read as UTC.
func NormalizeTimestamp(name string, value any) (int64, error) {
	if isZero(value) {
		return 0, invalid(name, value, ErrMissingValue, "")
	}
	ts, ok := toTimestamp(value)
	if !ok || ts < minUnix || ts > maxUnix {
		return 0, invalid(name, value, ErrInvalidTimestamp, "")
	}
	return ts, nil
}

func toTimestamp(value any) (int64, bool) {
	switch v := value.(type) {
	case time.Time:
		return v.Unix(), true
	case *time.Time:
		if v == nil {
			return 0, false
		}
		return v.Unix(), true
	case float32:
		return floatToInt64(float64(v))
	case float64:
		return floatToInt64(v)
	case string:
		return parseTimestamp(v)
	case json.Number:
		return parseTimestamp(string(v))
	}
	return asInt64(value)
}

func parseTimestamp(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Unix(), true
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func toInt(value any) (int, bool) {
	var n int64
	var ok bool
	switch v := value.(type) {
	case float32:
		n, ok = floatToInt64(float64(v))
	case float64:
		n, ok = floatToInt64(v)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		n, ok = parsed, err == nil
	case json.Number:
		parsed, err := strconv.ParseInt(string(v), 10, 64)
		n, ok = parsed, err == nil
	default:
		n, ok = asInt64(value)
	}
	if !ok || n < math.MinInt || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return uintToInt64(uint64(v))
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return uintToInt64(v)
	}
	return 0, false
}

func uintToInt64(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// isZero reports the empty or zero-like inputs rejected as missing.
func isZero(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case json.Number:
		return v == ""
	case Order:
		return v == ""
	case SortMethod:
		return v == ""
	case time.Time:
		return v.IsZero()
	case *time.Time:
		return v == nil || v.IsZero()
	case float32:
		return v == 0
	case float64:
		return v == 0
	}
	if n, ok := asInt64(value); ok {
		return n == 0
	}
	return false
}

func token(value any) string {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	return strings.ToLower(strings.TrimSpace(s))
}
