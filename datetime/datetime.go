// Package datetime handles the two date formats the WSDOT and WSF APIs
// speak: calendar dates in URL paths (YYYY-MM-DD) and the WCF-serialized
// timestamps the APIs return in JSON bodies (`/Date(<ms>[±HHMM])/`).
package datetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrBadTimestamp is the sentinel error wrapped when a serialized
// timestamp cannot be parsed.
var ErrBadTimestamp = errors.New("malformed /Date()/ timestamp")

// FormatYMD renders t as a zero-padded YYYY-MM-DD string using the
// value's own calendar fields. The local date is what the schedule
// endpoints expect; converting to UTC first would shift sailings near
// midnight onto the wrong day.
func FormatYMD(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// Time is a time.Time that marshals to and from the WCF JSON date
// format used by every WSDOT and WSF endpoint:
//
//	"/Date(1713744000000-0700)/"
//
// The number is milliseconds since the Unix epoch; the optional ±HHMM
// suffix is the server-side UTC offset. JSON null and the literal
// "/Date(null)/" both decode to the zero value.
type Time struct {
	time.Time
}

// NewTime wraps a time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// UnmarshalJSON implements json.Unmarshaler for the WCF date format.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		t.Time = time.Time{}
		return nil
	}

	s = strings.Trim(s, `"`)
	// The wire form often arrives with escaped slashes: "\/Date(...)\/".
	s = strings.ReplaceAll(s, `\/`, `/`)

	body, ok := strings.CutPrefix(s, "/Date(")
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadTimestamp, s)
	}
	body, ok = strings.CutSuffix(body, ")/")
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadTimestamp, s)
	}

	if body == "null" || body == "" {
		t.Time = time.Time{}
		return nil
	}

	ms, offset, err := splitOffset(body)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadTimestamp, s)
	}

	parsed := time.UnixMilli(ms)
	if offset != nil {
		parsed = parsed.In(time.FixedZone("", *offset))
	} else {
		parsed = parsed.UTC()
	}

	t.Time = parsed

	return nil
}

// MarshalJSON implements json.Marshaler, producing the same WCF shape
// the APIs emit so fixtures and recorded responses round-trip.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	_, offsetSec := t.Zone()
	if offsetSec == 0 {
		return []byte(fmt.Sprintf(`"/Date(%d)/"`, t.UnixMilli())), nil
	}

	sign := "+"
	if offsetSec < 0 {
		sign = "-"
		offsetSec = -offsetSec
	}

	return []byte(fmt.Sprintf(`"/Date(%d%s%02d%02d)/"`,
		t.UnixMilli(), sign, offsetSec/3600, (offsetSec%3600)/60)), nil
}

// splitOffset separates "1713744000000-0700" into epoch milliseconds
// and an optional offset in seconds. The leading character may be a
// sign belonging to the millisecond value itself, so only a sign after
// the first digit run terminates the number.
func splitOffset(body string) (int64, *int, error) {
	cut := -1
	for i := 1; i < len(body); i++ {
		if body[i] == '+' || body[i] == '-' {
			cut = i
			break
		}
	}

	msPart, offPart := body, ""
	if cut > 0 {
		msPart, offPart = body[:cut], body[cut:]
	}

	ms, err := strconv.ParseInt(msPart, 10, 64)
	if err != nil {
		return 0, nil, err
	}

	if offPart == "" {
		return ms, nil, nil
	}
	if len(offPart) != 5 {
		return 0, nil, fmt.Errorf("offset %q must be ±HHMM", offPart)
	}

	hours, err := strconv.Atoi(offPart[1:3])
	if err != nil {
		return 0, nil, err
	}
	mins, err := strconv.Atoi(offPart[3:5])
	if err != nil {
		return 0, nil, err
	}

	offset := hours*3600 + mins*60
	if offPart[0] == '-' {
		offset = -offset
	}

	return ms, &offset, nil
}
