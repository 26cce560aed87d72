package endpoint

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/RobJacobson/wsdot-api-client/datetime"
)

// Params maps placeholder names to values. Values may be strings,
// numbers, booleans, or times; times render as YYYY-MM-DD and
// everything else uses its default string form. Values are not
// URL-encoded — the WSDOT parameter domains (numeric IDs, dates,
// simple identifiers) are already URL-safe, and callers supplying
// anything else own the escaping.
type Params map[string]any

// ErrTemplateMismatch is the sentinel error wrapped by
// [TemplateMismatchError].
var ErrTemplateMismatch = errors.New("parameter has no placeholder in template")

// TemplateMismatchError is returned when a supplied parameter names a
// placeholder the template does not contain. Placeholders lists every
// placeholder actually present, for diagnostics.
type TemplateMismatchError struct {
	Param        string
	Placeholders []string
	Err          error
}

func (e *TemplateMismatchError) Error() string {
	return fmt.Sprintf("%v: %q, template placeholders: %v", e.Err, e.Param, e.Placeholders)
}

func (e *TemplateMismatchError) Unwrap() error {
	return e.Err
}

var placeholderRE = regexp.MustCompile(`\{([^{}]+)\}`)

// Interpolate substitutes {name} placeholders in template with the
// matching param values. Nil or empty params return the template
// unchanged. Matching is case-sensitive; a param without a placeholder
// fails before any network activity.
//
// Only the first occurrence of each placeholder is replaced. No known
// WSDOT or WSF template repeats a placeholder, so the distinction
// never arises in practice; it is documented here rather than guarded
// against.
//
// Params are processed in sorted key order so failures are
// deterministic. Pure function; no I/O.
func Interpolate(template string, params Params) (string, error) {
	if len(params) == 0 {
		return template, nil
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	out := template
	for _, key := range keys {
		placeholder := "{" + key + "}"
		if !strings.Contains(out, placeholder) {
			return "", &TemplateMismatchError{
				Param:        key,
				Placeholders: placeholders(template),
				Err:          ErrTemplateMismatch,
			}
		}

		out = strings.Replace(out, placeholder, formatValue(params[key]), 1)
	}

	return out, nil
}

// placeholders extracts the placeholder names present in template, in
// order of appearance.
func placeholders(template string) []string {
	matches := placeholderRE.FindAllStringSubmatch(template, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

func formatValue(v any) string {
	switch t := v.(type) {
	case time.Time:
		return datetime.FormatYMD(t)
	case datetime.Time:
		return datetime.FormatYMD(t.Time)
	default:
		return fmt.Sprintf("%v", t)
	}
}
