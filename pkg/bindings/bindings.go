// Package bindings models the run-time variable values a host supplies to a
// status window and the resolution rules that turn them into displayable
// text. Bindings arrive from outside once per render cycle and are never
// mutated here.
package bindings

import (
	"fmt"
	"strconv"

	"github.com/roleplaykit/go-statuswin/pkg/config"
)

// Bindings is the flat variable map supplied by the host. Values are scalars
// (string or number); anything else is stringified on read.
type Bindings map[string]any

// Raw returns the stringified bound value, or "" when the variable is
// absent, nil, or bound to an empty string. Callers that must distinguish
// "absent" from "blank" get the same answer for both, which is exactly the
// distinction the blank-default policy erases.
func (b Bindings) Raw(name string) string {
	if b == nil {
		return ""
	}
	value, ok := b[name]
	if !ok || value == nil {
		return ""
	}
	return stringify(value)
}

// Number parses the bound value as a number. The second return is false when
// the variable is absent or not numeric.
func (b Bindings) Number(name string) (float64, bool) {
	raw := b.Raw(name)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Resolver applies the configured blank-default policy on top of raw lookup.
type Resolver struct {
	settings config.GlobalSettings
}

// NewResolver builds a Resolver from the document's global settings.
func NewResolver(settings config.GlobalSettings) Resolver {
	return Resolver{settings: settings}
}

// Resolve returns the displayable value for a variable. Blank or absent
// variables resolve to the configured placeholder when UseDefaultForBlank is
// set, otherwise to the empty string. This never fails.
func (r Resolver) Resolve(b Bindings, name string) string {
	raw := b.Raw(name)
	if raw == "" {
		if r.settings.UseDefaultForBlank {
			return r.settings.BlankVariableValue
		}
		return ""
	}
	return raw
}
