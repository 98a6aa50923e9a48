// Package unlock evaluates the condition lists that gate profile entries,
// lore, and achievements. Evaluation never fails: malformed operands fall
// back to string comparison and unknown operators keep content locked.
package unlock

import (
	"strconv"

	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/config"
)

// Unlocked reports whether every condition holds against the bindings. An
// empty or nil list is always unlocked.
func Unlocked(conditions []config.UnlockCondition, b bindings.Bindings) bool {
	for _, cond := range conditions {
		if !holds(cond, b) {
			return false
		}
	}
	return true
}

// holds evaluates one predicate. When both the bound value and the condition
// literal parse as numbers the comparison is numeric; otherwise both sides
// compare as raw strings. Absent variables compare as the empty string.
func holds(cond config.UnlockCondition, b bindings.Bindings) bool {
	bound := b.Raw(cond.Variable)

	boundNum, boundOK := parseNumber(bound)
	wantNum, wantOK := parseNumber(cond.Value)
	if boundOK && wantOK {
		return compareNumbers(cond.Operator, boundNum, wantNum)
	}
	return compareStrings(cond.Operator, bound, cond.Value)
}

func parseNumber(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func compareNumbers(op config.Operator, got, want float64) bool {
	switch op {
	case config.OpEqual:
		return got == want
	case config.OpNotEqual:
		return got != want
	case config.OpGreaterOrEqual:
		return got >= want
	case config.OpLessOrEqual:
		return got <= want
	case config.OpGreater:
		return got > want
	case config.OpLess:
		return got < want
	default:
		return false
	}
}

func compareStrings(op config.Operator, got, want string) bool {
	switch op {
	case config.OpEqual:
		return got == want
	case config.OpNotEqual:
		return got != want
	case config.OpGreaterOrEqual:
		return got >= want
	case config.OpLessOrEqual:
		return got <= want
	case config.OpGreater:
		return got > want
	case config.OpLess:
		return got < want
	default:
		return false
	}
}
