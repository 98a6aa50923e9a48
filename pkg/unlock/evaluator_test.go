package unlock_test

import (
	"testing"

	"github.com/roleplaykit/go-statuswin/pkg/bindings"
	"github.com/roleplaykit/go-statuswin/pkg/config"
	"github.com/roleplaykit/go-statuswin/pkg/unlock"
)

func cond(variable string, op config.Operator, value string) config.UnlockCondition {
	return config.UnlockCondition{Variable: variable, Operator: op, Value: value}
}

func TestUnlockedEmptyConditions(t *testing.T) {
	if !unlock.Unlocked(nil, nil) {
		t.Error("nil conditions should unlock")
	}
	if !unlock.Unlocked([]config.UnlockCondition{}, bindings.Bindings{}) {
		t.Error("empty conditions should unlock")
	}
}

func TestUnlockedNumericComparison(t *testing.T) {
	vars := bindings.Bindings{"trust": "42", "chapter": 3}

	tests := []struct {
		name string
		cond config.UnlockCondition
		want bool
	}{
		{"gte holds", cond("trust", config.OpGreaterOrEqual, "40"), true},
		{"gte fails", cond("trust", config.OpGreaterOrEqual, "50"), false},
		{"eq numeric not lexicographic", cond("trust", config.OpEqual, "42.0"), true},
		{"lt holds", cond("trust", config.OpLess, "100"), true},
		{"gt on int binding", cond("chapter", config.OpGreater, "2"), true},
		{"neq fails on match", cond("trust", config.OpNotEqual, "42"), false},
		{"lte boundary", cond("trust", config.OpLessOrEqual, "42"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unlock.Unlocked([]config.UnlockCondition{tt.cond}, vars)
			if got != tt.want {
				t.Errorf("Unlocked(%+v) = %v, want %v", tt.cond, got, tt.want)
			}
		})
	}
}

func TestUnlockedStringComparison(t *testing.T) {
	vars := bindings.Bindings{"mood": "angry", "flag": "true"}

	tests := []struct {
		name string
		cond config.UnlockCondition
		want bool
	}{
		{"eq string", cond("mood", config.OpEqual, "angry"), true},
		{"eq mismatch", cond("mood", config.OpEqual, "calm"), false},
		{"neq string", cond("mood", config.OpNotEqual, "calm"), true},
		{"boolean literal compares as string", cond("flag", config.OpEqual, "true"), true},
		{"ordering falls back to lexicographic", cond("mood", config.OpLess, "baseline"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unlock.Unlocked([]config.UnlockCondition{tt.cond}, vars)
			if got != tt.want {
				t.Errorf("Unlocked(%+v) = %v, want %v", tt.cond, got, tt.want)
			}
		})
	}
}

func TestUnlockedMixedOperandsUseStrings(t *testing.T) {
	// One side numeric, one side not: both compare as strings, so "9" is
	// greater than "10" lexicographically.
	vars := bindings.Bindings{"rank": "9th"}
	c := cond("rank", config.OpGreater, "10")
	if !unlock.Unlocked([]config.UnlockCondition{c}, vars) {
		t.Error("mixed operands should fall back to string comparison")
	}
}

func TestUnlockedAbsentVariable(t *testing.T) {
	c := cond("missing", config.OpEqual, "")
	if !unlock.Unlocked([]config.UnlockCondition{c}, bindings.Bindings{}) {
		t.Error("absent variable should compare as the empty string")
	}
	c = cond("missing", config.OpGreaterOrEqual, "1")
	if unlock.Unlocked([]config.UnlockCondition{c}, bindings.Bindings{}) {
		t.Error("absent variable should not satisfy a numeric threshold")
	}
}

func TestUnlockedUnknownOperatorLocks(t *testing.T) {
	c := config.UnlockCondition{Variable: "trust", Operator: "~=", Value: "42"}
	vars := bindings.Bindings{"trust": "42"}
	if unlock.Unlocked([]config.UnlockCondition{c}, vars) {
		t.Error("unknown operator must keep content locked")
	}
}

func TestUnlockedConjunction(t *testing.T) {
	conditions := []config.UnlockCondition{
		cond("trust", config.OpGreaterOrEqual, "40"),
		cond("mood", config.OpEqual, "angry"),
	}
	vars := bindings.Bindings{"trust": "50", "mood": "angry"}
	if !unlock.Unlocked(conditions, vars) {
		t.Error("all conditions hold, should unlock")
	}
	vars["mood"] = "calm"
	if unlock.Unlocked(conditions, vars) {
		t.Error("one failing condition must lock")
	}
}
