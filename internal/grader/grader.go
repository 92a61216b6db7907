package grader

import (
	"fmt"
	"strings"
)

// Grader decides whether a selected option answers a question.
// Implementations must be pure: the same inputs always grade the same way.
type Grader interface {
	Grade(selected, answer string) bool
}

// Exact grades by byte-for-byte equality: no trimming, case-sensitive.
// This is the default policy.
type Exact struct{}

var _ Grader = Exact{}

func (Exact) Grade(selected, answer string) bool {
	return selected == answer
}

// Normalized ignores surrounding whitespace and letter case, for data sets
// whose answer text drifts from the matching option.
type Normalized struct{}

var _ Grader = Normalized{}

func (Normalized) Grade(selected, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(selected), strings.TrimSpace(answer))
}

// FromName maps a configuration value to a policy.
func FromName(name string) (Grader, error) {
	switch name {
	case "", "exact":
		return Exact{}, nil
	case "normalized":
		return Normalized{}, nil
	}
	return nil, fmt.Errorf("unknown answer match policy %q: must be exact or normalized", name)
}
