// Package age defines the age value, its parsing rules, and the
// child/adult classification.
package age

import (
	"fmt"
	"strconv"
	"strings"
)

// AdultAge is the classification threshold: any age strictly below it is
// reported as a child.
const AdultAge = 18

// Age is one parsed age value. The 8-bit signed range is part of the
// contract: text outside -128..127 is a parse failure, while negative
// values are accepted and classify as child.
type Age int8

// Verdict is the terminal classification of a run.
type Verdict int

const (
	VerdictChild Verdict = iota
	VerdictAdult
)

// String returns the literal output text for the verdict.
func (v Verdict) String() string {
	if v == VerdictAdult {
		return "adult"
	}
	return "child"
}

// Parse converts user-supplied text into an Age. The text is trimmed of
// surrounding whitespace and parsed as base-10. Non-numeric text, an empty
// string, and values outside the 8-bit signed range all fail the same way.
func Parse(s string) (Age, error) {
	trimmed := strings.TrimSpace(s)
	n, err := strconv.ParseInt(trimmed, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid age %q: %w", trimmed, err)
	}
	return Age(n), nil
}

// Classify reports whether an age falls below the adult threshold.
func Classify(a Age) Verdict {
	if a < AdultAge {
		return VerdictChild
	}
	return VerdictAdult
}
