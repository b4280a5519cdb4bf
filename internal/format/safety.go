package format

import (
	"fmt"
	"regexp"
	"strconv"
)

// Regex evaluation is defensively bounded: titles are capped before
// matching and configured patterns go through a load-time gate that
// rejects constructs prone to catastrophic backtracking. Go's RE2 engine
// does not backtrack, but configured formats travel between systems and
// the gate keeps them portable and keeps worst-case match cost sane.
const (
	maxInputLength   = 1024
	maxPatternLength = 512
	maxRepeatBound   = 100
)

type dangerousConstruct struct {
	re     *regexp.Regexp
	reason string
}

var dangerousConstructs = []dangerousConstruct{
	// nested quantifiers: (a+)+ or (a*)*
	{regexp.MustCompile(`\([^)]*[+*]\)\s*[+*{]`), "nested quantifier"},
	// quantified branch inside a quantified alternation: (a+|b)*
	{regexp.MustCompile(`\([^)]*[+*][^)]*\|[^)]*\)[+*]`), "quantified alternation"},
	{regexp.MustCompile(`\([^)]*\|[^)]*[+*][^)]*\)[+*]`), "quantified alternation"},
	// long character class with an unbounded quantifier
	{regexp.MustCompile(`\[[^\]]{30,}\][+*]`), "long quantified character class"},
}

var repeatBoundRegex = regexp.MustCompile(`\{(\d+)(,)?(\d*)\}`)

// capInput bounds the string a configured pattern runs against.
func capInput(s string) string {
	if len(s) > maxInputLength {
		return s[:maxInputLength]
	}
	return s
}

// ValidatePattern is the load-time gate for every configurable regular
// expression. It rejects rather than risks a hang: a format with an
// unsafe pattern is skipped entirely.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("empty pattern")
	}
	if len(pattern) > maxPatternLength {
		return fmt.Errorf("pattern exceeds %d characters", maxPatternLength)
	}
	if _, err := regexp.Compile(`(?i)` + pattern); err != nil {
		return fmt.Errorf("pattern does not compile: %w", err)
	}
	for _, d := range dangerousConstructs {
		if d.re.MatchString(pattern) {
			return fmt.Errorf("unsafe pattern (%s)", d.reason)
		}
	}
	for _, m := range repeatBoundRegex.FindAllStringSubmatch(pattern, -1) {
		low, _ := strconv.Atoi(m[1])
		// {n,} with no upper bound is unbounded, same as *
		if m[2] == "," && m[3] == "" {
			return fmt.Errorf("unbounded repetition {%d,}", low)
		}
		high := low
		if m[3] != "" {
			high, _ = strconv.Atoi(m[3])
		}
		if low > maxRepeatBound || high > maxRepeatBound {
			return fmt.Errorf("repetition bound exceeds %d", maxRepeatBound)
		}
	}
	return nil
}
