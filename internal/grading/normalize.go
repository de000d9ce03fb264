// Package grading holds the pure answer-checking rules: text normalization,
// label-set parsing and per-type correctness.
package grading

import "strings"

// Normalize trims surrounding whitespace and lowercases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SameText compares two answers ignoring case and surrounding whitespace.
func SameText(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// ParseTrueFalse accepts T, TRUE, F and FALSE in any case. ok is false for
// anything else.
func ParseTrueFalse(s string) (value, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "T", "TRUE":
		return true, true
	case "F", "FALSE":
		return false, true
	}
	return false, false
}

// TrueFalseKey is the stored form of a true/false answer.
func TrueFalseKey(value bool) string {
	if value {
		return "T"
	}
	return "F"
}

// ParseLabels turns a string of concatenated labels ("ca", "A C", "ACA") into
// an ordered set of uppercase letters. Anything that is not a letter is
// ignored and repeats keep their first position.
func ParseLabels(s string) []string {
	s = strings.ToUpper(strings.TrimSpace(s))

	labels := make([]string, 0, len(s))
	seen := make(map[rune]bool, len(s))
	for _, c := range s {
		if c < 'A' || c > 'Z' || seen[c] {
			continue
		}
		seen[c] = true
		labels = append(labels, string(c))
	}
	return labels
}

// SameLabelSet reports whether chosen and correct hold the same labels,
// regardless of order. chosen is expected to be duplicate-free, as returned
// by ParseLabels.
func SameLabelSet(chosen, correct []string) bool {
	if len(chosen) != len(correct) {
		return false
	}

	want := make(map[string]bool, len(correct))
	for _, l := range correct {
		want[l] = true
	}
	for _, l := range chosen {
		if !want[l] {
			return false
		}
	}
	return true
}
