// Package diff produces line-oriented diffs between two version contents.
package diff

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Op classifies a single line of a diff.
type Op string

const (
	Added     Op = "added"
	Removed   Op = "removed"
	Unchanged Op = "unchanged"
)

// Line is one line of a diff, tagged with how it changed from a to b.
type Line struct {
	Op   Op     `json:"op"`
	Text string `json:"text"`
}

// Lines compares two contents line by line and returns every line of
// both, tagged added, removed, or unchanged. Replaced regions appear as
// the removed lines followed by the added ones.
func Lines(a, b string) []Line {
	la := splitLines(a)
	lb := splitLines(b)

	var out []Line
	m := difflib.NewMatcher(la, lb)
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for _, l := range la[op.I1:op.I2] {
				out = append(out, Line{Op: Unchanged, Text: l})
			}
		case 'd':
			for _, l := range la[op.I1:op.I2] {
				out = append(out, Line{Op: Removed, Text: l})
			}
		case 'i':
			for _, l := range lb[op.J1:op.J2] {
				out = append(out, Line{Op: Added, Text: l})
			}
		case 'r':
			for _, l := range la[op.I1:op.I2] {
				out = append(out, Line{Op: Removed, Text: l})
			}
			for _, l := range lb[op.J1:op.J2] {
				out = append(out, Line{Op: Added, Text: l})
			}
		}
	}
	return out
}

// Unified renders a unified diff of the two contents, with the given
// header labels and number of context lines.
func Unified(a, b, fromLabel, toLabel string, context int) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: fromLabel,
		ToFile:   toLabel,
		Context:  context,
	}
	return difflib.GetUnifiedDiffString(ud)
}

// splitLines splits content on newlines without keeping the line
// terminators. A trailing newline does not produce a phantom empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
