// Package overlap resolves conflicting candidate substitutions within one
// text pass. Candidates carry a byte span, a priority and a precomputed
// replacement; Resolve picks a pairwise non-overlapping subset by priority
// interval scheduling and Apply splices the survivors into the text.
//
// Rejected candidates are simply dropped for the pass. A rule whose match was
// rejected may match again in a later pipeline stage once the surrounding
// text has changed; overlap arbitration is local to a single pass.
package overlap

import (
	"regexp"
	"sort"
	"strings"

	"github.com/FocuswithJustin/typograf/core/errors"
)

// Candidate is one proposed substitution: replace text[Start:End] with
// Replacement. Rule names the owning correction rule for diagnostics.
type Candidate struct {
	Start       int
	End         int
	Priority    int
	Rule        string
	Replacement string
}

// Resolve selects a pairwise non-overlapping subset of candidates.
//
// Policy: sort by descending priority, then ascending start offset, then
// descending length; greedily accept a candidate only if its span does not
// intersect any already-accepted span. The equal-priority tie-break is
// therefore leftmost-then-longest. Empty and inverted spans are dropped: a
// zero-width candidate carries no matched text to replace, and one sitting on
// an accepted span's boundary would pass the intersection test only for Apply
// to reject the set. The returned slice is ordered by start offset, shorter
// span first on equal starts.
func Resolve(cands []Candidate) []Candidate {
	ordered := make([]Candidate, len(cands))
	copy(ordered, cands)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End-a.Start > b.End-b.Start
	})

	var accepted []Candidate
	for _, c := range ordered {
		if c.End <= c.Start {
			continue
		}
		conflict := false
		for _, a := range accepted {
			if c.Start < a.End && c.End > a.Start {
				conflict = true
				break
			}
		}
		if !conflict {
			accepted = append(accepted, c)
		}
	}

	sort.Slice(accepted, func(i, j int) bool {
		if accepted[i].Start != accepted[j].Start {
			return accepted[i].Start < accepted[j].Start
		}
		return accepted[i].End < accepted[j].End
	})
	return accepted
}

// Apply splices the accepted candidates into text. The candidates must be
// pairwise non-overlapping and within bounds; a violation means Resolve was
// bypassed or broken and is reported as an invariant error rather than
// producing corrupted output.
func Apply(text string, accepted []Candidate) (string, error) {
	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, c := range accepted {
		if c.Start < prev || c.End > len(text) {
			return "", errors.NewInvariant("overlap.Apply", "accepted spans overlap or exceed bounds")
		}
		b.WriteString(text[prev:c.Start])
		b.WriteString(c.Replacement)
		prev = c.End
	}
	b.WriteString(text[prev:])
	return b.String(), nil
}

// Gather builds candidates for every match of re in text. The expand
// callback receives the submatches (group 0 is the full match) and returns
// the replacement for that match.
func Gather(text string, re *regexp.Regexp, priority int, rule string, expand func(groups []string) string) []Candidate {
	var cands []Candidate
	for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
		groups := make([]string, len(idx)/2)
		for g := range groups {
			if idx[2*g] >= 0 {
				groups[g] = text[idx[2*g]:idx[2*g+1]]
			}
		}
		cands = append(cands, Candidate{
			Start:       idx[0],
			End:         idx[1],
			Priority:    priority,
			Rule:        rule,
			Replacement: expand(groups),
		})
	}
	return cands
}

// Pass runs one full gather-resolve-apply cycle for a single rule.
func Pass(text string, re *regexp.Regexp, priority int, rule string, expand func(groups []string) string) (string, error) {
	accepted := Resolve(Gather(text, re, priority, rule, expand))
	return Apply(text, accepted)
}

// maxIterations bounds ReplaceIterative. Correction rules shrink or preserve
// the set of remaining matches, so the fixed point is reached long before
// this in practice.
const maxIterations = 50

// ReplaceIterative applies re.ReplaceAllString until the text stops changing.
// A single ReplaceAllString pass misses self-overlapping chains: in "1-2-3"
// the pattern (\d)-(\d) consumes "1-2", leaving "2-3" unmatched.
func ReplaceIterative(text string, re *regexp.Regexp, repl string) string {
	result := text
	for i := 0; i < maxIterations; i++ {
		next := re.ReplaceAllString(result, repl)
		if next == result {
			break
		}
		result = next
	}
	return result
}

// ReplaceIterativeFunc is ReplaceIterative with a submatch-aware callback.
func ReplaceIterativeFunc(text string, re *regexp.Regexp, fn func(groups []string) string) string {
	result := text
	for i := 0; i < maxIterations; i++ {
		next := ReplaceAllSubmatchFunc(result, re, fn)
		if next == result {
			break
		}
		result = next
	}
	return result
}

// ReplaceAllSubmatchFunc replaces every match of re with the result of fn,
// which receives the submatches (group 0 is the full match). The standard
// library's ReplaceAllStringFunc only exposes the whole match, so rules that
// rebuild a replacement from capture groups go through here.
func ReplaceAllSubmatchFunc(text string, re *regexp.Regexp, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, idx := range matches {
		groups := make([]string, len(idx)/2)
		for g := range groups {
			if idx[2*g] >= 0 {
				groups[g] = text[idx[2*g]:idx[2*g+1]]
			}
		}
		b.WriteString(text[prev:idx[0]])
		b.WriteString(fn(groups))
		prev = idx[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}
