package reconcile

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// FuzzyCutoff is the minimum sequence-matcher ratio a fuzzy candidate must
// reach. The boundary is inclusive: a score of exactly 0.6 is accepted.
const FuzzyCutoff = 0.6

// MatchKind discriminates how a raw name was resolved.
type MatchKind string

const (
	MatchExact MatchKind = "exact"
	MatchFuzzy MatchKind = "fuzzy"
	MatchNone  MatchKind = "none"
)

// Outcome is the result of resolving one raw technician name. EmployeeID is
// meaningful only when the name matched; MatchedKey and Score only for fuzzy
// matches. RawName always carries the input verbatim so review surfaces can
// show the original text.
type Outcome struct {
	Kind       MatchKind
	RawName    string
	EmployeeID int
	MatchedKey string
	Score      float64
}

// Matched reports whether the name resolved to a directory entry.
func (o Outcome) Matched() bool {
	return o.Kind != MatchNone
}

// EmployeeRef returns the resolved id as a nullable foreign-key value:
// nil exactly when the outcome is unmatched.
func (o Outcome) EmployeeRef() *int {
	if !o.Matched() {
		return nil
	}
	id := o.EmployeeID
	return &id
}

// Resolve maps a raw technician name to at most one directory entry. Lookup
// order, each step short-circuiting: empty name, exact normalized key, fuzzy
// search over all index keys. "No match" is a normal outcome, never an error;
// the caller decides whether an unmatched row blocks anything (it doesn't:
// rows import with a null employee reference).
func Resolve(raw string, idx *Index) Outcome {
	key := Normalize(strings.TrimSpace(raw))
	if key == "" {
		return Outcome{Kind: MatchNone, RawName: raw}
	}
	if id, ok := idx.Lookup(key); ok {
		return Outcome{Kind: MatchExact, RawName: raw, EmployeeID: id}
	}
	if matched, score, ok := closestKey(key, idx, FuzzyCutoff); ok {
		id, _ := idx.Lookup(matched)
		return Outcome{Kind: MatchFuzzy, RawName: raw, EmployeeID: id, MatchedKey: matched, Score: score}
	}
	return Outcome{Kind: MatchNone, RawName: raw}
}

// closestKey is the classic close-matches search: candidates are screened
// with the cheap length- and frequency-based ratios before the full ratio is
// computed, and only candidates at or above cutoff qualify. Equal scores keep
// the first key in index order — stable and deterministic, but arbitrary with
// respect to name semantics.
func closestKey(key string, idx *Index, cutoff float64) (string, float64, bool) {
	m := difflib.NewMatcher(nil, splitChars(key))
	var (
		bestKey   string
		bestScore float64
		found     bool
	)
	for _, candidate := range idx.Keys() {
		m.SetSeq1(splitChars(candidate))
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		score := m.Ratio()
		if score < cutoff {
			continue
		}
		if !found || score > bestScore {
			bestKey, bestScore, found = candidate, score, true
		}
	}
	return bestKey, bestScore, found
}

// splitChars turns a normalized key into the per-character sequence the
// matcher compares. Keys are ASCII by construction, so byte slicing is safe.
func splitChars(s string) []string {
	out := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i : i+1]
	}
	return out
}
