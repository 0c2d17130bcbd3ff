package reconcile_test

import (
	"math"
	"testing"

	"technician-portal/internal/reconcile"
)

func buildIndex(t *testing.T, entries ...reconcile.Entry) *reconcile.Index {
	t.Helper()
	idx, collisions := reconcile.BuildIndex(entries)
	if len(collisions) != 0 {
		t.Fatalf("fixture directory should not collide: %v", collisions)
	}
	return idx
}

func TestResolve_ExactMatch(t *testing.T) {
	idx := buildIndex(t,
		reconcile.Entry{ID: 1, Name: "John Smith"},
		reconcile.Entry{ID: 2, Name: "Jane Doe"},
	)

	tests := []struct {
		name   string
		raw    string
		wantID int
	}{
		{"already normalized", "johnsmith", 1},
		{"case and spacing", "john smith", 1},
		{"punctuation", "John. Smith!", 1},
		{"surrounding whitespace", "  Jane Doe  ", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := reconcile.Resolve(tt.raw, idx)
			if o.Kind != reconcile.MatchExact {
				t.Fatalf("Resolve(%q).Kind = %s, want exact", tt.raw, o.Kind)
			}
			if o.EmployeeID != tt.wantID {
				t.Errorf("Resolve(%q).EmployeeID = %d, want %d", tt.raw, o.EmployeeID, tt.wantID)
			}
			if o.RawName != tt.raw {
				t.Errorf("RawName = %q, want verbatim input %q", o.RawName, tt.raw)
			}
		})
	}
}

func TestResolve_ExactPrecedesFuzzy(t *testing.T) {
	// "johnsmith" is present verbatim; a near-identical second key must not
	// pull the lookup onto the fuzzy path.
	idx := buildIndex(t,
		reconcile.Entry{ID: 1, Name: "John Smith"},
		reconcile.Entry{ID: 2, Name: "John Smyth"},
	)
	o := reconcile.Resolve("John Smith", idx)
	if o.Kind != reconcile.MatchExact || o.EmployeeID != 1 {
		t.Errorf("got kind=%s id=%d, want exact match on id=1", o.Kind, o.EmployeeID)
	}
}

func TestResolve_FuzzyMatch(t *testing.T) {
	idx := buildIndex(t,
		reconcile.Entry{ID: 1, Name: "John Smith"},
		reconcile.Entry{ID: 2, Name: "Jane Doe"},
	)

	o := reconcile.Resolve("J. Smith", idx)
	if o.Kind != reconcile.MatchFuzzy {
		t.Fatalf("Kind = %s, want fuzzy", o.Kind)
	}
	if o.EmployeeID != 1 {
		t.Errorf("EmployeeID = %d, want 1", o.EmployeeID)
	}
	if o.MatchedKey != "johnsmith" {
		t.Errorf("MatchedKey = %q, want johnsmith", o.MatchedKey)
	}
	// "jsmith" vs "johnsmith": 12 matching characters over 15 total.
	if math.Abs(o.Score-0.8) > 1e-9 {
		t.Errorf("Score = %v, want 0.8", o.Score)
	}
}

func TestResolve_CutoffBoundary(t *testing.T) {
	idx := buildIndex(t, reconcile.Entry{ID: 1, Name: "abcxx"})

	// "abcyy" vs "abcxx" scores exactly 0.6 — accepted.
	o := reconcile.Resolve("abcyy", idx)
	if o.Kind != reconcile.MatchFuzzy {
		t.Fatalf("score exactly at cutoff must be accepted, got kind=%s", o.Kind)
	}
	if math.Abs(o.Score-0.6) > 1e-9 {
		t.Errorf("Score = %v, want exactly 0.6", o.Score)
	}

	// "abcyyy" vs "abcxx" scores 6/11 — rejected.
	o = reconcile.Resolve("abcyyy", idx)
	if o.Kind != reconcile.MatchNone {
		t.Errorf("score below cutoff must be rejected, got kind=%s score=%v", o.Kind, o.Score)
	}
}

func TestResolve_CloserCandidateWins(t *testing.T) {
	// Both directory names clear the cutoff for "Chris Y"; the clearly closer
	// one must win, not whichever happens to be scanned first.
	idx := buildIndex(t,
		reconcile.Entry{ID: 2, Name: "Chris Jones"},
		reconcile.Entry{ID: 1, Name: "Chris Young"},
	)
	o := reconcile.Resolve("Chris Y", idx)
	if o.Kind != reconcile.MatchFuzzy {
		t.Fatalf("Kind = %s, want fuzzy", o.Kind)
	}
	if o.EmployeeID != 1 || o.MatchedKey != "chrisyoung" {
		t.Errorf("resolved to id=%d key=%q, want Chris Young (id=1)", o.EmployeeID, o.MatchedKey)
	}
}

func TestResolve_TieKeepsFirstIndexedKey(t *testing.T) {
	// "abcz" scores identically against both keys; index order decides.
	idx := buildIndex(t,
		reconcile.Entry{ID: 1, Name: "abcx"},
		reconcile.Entry{ID: 2, Name: "abcy"},
	)
	o := reconcile.Resolve("abcz", idx)
	if o.Kind != reconcile.MatchFuzzy {
		t.Fatalf("Kind = %s, want fuzzy", o.Kind)
	}
	if o.EmployeeID != 1 || o.MatchedKey != "abcx" {
		t.Errorf("tie resolved to id=%d key=%q, want first-indexed id=1 key=abcx", o.EmployeeID, o.MatchedKey)
	}
}

func TestResolve_Unmatched(t *testing.T) {
	idx := buildIndex(t,
		reconcile.Entry{ID: 1, Name: "John Smith"},
		reconcile.Entry{ID: 2, Name: "Jane Doe"},
	)

	tests := []struct {
		name string
		raw  string
	}{
		{"unrelated name", "Bob Jones"},
		{"empty", ""},
		{"whitespace only", "   "},
		{"punctuation only", "??"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := reconcile.Resolve(tt.raw, idx)
			if o.Kind != reconcile.MatchNone {
				t.Fatalf("Resolve(%q).Kind = %s, want none", tt.raw, o.Kind)
			}
			if o.RawName != tt.raw {
				t.Errorf("RawName = %q, want verbatim input %q", o.RawName, tt.raw)
			}
			if ref := o.EmployeeRef(); ref != nil {
				t.Errorf("EmployeeRef() = %v, want nil for unmatched", *ref)
			}
		})
	}
}

func TestOutcome_EmployeeRef(t *testing.T) {
	idx := buildIndex(t, reconcile.Entry{ID: 7, Name: "Jane Doe"})
	o := reconcile.Resolve("jane doe", idx)
	ref := o.EmployeeRef()
	if ref == nil || *ref != 7 {
		t.Fatalf("EmployeeRef() = %v, want pointer to 7", ref)
	}
}
