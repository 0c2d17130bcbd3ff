package reconcile_test

import (
	"testing"

	"technician-portal/internal/reconcile"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "johnsmith", "johnsmith"},
		{"case folded", "John Smith", "johnsmith"},
		{"punctuation dropped", "John Q. Smith", "johnqsmith"},
		{"abbreviation", "J. Smith", "jsmith"},
		{"trailing country tag", "John Smith (US)", "johnsmithus"},
		{"digits kept", "Tech 2", "tech2"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"punctuation only", "??!--", ""},
		{"non-ascii dropped", "Jörg Müller", "jrgmller"},
		{"tabs and newlines", "John\tSmith\n", "johnsmith"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reconcile.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_EquivalentRenderings(t *testing.T) {
	if reconcile.Normalize("John Q. Smith") != reconcile.Normalize("john q smith") {
		t.Error("differently rendered versions of the same name should share a key")
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	in := "Ángela  O'Brien-Smith (CA) #2"
	first := reconcile.Normalize(in)
	for i := 0; i < 100; i++ {
		if got := reconcile.Normalize(in); got != first {
			t.Fatalf("Normalize is not deterministic: %q then %q", first, got)
		}
	}
}
