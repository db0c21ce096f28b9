package core

import (
	"strings"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"lowercases and kebab-cases", []string{"Outdoor Venue"}, []string{"outdoor-venue"}},
		{"dedupes after normalization", []string{"Rustic", "rustic", " RUSTIC "}, []string{"rustic"}},
		{"drops empty results", []string{"  ", "!!!", "ok"}, []string{"ok"}},
		{"strips invalid characters", []string{"blk/wht"}, []string{"blkwht"}},
		{"preserves input order", []string{"b", "a", "b"}, []string{"b", "a"}},
		{"nil input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("NormalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestValidateTag(t *testing.T) {
	if err := ValidateTag("rustic"); err != nil {
		t.Fatalf("ValidateTag(rustic) = %v", err)
	}
	if err := ValidateTag("   "); err == nil {
		t.Fatal("blank tag accepted")
	}
	if err := ValidateTag(strings.Repeat("x", 31)); err == nil {
		t.Fatal("31-character tag accepted")
	}
}

func TestShareSlug(t *testing.T) {
	slug := ShareSlug("Alice & Bob")
	if !strings.HasPrefix(slug, "alice-and-bob-") {
		t.Fatalf("slug = %q, want alice-and-bob- prefix", slug)
	}
	if len(slug) != len("alice-and-bob-")+4 {
		t.Fatalf("slug = %q, want a 4-character suffix", slug)
	}

	if a, b := ShareSlug("Sam & Lee"), ShareSlug("Sam & Lee"); a == b {
		t.Fatalf("identical names produced identical slugs: %q", a)
	}

	// Accents and punctuation are stripped, never leaked into the slug.
	slug = ShareSlug("José!! & Müller")
	for _, r := range slug {
		if !(r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			t.Fatalf("invalid rune %q in slug %q", r, slug)
		}
	}

	if slug := ShareSlug("!!!"); len(slug) != 4 {
		t.Fatalf("all-symbol name slug = %q, want bare suffix", slug)
	}
	if ShareSlug("") == "" {
		t.Fatal("empty names must still produce a slug")
	}
}
