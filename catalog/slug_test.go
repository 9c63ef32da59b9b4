package catalog

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"ASM Fundamentals", "asm-fundamentals"},
		{"New Domain Baseline", "new-domain-baseline"},
		{"Weekly Delta Scan", "weekly-delta-scan"},
		{"  Padded  Title  ", "padded-title"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.input); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestSlugifyStableAcrossCalls(t *testing.T) {
	title := "Retail Chain Shrinks Its Edge"
	first := Slugify(title)
	second := Slugify(title)
	if first != second {
		t.Fatalf("slug not deterministic: %q vs %q", first, second)
	}
	if !IsValidSlug(first) {
		t.Fatalf("produced slug fails validation: %q", first)
	}
}
