package title

import "testing"

func TestNormalize_EmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestNormalize_DashVariantsAndZeroWidth(t *testing.T) {
	got := Normalize("Firefox—Private​")
	if got != "Firefox-Private" {
		t.Fatalf("expected %q, got %q", "Firefox-Private", got)
	}
}

func TestNormalize_AllDashVariantsMapToASCII(t *testing.T) {
	dashes := []string{"‐", "‑", "‒", "–", "—", "−", "⁃"}
	for _, d := range dashes {
		got := Normalize("a" + d + "b")
		if got != "a-b" {
			t.Fatalf("dash %U: expected %q, got %q", []rune(d)[0], "a-b", got)
		}
	}
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("  Document \t 1 \n viewer  ")
	if got != "Document 1 viewer" {
		t.Fatalf("expected %q, got %q", "Document 1 viewer", got)
	}
}

func TestNormalize_NFKCComposition(t *testing.T) {
	// U+FB01 LATIN SMALL LIGATURE FI decomposes to "fi" under NFKC.
	got := Normalize("ﬁles")
	if got != "files" {
		t.Fatalf("expected %q, got %q", "files", got)
	}
	// Combining acute: e + U+0301 composes to é.
	got = Normalize("café")
	if got != "café" {
		t.Fatalf("expected composed é, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain title",
		"Firefox — Private​ Browsing",
		"  spaced – out \uFEFF title ",
		"café − menu",
		"~/projects — vim",
	}
	for _, s := range inputs {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q, second %q", s, once, twice)
		}
	}
}

func TestNormalize_OutputIsClean(t *testing.T) {
	inputs := []string{
		"a​b‌c‍d\uFEFFe",
		"x‐y‑z‒–—−⁃w",
	}
	for _, s := range inputs {
		got := Normalize(s)
		for _, r := range got {
			if isZeroWidth(r) {
				t.Fatalf("zero-width %U survived in %q", r, got)
			}
			if dashVariants[r] {
				t.Fatalf("dash variant %U survived in %q", r, got)
			}
		}
	}
}
