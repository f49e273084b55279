// Package title canonicalizes window title strings for cross-tool matching.
//
// Compositor-facing tools compare titles byte-for-byte, but a live window
// title often differs from what we captured: different Unicode composition,
// typographic dashes inserted by the application, or invisible zero-width
// characters. Normalize collapses all of that into a stable ASCII-dash,
// single-spaced form.
package title

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// dashVariants maps typographic dash code points to ASCII '-'.
var dashVariants = map[rune]bool{
	'‐': true, // hyphen
	'‑': true, // non-breaking hyphen
	'‒': true, // figure dash
	'–': true, // en dash
	'—': true, // em dash
	'−': true, // minus sign
	'⁃': true, // hyphen bullet
}

func isZeroWidth(r rune) bool {
	return (r >= '​' && r <= '‍') || r == '\uFEFF'
}

// Normalize returns the canonical form of a window title. It applies NFKC
// composition, strips zero-width characters, maps dash variants to '-', and
// collapses whitespace runs to single spaces. Empty input yields "".
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case isZeroWidth(r):
			// drop
		case dashVariants[r]:
			b.WriteByte('-')
		default:
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
