// Package slug derives safe feed filenames from playlist directory names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxLength caps slugs so generated filenames stay manageable.
const maxLength = 50

// foldMarks decomposes accented characters and strips the combining marks,
// so "Señor" becomes "Senor" before the ASCII reduction below.
//
// A fresh chain is built per call; transform chains carry internal buffers
// and are not safe for concurrent reuse.
func foldMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// Make converts a playlist name into a slug: diacritics are folded,
// everything is lowercased, and each run of characters outside [a-z0-9]
// collapses into a single hyphen. The result has no leading or trailing
// hyphen and is at most 50 characters, re-trimmed so truncation cannot
// leave a hyphen at the edge.
//
// Make is idempotent: Make(Make(s)) == Make(s).
func Make(s string) string {
	s = strings.ToLower(foldMarks(s))

	var b strings.Builder
	b.Grow(len(s))
	pending := false // separator owed before the next kept character
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pending = false
			continue
		}
		pending = true
	}

	out := b.String()
	if len(out) > maxLength {
		out = strings.TrimRight(out[:maxLength], "-")
	}
	return out
}
