package slug

import (
	"regexp"
	"strings"
)

// accents maps a fixed set of accented and separator characters 1:1 to ASCII.
// Separator characters (·/_,:;) become dashes so they survive as word breaks.
var accents = strings.NewReplacer(
	"à", "a", "á", "a", "ä", "a", "â", "a",
	"è", "e", "é", "e", "ë", "e", "ê", "e",
	"ì", "i", "í", "i", "ï", "i", "î", "i",
	"ò", "o", "ó", "o", "ö", "o", "ô", "o",
	"ù", "u", "ú", "u", "ü", "u", "û", "u",
	"ñ", "n", "ç", "c",
	"·", "-", "/", "-", "_", "-", ",", "-", ":", "-", ";", "-",
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	dashRun       = regexp.MustCompile(`-+`)
)

// Make converts arbitrary text into a URL-safe slug.
// It is a total function: any input (including the empty string) yields a
// valid, possibly empty, slug. Applying Make to its own output is a no-op.
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = accents.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '-':
			b.WriteRune(r)
		}
	}
	s = b.String()

	s = whitespaceRun.ReplaceAllString(s, "-")
	s = dashRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
