package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Simple title", "The Left Hand of Darkness", "the-left-hand-of-darkness"},
		{"Accented author", "Gabriel García Márquez", "gabriel-garcia-marquez"},
		{"Mixed accents", "Éloge de l'ombre", "eloge-de-lombre"},
		{"Separator characters", "science_fiction/space:opera", "science-fiction-space-opera"},
		{"Punctuation stripped", "Slaughterhouse-Five, or The Children's Crusade!", "slaughterhouse-five-or-the-childrens-crusade"},
		{"Whitespace collapsed", "  A   Wizard \t of  Earthsea  ", "a-wizard-of-earthsea"},
		{"Dash runs collapsed", "foo --- bar", "foo-bar"},
		{"Leading and trailing dashes trimmed", "--trimmed--", "trimmed"},
		{"Digits preserved", "Fahrenheit 451", "fahrenheit-451"},
		{"Empty input", "", ""},
		{"Only invalid characters", "!!!???", ""},
		{"Unmapped unicode dropped", "書店 bookshop", "bookshop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Make(tt.input))
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"The Left Hand of Darkness",
		"Gabriel García Márquez",
		"  A   Wizard of  Earthsea  ",
		"science_fiction/space:opera",
		"",
		"!!!???",
		"--already-a-slug--",
	}

	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "Make must stabilize after one application for %q", in)
	}
}

func TestMakeTotal(t *testing.T) {
	// Make must never produce characters outside the slug alphabet,
	// whatever bytes the catalog feeds it.
	inputs := []string{
		"\x00\x01\x02",
		"\xff\xfe invalid utf8",
		"emoji 🚀 payload",
		"ÀÉÎÖÜÑÇ upper accents",
	}

	for _, in := range inputs {
		out := Make(in)
		for _, r := range out {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, valid, "unexpected rune %q in slug %q", r, out)
		}
	}
}
