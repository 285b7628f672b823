package column

import (
	"regexp"

	runewidth "github.com/mattn/go-runewidth"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// DisplayWidth returns the number of terminal cells s occupies. ANSI escape
// sequences take no space, so colored items line up with plain ones.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(ansiRegexp.ReplaceAllString(s, ""))
}
