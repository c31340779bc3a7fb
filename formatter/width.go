package formatter

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// ellipsis marks a truncated value.
const ellipsis = "…"

// displayWidth measures s in fixed-width ens, as given by UAX#11.
func displayWidth(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}

// truncate cuts the first line of s to fit into width ens. If s has to be
// cut, the result ends with an ellipsis.
func truncate(s string, width int, context *uax11.Context) string {
	cut := firstLine(s)
	if cut == s && displayWidth(s, context) <= width {
		return s
	}
	if width <= 1 {
		return ellipsis
	}
	// first fit: extend the prefix rune by rune as long as it fits
	var b strings.Builder
	fit := ""
	for _, r := range cut {
		b.WriteRune(r)
		if displayWidth(b.String(), context) > width-1 {
			break
		}
		fit = b.String()
	}
	return fit + ellipsis
}

// firstLine cuts s at its first line break.
func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}
