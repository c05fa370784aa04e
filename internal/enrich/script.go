package enrich

import (
	"strings"
	"unicode"
)

func targetScripts(locale string) []*unicode.RangeTable {
	switch strings.ToLower(locale) {
	case "ko":
		return []*unicode.RangeTable{unicode.Hangul}
	case "ja":
		return []*unicode.RangeTable{unicode.Han, unicode.Hiragana, unicode.Katakana}
	case "zh":
		return []*unicode.RangeTable{unicode.Han}
	default:
		return nil
	}
}

// ScriptRunes counts the runes of s written in the script of locale.
func ScriptRunes(s, locale string) int {
	tables := targetScripts(locale)
	if len(tables) == 0 {
		return 0
	}
	n := 0
	for _, r := range s {
		if unicode.IsOneOf(tables, r) {
			n++
		}
	}
	return n
}
