package suite

import "strings"

// wordPrefixes are the name prefixes that read as separate words in package
// display names, e.g. "activesupport" is "Active Support".
var wordPrefixes = []string{"active", "action"}

// DisplayName converts a package name to its human form. It is a pure
// function; nothing at this scale needs a lookup table.
func DisplayName(name string) string {
	for _, p := range wordPrefixes {
		if rest, ok := strings.CutPrefix(name, p); ok && rest != "" {
			return capitalize(p) + " " + capitalize(rest)
		}
	}
	return capitalize(name)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
