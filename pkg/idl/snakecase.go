package idl

import (
	"strings"
	"unicode"
)

// snakeCase converts a PascalCase identifier (e.g. "InitializeUser") into the
// snake_case form the generator hashes into instruction discriminators (e.g.
// "initialize_user"). Runs of capitals (as in "IDUpdate") are treated as a
// single word boundary, matching the generator's naming convention.
func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
