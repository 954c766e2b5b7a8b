package export

import (
	"strconv"
	"strings"
)

// DefaultNamingPattern mirrors the App Store Connect upload layout.
const DefaultNamingPattern = "{locale}/{device}/{index}"

// SubstituteName expands the naming pattern by literal placeholder
// substitution. Index is 1-based and not zero-padded; a pattern without
// placeholders is returned as-is, collisions and all.
func SubstituteName(pattern, locale, device string, index int) string {
	if pattern == "" {
		pattern = DefaultNamingPattern
	}
	name := strings.ReplaceAll(pattern, "{locale}", locale)
	name = strings.ReplaceAll(name, "{device}", device)
	name = strings.ReplaceAll(name, "{index}", strconv.Itoa(index))
	return name
}
