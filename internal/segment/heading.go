package segment

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxHeadingRunes is the exclusive length limit for shape-classified headings.
const MaxHeadingRunes = 100

// Digits and spaces are Unicode-aware; the capital stays ASCII.
var numberedHeading = regexp.MustCompile(`^[\p{Nd}.]+[\s\p{Zs}]+[A-Z]`)

// IsShapeHeading reports whether a line of page text looks like a heading:
// shorter than MaxHeadingRunes and either upper-case, numbered
// ("2.1 Introduction") or ending with a colon.
func IsShapeHeading(line string) bool {
	if !isShort(line) {
		return false
	}
	return isUpper(line) || numberedHeading.MatchString(line) || strings.HasSuffix(line, ":")
}

// IsBlockTitle reports whether a line of web text is a title. Only a short
// line that opens a block qualifies; later short lines are content.
func IsBlockTitle(line string, blockStart bool) bool {
	return blockStart && isShort(line)
}

// IsStyleHeading reports whether a paragraph style names a heading.
func IsStyleHeading(style string) bool {
	return strings.HasPrefix(style, "Heading")
}

func isShort(line string) bool {
	return utf8.RuneCountInString(line) < MaxHeadingRunes
}

// isUpper requires at least one cased letter and no lower-case ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
