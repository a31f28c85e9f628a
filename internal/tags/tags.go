// Package tags canonicalizes tag strings and formats them for display.
package tags

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Restricted is the reserved tag marking mature content.
const Restricted = "nsfw"

// AllSounds is the browse entry that stands for "view everything".
const AllSounds = "all sounds"

// Normalize trims surrounding whitespace and lowercases. Empty in, empty out.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeAll normalizes every tag and drops the ones that end up empty.
// Order and duplicates are preserved.
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if n := Normalize(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// ParseList splits comma-separated admin input into normalized tags.
func ParseList(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return NormalizeAll(strings.Split(csv, ","))
}

// FormatForDisplay renders the restricted tag as "NSFW" and every other tag
// with only its first letter capitalized.
func FormatForDisplay(tag string) string {
	if strings.ToLower(tag) == Restricted {
		return strings.ToUpper(Restricted)
	}
	return capitalize(tag)
}

// CapitalizeWords capitalizes each space-separated word of free text such as
// titles and equipment names.
func CapitalizeWords(text string) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
