// Package textops holds the built-in text transformations and the
// registry that exposes them by name.
package textops

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lowercase maps every character to its lowercase form, independent of
// the process locale.
func Lowercase(text string) string {
	return cases.Lower(language.Und).String(text)
}

// Uppercase maps every character to its uppercase form ("ß" becomes "SS").
func Uppercase(text string) string {
	return cases.Upper(language.Und).String(text)
}

// NoSpaces removes U+0020 only; tabs and other whitespace are kept.
func NoSpaces(text string) string {
	return strings.ReplaceAll(text, " ", "")
}

// Revert reverses the text rune by rune so multi-byte characters stay intact.
func Revert(text string) string {
	rs := []rune(text)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}
