package Utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeASCII decomposes the input (NFD) and drops every code point outside the ASCII range.
// Diacritics decompose into combining marks above 0x7F, so accented letters fold to their base letter.
func NormalizeASCII(Input string) string {

	Decomposed := norm.NFD.String(Input)

	var Builder strings.Builder

	Builder.Grow(len(Decomposed))

	for _, Rune := range Decomposed {

		if Rune < 0x80 {

			Builder.WriteRune(Rune)

		}

	}

	return Builder.String()

}

// FoldForCompare produces the canonical form all matching comparisons run on.
func FoldForCompare(Input string) string {

	return strings.ToLower(NormalizeASCII(Input))

}
