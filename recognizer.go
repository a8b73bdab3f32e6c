// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package what3words

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// The word list spans many languages, so segments accept any Unicode letter
// (Latin with diacritics, Cyrillic, Greek, CJK, ...) but never digits,
// punctuation or a fourth segment.
var (
	possible3waPattern = regexp.MustCompile(`^\p{L}+\.\p{L}+\.\p{L}+$`)
	find3waPattern     = regexp.MustCompile(`\p{L}+\.\p{L}+\.\p{L}+`)

	// RE2 has no backreferences, so the uniform-delimiter rule of DidYouMean
	// is expressed as one pattern per accepted delimiter. A single alternation
	// over the delimiters would accept mixed ones.
	didYouMeanPatterns = []*regexp.Regexp{
		possible3waPattern,
		regexp.MustCompile(`^\p{L}+ \p{L}+ \p{L}+$`),
		regexp.MustCompile(`^\p{L}+-\p{L}+-\p{L}+$`),
	}
)

// IsPossible3wa reports whether the given text has the shape of a three-word
// address: exactly three word segments joined by dots, nothing else. It does
// not verify that the address actually exists; use Client.IsValid3wa for
// that. Surrounding whitespace is ignored, anything else (digits, symbols,
// mixed or additional delimiters) rejects the input.
func IsPossible3wa(text string) bool {
	return possible3waPattern.MatchString(strings.TrimSpace(text))
}

// FindPossible3wa scans arbitrary text and returns every standalone
// substring that looks like a three-word address, in order of appearance and
// exactly as it appeared in the source (original casing and spelling). The
// returned slice is empty when nothing matches; every returned substring
// satisfies IsPossible3wa.
func FindPossible3wa(text string) []string {
	matches := make([]string, 0)
	for _, span := range find3waPattern.FindAllStringIndex(text, -1) {
		if !standalone3wa(text, span[0], span[1]) {
			continue
		}
		matches = append(matches, text[span[0]:span[1]])
	}
	return matches
}

// DidYouMean reports whether the given text is a near-miss three-word
// address: the same three-segment shape as IsPossible3wa, but with the
// segments uniformly joined by a space or a hyphen instead of the dot.
// Run-together words without any separator do not qualify, since they are
// indistinguishable from ordinary prose.
func DidYouMean(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, pattern := range didYouMeanPatterns {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// standalone3wa checks that a candidate match is bounded by non-word
// characters. A neighbouring dot only disqualifies the candidate when it
// attaches a further letter segment, so a sentence-ending period after a
// match is fine while a fourth dotted segment is not.
func standalone3wa(text string, start, end int) bool {
	if prev, size := utf8.DecodeLastRuneInString(text[:start]); size > 0 && prev == '.' {
		if isLetterBefore(text[:start-size]) {
			return false
		}
	}
	if next, size := utf8.DecodeRuneInString(text[end:]); size > 0 && next == '.' {
		if isLetterAfter(text[end+size:]) {
			return false
		}
	}
	return true
}

func isLetterBefore(text string) bool {
	r, size := utf8.DecodeLastRuneInString(text)
	return size > 0 && possible3waLetter(r)
}

func isLetterAfter(text string) bool {
	r, size := utf8.DecodeRuneInString(text)
	return size > 0 && possible3waLetter(r)
}

func possible3waLetter(r rune) bool {
	return unicode.IsLetter(r)
}
