package carto2pdf

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// replacementChar stands in for runes the PDF core fonts cannot encode.
const replacementChar = '?'

// substitutions are applied in order before the Latin-1 restriction.
var substitutions = []struct {
	old string
	new string
}{
	{"’", "'"}, // right single quotation mark
	{"⋅", "-"}, // dot operator
	{"·", "-"}, // middle dot; Latin-1, but typed for the dot operator in hours
	{"<br />", "\n"},
	{"<br/>", "\n"},
	{"<br>", "\n"},
	{"<b>", ""},
	{"</b>", ""},
	{"…", "..."}, // horizontal ellipsis
}

// Sanitize returns the display text of v restricted to ISO-8859-1.
//
// Strings go through the substitution table (curly apostrophe, middle dot,
// <br> markers, <b> markers, ellipsis) and every remaining rune outside
// Latin-1 becomes '?'. Other values are converted with fmt.Sprint first and
// nil yields "". The result is a fixed point: Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return sanitizeText(x)
	case Text:
		return sanitizeText(x.Value)
	default:
		return sanitizeText(fmt.Sprint(x))
	}
}

// sanitizeText repeats the substitution pass until nothing changes, so that
// markers assembled by a previous removal ("<<b>b>") are removed as well.
func sanitizeText(s string) string {
	for {
		next := substitute(s)
		if next == s {
			return s
		}
		s = next
	}
}

func substitute(s string) string {
	for _, sub := range substitutions {
		s = strings.ReplaceAll(s, sub.old, sub.new)
	}
	return restrictToLatin1(s)
}

// restrictToLatin1 replaces runes without an ISO-8859-1 encoding, including
// invalid UTF-8 sequences.
func restrictToLatin1(s string) string {
	if isLatin1(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			b.WriteRune(r)
		} else {
			b.WriteByte(replacementChar)
		}
	}
	return b.String()
}

func isLatin1(s string) bool {
	for _, r := range s {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}
