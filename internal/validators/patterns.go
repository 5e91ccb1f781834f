// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unicode forms of \s, \w and \b. RE2 classes are ASCII only, while the
// values checked here may carry any Unicode space or letter.
const (
	spaceChars = `\t\n\v\f\r \x{1c}-\x{1f}\x{85}\x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}`
	space      = `[` + spaceChars + `]`
	wordChars  = `\p{L}\p{N}_`

	// wordStart and wordEnd bound a keyword. They consume the neighbouring
	// character, so they only suit match-or-not patterns.
	wordStart = `(?:^|[^` + wordChars + `])`
	wordEnd   = `(?:$|[^` + wordChars + `])`
)

// Injection signatures. These are heuristics tuned to the shape of the
// fields they guard; they catch common SQL and markup payloads and nothing
// more. The allow-list rules that follow them in each chain are what actually
// bound the accepted alphabet.
var (
	// sqlXSSPattern guards email and phone values: script tags, inline event
	// handlers, SQL comments, stacked destructive statements and SELECT..FROM.
	sqlXSSPattern = regexp.MustCompile(`(?i)(?:` +
		`<` + space + `*script` + wordEnd +
		`|<[^>]*on[` + wordChars + `]+` + space + `*=` +
		`|--` + space + `+` +
		`|;` + space + `*(?:DROP|DELETE|UPDATE|INSERT)` + wordEnd +
		`|` + wordStart + `DROP` + space + `+TABLE` + wordEnd +
		`|` + wordStart + `SELECT[^` + wordChars + `\n](?:.*[^` + wordChars + `\n])?FROM` + wordEnd +
		`)`)

	// nameSQLPattern is stricter: a name never legitimately contains a
	// statement separator, a comment marker or an SQL keyword as a word.
	nameSQLPattern = regexp.MustCompile(`(?i)(?:;|--|` +
		wordStart + `(?:DROP|TABLE|SELECT|DELETE|INSERT|UPDATE)` + wordEnd + `)`)

	markupPattern = regexp.MustCompile(`[<>]`)
)

// Allow-lists and structural formats.
var (
	nameAllowPattern = regexp.MustCompile(`^[A-Za-z'` + spaceChars + `-]+$`)

	localPartAtomPattern = regexp.MustCompile("^[A-Za-z0-9!#$%&'*+/=?^_`{|}~.-]+$")
	domainLabelPattern   = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)

	phoneFormats = []*regexp.Regexp{
		regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`),                  // XXX-XXX-XXXX
		regexp.MustCompile(`^\(\d{3}\)` + space + `?\d{3}-\d{4}$`), // (XXX) XXX-XXXX or (XXX)XXX-XXXX
		regexp.MustCompile(`^\d{3}\.\d{3}\.\d{4}$`),                // XXX.XXX.XXXX
		regexp.MustCompile(`^\d{10}$`),                             // XXXXXXXXXX
	}

	isoDatePattern = regexp.MustCompile(`^` + space + `*(\d{4})-(\d{2})-(\d{2})` + space + `*$`)
	clockPattern   = regexp.MustCompile(`^` + space + `*(\d{2}):(\d{2})` + space + `*$`)

	// idnaDots are the label separators of an internationalized domain.
	idnaDots = regexp.MustCompile("[.\u3002\uff0e\uff61]")
)

// phoneDangerousChars are shell, quoting and SQL metacharacters that never
// appear in a US phone number.
const phoneDangerousChars = "&|;$`\"'\\/*#!?=+"

// phoneExtensionIndicators are matched as plain substrings of the lowercased
// value, not as words.
var phoneExtensionIndicators = []string{"ext", "x", "extension", ","}

func containsLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

func containsControl(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r < 32 && r != ' ' }) >= 0
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIAlnum(b byte) bool {
	return isASCIILetter(b) || (b >= '0' && b <= '9')
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
