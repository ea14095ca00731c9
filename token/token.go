/*
cppcheck - A tool for static code analysis
Copyright (C) 2024  cppcheck-go contributors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package token is the token cursor & matcher collaborator (component A):
// a doubly-linked token sequence with a small pattern-matching DSL on top.
// Nothing downstream owns a Token; every reference is borrowed for the
// lifetime of a single analysis run.
package token

import (
	"strings"
	"unicode"
)

// Token is one lexical element of a translation unit. The zero value is not
// useful; tokens are only produced by Tokenize.
type Token struct {
	text       string
	next, prev *Token
	link       *Token
	fileIndex  int32
	lineNumber int32
	isName     bool
}

func (t *Token) Str() string        { return t.text }
func (t *Token) Next() *Token        { return t.next }
func (t *Token) Previous() *Token    { return t.prev }
func (t *Token) Link() *Token        { return t.link }
func (t *Token) FileIndex() int32    { return t.fileIndex }
func (t *Token) LineNumber() int32   { return t.lineNumber }

// IsName reports whether the token text is an identifier-shaped token,
// which includes every C++ keyword: "class", "public", "return" are all
// names just like "foo". Operators, punctuation, literals and merged
// access labels such as "public:" are not.
func (t *Token) IsName() bool { return t.isName }

var standardTypes = map[string]bool{
	"bool": true, "char": true, "wchar_t": true, "short": true, "int": true,
	"long": true, "float": true, "double": true, "void": true, "signed": true,
	"unsigned": true, "auto": true, "size_t": true, "int8_t": true, "int16_t": true,
	"int32_t": true, "int64_t": true, "uint8_t": true, "uint16_t": true,
	"uint32_t": true, "uint64_t": true,
}

// IsStandardType reports whether the token names a built-in scalar type.
func (t *Token) IsStandardType() bool {
	return t.isName && standardTypes[t.text]
}

// TokAt returns the token n steps ahead (or behind, for negative n) of t,
// or nil if the walk runs off either end of the sequence.
func (t *Token) TokAt(n int) *Token {
	cur := t
	for cur != nil && n > 0 {
		cur = cur.next
		n--
	}
	for cur != nil && n < 0 {
		cur = cur.prev
		n++
	}
	return cur
}

// StrAt is TokAt(n).Str(), or "" if the walk runs off the sequence.
func (t *Token) StrAt(n int) string {
	if at := t.TokAt(n); at != nil {
		return at.Str()
	}
	return ""
}

func isDigit(r rune) bool { return unicode.IsDigit(r) }

func isNumberLiteral(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if isDigit(r) {
			continue
		}
		if i == 0 {
			return false
		}
		// allow trailing suffixes like 0u, 3.14f, 0x1p0
		if r == '.' || r == 'x' || r == 'X' || r == 'p' || r == 'P' || r == 'u' || r == 'U' || r == 'l' || r == 'L' || r == 'f' || r == 'F' || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') {
			continue
		}
		return false
	}
	return true
}

// patternItem is one whitespace-separated slot of a Match pattern: a set of
// literal/wildcard alternatives, optionally markable as "may be absent"
// (a trailing empty alternative, written as e.g. "const|").
type patternItem struct {
	alts     []string
	optional bool
}

func parsePattern(pattern string) []patternItem {
	fields := strings.Fields(pattern)
	items := make([]patternItem, 0, len(fields))
	for _, f := range fields {
		parts := strings.Split(f, "|")
		optional := false
		if len(parts) > 0 && parts[len(parts)-1] == "" {
			optional = true
			parts = parts[:len(parts)-1]
		}
		items = append(items, patternItem{alts: parts, optional: optional})
	}
	return items
}

func matchAlt(tok *Token, alt string) bool {
	switch alt {
	case "%var%", "%type%":
		return tok.IsName()
	case "%num%":
		return isNumberLiteral(tok.text)
	case "%any%":
		return true
	default:
		if len(alt) >= 2 && alt[0] == '[' && alt[len(alt)-1] == ']' {
			return len(tok.text) == 1 && strings.ContainsRune(alt[1:len(alt)-1], rune(tok.text[0]))
		}
		return tok.text == alt
	}
}

func matchItem(tok *Token, item patternItem) bool {
	if tok == nil {
		return false
	}
	for _, alt := range item.alts {
		if matchAlt(tok, alt) {
			return true
		}
	}
	return false
}

// Match reports whether the token sequence starting at tok matches pattern,
// a whitespace-separated sequence of literals and wildcards (%var%, %type%,
// %num%, %any%), each slot optionally alternated with '|' and optionally
// markable as absent with a trailing '|' (e.g. "const|").
func Match(tok *Token, pattern string) bool {
	items := parsePattern(pattern)
	cur := tok
	for _, item := range items {
		if matchItem(cur, item) {
			cur = cur.Next()
			continue
		}
		if item.optional {
			continue
		}
		return false
	}
	return true
}

// SimpleMatch reports whether the token sequence starting at tok equals the
// whitespace-separated literal token text, with no wildcard handling.
func SimpleMatch(tok *Token, literal string) bool {
	cur := tok
	for _, want := range strings.Fields(literal) {
		if cur == nil || cur.Str() != want {
			return false
		}
		cur = cur.Next()
	}
	return true
}

// FindMatch scans forward from start (inclusive) for the first position
// whose token sequence matches pattern, stopping before end if end is
// non-nil. It returns the token at which the match begins, or nil.
func FindMatch(start *Token, pattern string, end *Token) *Token {
	for tok := start; tok != nil && tok != end; tok = tok.Next() {
		if Match(tok, pattern) {
			return tok
		}
	}
	return nil
}
