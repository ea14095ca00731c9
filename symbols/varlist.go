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

package symbols

import (
	"strings"

	"github.com/deepaksalve/cppcheck/token"
)

// ExtractVars is component B: given a "class|struct name" header token, it
// walks the class body at brace depth 1 and returns an ordered list of
// member variables with their declaration flags. Ambiguous declaration
// shapes yield no Var; there is no error reporting at this layer.
func ExtractVars(header *token.Token) []*Var {
	var vars []*Var
	isStruct := header.Str() == "struct"
	priv := !isStruct
	indentLevel := 0

	for tok := header; tok != nil; tok = tok.Next() {
		if tok.Next() == nil {
			break
		}

		switch tok.Str() {
		case "{":
			indentLevel++
		case "}":
			if indentLevel <= 1 {
				return vars
			}
			indentLevel--
		}

		if indentLevel != 1 {
			continue
		}

		// Borland C++: members of __published: are automatically
		// initialized, so skip the whole section.
		if tok.Str() == "__published:" {
			priv = false
			for ; tok != nil; tok = tok.Next() {
				if tok.Str() == "{" {
					tok = tok.Link()
					if tok == nil {
						break
					}
				}
				if next := tok.Next(); next != nil && isAccessLabel(next.Str()) {
					break
				}
			}
			if tok != nil {
				continue
			}
			return vars
		}

		isLabel := tok.Str()[0] != ':' && strings.Contains(tok.Str(), ":")
		if isLabel {
			priv = tok.Str() == "private:"
		}

		if !token.Match(tok, "[;{}]") && !isLabel {
			continue
		}

		next := tok.Next()
		if strings.Contains(next.Str(), ":") {
			continue
		}
		if next.Str() == "__property" {
			continue
		}

		if next.Str() == "const" {
			next = next.Next()
		}
		isStatic := token.SimpleMatch(next, "static")
		if isStatic {
			next = next.Next()
		}
		isMutable := token.SimpleMatch(next, "mutable")
		if isMutable {
			next = next.Next()
		}
		if next.Str() == "const" {
			next = next.Next()
		}

		varname := ""
		isClass := false

		switch {
		case token.Match(next, "%type% %var% ;|:"):
			if !next.IsStandardType() {
				isClass = true
			}
			varname = next.StrAt(1)

		case token.Match(next, "struct|union %type% %var% ;"):
			varname = next.StrAt(2)

		case token.Match(next, "%type% * %var% ;"):
			varname = next.StrAt(2)
		case token.Match(next, "%type% %type% * %var% ;"):
			varname = next.StrAt(3)
		case token.Match(next, "%type% :: %type% * %var% ;"):
			varname = next.StrAt(4)

		case token.Match(next, "%type% %var% [") && next.StrAt(1) != "operator":
			if !next.IsStandardType() {
				isClass = true
			}
			varname = next.StrAt(1)

		case token.Match(next, "%type% * %var% ["):
			varname = next.StrAt(2)
		case token.Match(next, "%type% :: %type% * %var% ["):
			varname = next.StrAt(4)

		case token.Match(next, "%type% :: %type% %var% ;"):
			isClass = true
			varname = next.StrAt(3)

		case token.Match(next, "%type% :: %type% <") || token.Match(next, "%type% <"):
			isClass = true
			varname = extractTemplatedVarName(next)
		}

		if varname != "" && varname != "operator" {
			vars = append(vars, &Var{
				Name:      varname,
				Priv:      priv,
				IsMutable: isMutable,
				IsStatic:  isStatic,
				IsClass:   isClass,
			})
		}
	}

	return vars
}

func isAccessLabel(s string) bool {
	return s == "private:" || s == "protected:" || s == "public:"
}

// extractTemplatedVarName handles "T < ... > v ;" and "T :: T2 < ... > * v ;",
// walking to the matching '>' by bracket depth before looking for the name.
func extractTemplatedVarName(next *token.Token) string {
	level := 0
	tok := next
	for tok != nil {
		switch tok.Str() {
		case "<":
			level++
		case ">":
			level--
			if level == 0 {
				goto found
			}
		}
		tok = tok.Next()
	}
found:
	if tok == nil {
		return ""
	}
	if token.Match(tok, "> %var% ;") {
		return tok.StrAt(1)
	}
	if token.Match(tok, "> * %var% ;") {
		return tok.StrAt(2)
	}
	return ""
}
