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

package checks

import (
	"github.com/deepaksalve/cppcheck/diag"
	"github.com/deepaksalve/cppcheck/token"
)

// NoMemset reports memset/memcpy/memmove calls on a struct that embeds a
// std:: container or object, where a raw byte copy would corrupt the
// embedded object's invariants.
func NoMemset(head *token.Token) []*diag.Result {
	var results []*diag.Result

	for tok := head; tok != nil; tok = tok.Next() {
		if !token.Match(tok, "memset|memcpy|memmove") {
			continue
		}

		typeName := memsetTargetType(tok)
		if typeName == "" {
			continue
		}

		pattern := "struct|class " + typeName + " {"
		for tstruct := token.FindMatch(head, pattern, nil); tstruct != nil; tstruct = tstruct.Next() {
			if tstruct.Str() == "}" {
				break
			}

			if token.SimpleMatch(tstruct, ") {") {
				link := tstruct.Next().Link()
				if link == nil {
					break
				}
				tstruct = link
				continue
			}

			isBoundary := token.Match(tstruct, "[;{}]") || containsColon(tstruct.Str())
			if !isBoundary {
				continue
			}

			if token.Match(tstruct.Next(), "std :: %type% %var% ;") {
				results = append(results, memsetStructResult(tok, tstruct.Next().StrAt(2)))
				continue
			}

			if token.Match(tstruct.Next(), "std :: %type% <") {
				typestr := tstruct.Next().StrAt(2)
				level := 0
				t := tstruct
				for {
					t = t.Next()
					if t == nil {
						break
					}
					switch t.Str() {
					case "<":
						level++
					case ">":
						if level <= 1 {
							goto doneTemplate
						}
						level--
					case "(":
						t = t.Link()
						if t == nil {
							goto doneTemplate
						}
					}
				}
			doneTemplate:
				if t == nil {
					break
				}
				tstruct = t
				if token.Match(tstruct, "> %var% ;") {
					results = append(results, memsetStructResult(tok, typestr))
				}
			}
		}
	}

	return results
}

func containsColon(s string) bool {
	for _, r := range s {
		if r == ':' {
			return true
		}
	}
	return false
}

func memsetStructResult(tok *token.Token, classname string) *diag.Result {
	return &diag.Result{
		ID:       diag.MemsetStruct,
		Severity: diag.Error,
		Primary:  loc(tok),
		Message:  "Using '" + tok.Str() + "' on struct that contains a 'std::" + classname + "'",
	}
}

// memsetTargetType recognizes the handful of call shapes the original
// checker accepts and returns the sizeof'd type name, or "" if tok doesn't
// start one of them.
func memsetTargetType(tok *token.Token) string {
	switch {
	case token.Match(tok, "memset ( %var% , %num% , sizeof ( %type% ) )"):
		return tok.StrAt(8)
	case token.Match(tok, "memset ( & %var% , %num% , sizeof ( %type% ) )"):
		return tok.StrAt(9)
	case token.Match(tok, "memset ( %var% , %num% , sizeof ( struct %type% ) )"):
		return tok.StrAt(9)
	case token.Match(tok, "memset ( & %var% , %num% , sizeof ( struct %type% ) )"):
		return tok.StrAt(10)
	case token.Match(tok, "%type% ( %var% , %var% , sizeof ( %type% ) )"):
		return tok.StrAt(8)
	}
	return ""
}
