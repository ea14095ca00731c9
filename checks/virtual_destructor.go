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
	"github.com/deepaksalve/cppcheck/cruleslib/options"
	"github.com/deepaksalve/cppcheck/diag"
	"github.com/deepaksalve/cppcheck/token"
)

// VirtualDestructor reports public-inheritance base classes with no
// destructor, or with a non-virtual destructor declared in a public
// section, where a derived class has its own non-empty destructor:
// deleting through a base pointer would skip the derived cleanup. Marked inconclusive because a single translation unit
// can't always see every base class in a multi-level hierarchy.
func VirtualDestructor(head *token.Token, settings options.Settings) []*diag.Result {
	if !settings.Inconclusive {
		return nil
	}

	var results []*diag.Result

	for derived := token.FindMatch(head, "class %var% : %var%", nil); derived != nil; {
		destructorPattern := "~ " + derived.StrAt(1) + " ( ) {"
		derivedDestructor := token.FindMatch(head, destructorPattern, nil)
		if derivedDestructor == nil {
			derived = token.FindMatch(derived.Next(), "class %var% : %var%", nil)
			continue
		}
		if token.Match(derivedDestructor, "~ %var% ( ) { }") {
			derived = token.FindMatch(derived.Next(), "class %var% : %var%", nil)
			continue
		}

		derivedClass := derived.TokAt(1)
		base := derived.TokAt(3)

		for token.Match(base, "%var%") {
			isPublic := base.Str() == "public"
			if token.Match(base, "public|protected|private") {
				base = base.Next()
			}
			baseName := base.Str()

			for base != nil {
				if base.Str() == "{" {
					break
				}
				if base.Str() == "," {
					base = base.Next()
					break
				}
				base = base.Next()
			}

			if !isPublic {
				continue
			}

			baseDtor := findBaseDestructor(head, baseName)
			reverseTok := baseDtor
			for token.Match(baseDtor, "%var%") && baseDtor.Str() != "virtual" {
				baseDtor = baseDtor.Previous()
			}

			if baseDtor == nil {
				if classDecl := token.FindMatch(head, "class "+baseName+" {", nil); classDecl != nil {
					results = append(results, virtualDestructorResult(classDecl, baseName, derivedClass.Str()))
				}
				continue
			}
			if baseDtor.Str() == "virtual" {
				continue
			}
			if token.FindMatch(head, "class "+baseName+" {", nil) == nil {
				continue
			}

			indent := 0
			t := reverseTok
			for t != nil {
				switch t.Str() {
				case "public:":
					results = append(results, virtualDestructorResult(baseDtor, baseName, derivedClass.Str()))
					t = nil
				case "protected:", "private:":
					t = nil
				case "{":
					indent++
					if indent >= 1 {
						t = nil
					}
				case "}":
					indent--
				}
				if t == nil {
					break
				}
				t = t.Previous()
			}
		}

		derived = token.FindMatch(derived.Next(), "class %var% : %var%", nil)
	}

	return results
}

func findBaseDestructor(head *token.Token, baseName string) *token.Token {
	base := token.FindMatch(head, "%any% ~ "+baseName+" (", nil)
	for base != nil && base.Str() == "::" {
		base = token.FindMatch(base.Next(), "%any% ~ "+baseName+" (", nil)
	}
	return base
}

func virtualDestructorResult(tok *token.Token, base, derived string) *diag.Result {
	return &diag.Result{
		ID:       diag.VirtualDestructor,
		Severity: diag.Error,
		Primary:  loc(tok),
		Message:  "Class " + base + " which is inherited by class " + derived + " does not have a virtual destructor",
	}
}
