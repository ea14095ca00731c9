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

// Package checks is component E: the seven semantic checks (plus
// thisSubtraction), each a function from a symbols.Database and/or a token
// head to a []*diag.Result.
package checks

import (
	"github.com/deepaksalve/cppcheck/cruleslib/options"
	"github.com/deepaksalve/cppcheck/dataflow"
	"github.com/deepaksalve/cppcheck/diag"
	"github.com/deepaksalve/cppcheck/symbols"
	"github.com/deepaksalve/cppcheck/token"
)

func loc(tok *token.Token) diag.Location {
	if tok == nil {
		return diag.Location{}
	}
	return diag.Location{FileIndex: tok.FileIndex(), Line: tok.LineNumber()}
}

// Constructors reports classes with private data and no constructor, and
// member variables that a found constructor (or operator=) leaves
// uninitialized.
func Constructors(db *symbols.Database, settings options.Settings) []*diag.Result {
	if !settings.CheckCodingStyle {
		return nil
	}

	var results []*diag.Result

	for _, info := range db.All() {
		if info.IsNamespace {
			continue
		}

		if info.NumConstructors == 0 {
			for _, v := range info.VarList {
				if v.Priv && !v.IsClass && !v.IsStatic {
					kind := "class"
					if info.IsStruct() {
						kind = "struct"
					}
					results = append(results, &diag.Result{
						ID:        diag.NoConstructor,
						Severity:  diag.Style,
						Primary:   loc(info.ClassDef),
						ClassName: info.ClassName,
						Message:   "The " + kind + " '" + info.ClassName + "' has no constructor. Member variables not initialized.",
					})
					break
				}
			}
		}

		for _, fn := range info.FunctionList {
			if !fn.HasBody || !(fn.Type == symbols.Constructor || fn.Type == symbols.CopyConstructor || fn.Type == symbols.OperatorEqual) {
				continue
			}

			for _, v := range info.VarList {
				v.Init = false
			}
			dataflow.Analyze(info, fn.Token, info.VarList, nil)

			for _, v := range info.VarList {
				if v.IsClass && fn.Type == symbols.Constructor {
					continue
				}
				if v.Init || v.IsStatic {
					continue
				}

				if fn.Type == symbols.OperatorEqual {
					if classNameUsedInOperatorEq(fn, info.ClassName) {
						results = append(results, &diag.Result{
							ID:        diag.OperatorEqVarError,
							Severity:  diag.Style,
							Primary:   loc(fn.Token),
							ClassName: info.ClassName,
							Message:   "Member variable '" + info.ClassName + "::" + v.Name + "' is not assigned a value in '" + info.ClassName + "::operator='",
						})
					}
				} else if fn.Access != symbols.Private && !v.IsStatic {
					results = append(results, &diag.Result{
						ID:        diag.UninitVar,
						Severity:  diag.Style,
						Primary:   loc(fn.Token),
						ClassName: info.ClassName,
						Message:   "Member variable not initialized in the constructor '" + info.ClassName + "::" + v.Name + "'",
					})
				}
			}
		}
	}

	return results
}

// classNameUsedInOperatorEq reports whether the class's own name literally
// appears inside operator='s parameter list, the signal the original
// checker uses to tell a real copy-assignment operator from a templated
// operator= that happens to be declared on this class.
func classNameUsedInOperatorEq(fn *symbols.Func, className string) bool {
	var operStart *token.Token
	if fn.Token.Str() == "=" {
		operStart = fn.Token.TokAt(1)
	} else {
		operStart = fn.Token.TokAt(3)
	}
	if operStart == nil {
		return false
	}
	end := operStart.Link()
	for t := operStart; t != nil && t != end; t = t.Next() {
		if t.Str() == className {
			return true
		}
	}
	return false
}
