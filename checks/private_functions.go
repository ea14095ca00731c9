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
	"github.com/deepaksalve/cppcheck/symbols"
	"github.com/deepaksalve/cppcheck/token"
)

// PrivateFunctions reports private member functions that are never called,
// neither by another method of the class nor anywhere else in the
// translation unit.
//
// This is a database-driven simplification of the original token-rescanning
// FuncList: rather than re-finding candidate declarations and their call
// sites by pattern matching the raw stream a second time, it reuses
// component C's already-resolved symbols.Func list and walks each
// function's body (inline or out-of-line) looking for calls.
func PrivateFunctions(db *symbols.Database, head *token.Token, settings options.Settings) []*diag.Result {
	if !settings.CheckCodingStyle {
		return nil
	}

	var results []*diag.Result

	for _, info := range db.All() {
		if info.IsNamespace {
			continue
		}

		// Original only checks classes declared in the primary source
		// file (fileIndex 0); it has no way to know the whole
		// implementation was seen for a class pulled in from a header.
		if info.ClassDef == nil || info.ClassDef.FileIndex() != 0 {
			continue
		}

		if hasFriendOrNestedClass(info.ClassStart) {
			continue
		}

		candidates := map[string]*symbols.Func{}
		for _, fn := range info.FunctionList {
			if fn.Access != symbols.Private || fn.IsFriend || fn.IsOperator {
				continue
			}
			if fn.Type != symbols.Function {
				continue
			}
			candidates[fn.TokenDef.Str()] = fn
		}
		if len(candidates) == 0 {
			continue
		}

		hasFuncImpl := false
		for _, fn := range info.FunctionList {
			if fn.HasBody && fn.Token.FileIndex() == 0 {
				hasFuncImpl = true
			}
			if fn.BodyStart == nil {
				continue
			}
			removeCalledNames(fn.BodyStart, candidates)
		}
		if !hasFuncImpl {
			continue
		}

		for name := range candidates {
			if findCallSiteOutsideClass(head, name) {
				delete(candidates, name)
			}
		}

		for name, fn := range candidates {
			results = append(results, &diag.Result{
				ID:        diag.UnusedPrivateFunction,
				Severity:  diag.Style,
				Primary:   loc(fn.TokenDef),
				ClassName: info.ClassName,
				Message:   "Unused private function '" + info.ClassName + "::" + name + "'",
			})
		}
	}

	return results
}

// hasFriendOrNestedClass reports whether the class body starting at
// classStart (the '{' of the class) declares a friend or a nested class,
// either of which makes the original bail out of the whole candidate list
// rather than risk a false positive ("friend %var%" or a bare "class" seen
// while scanning the body, checkclass.cpp privateFunctions()).
func hasFriendOrNestedClass(classStart *token.Token) bool {
	if classStart == nil || classStart.Str() != "{" {
		return false
	}
	depth := 0
	for t := classStart; t != nil; t = t.Next() {
		switch t.Str() {
		case "{":
			depth++
		case "}":
			depth--
			if depth < 1 {
				return false
			}
		case "friend":
			if token.Match(t, "friend %var%") {
				return true
			}
		case "class":
			if depth == 1 {
				return true
			}
		}
	}
	return false
}

// removeCalledNames deletes from candidates every name that is called
// (pattern "%var% (") somewhere inside the body starting at body's '{'.
func removeCalledNames(body *token.Token, candidates map[string]*symbols.Func) {
	depth := 0
	for t := body; t != nil; t = t.Next() {
		switch t.Str() {
		case "{":
			depth++
		case "}":
			depth--
			if depth < 1 {
				return
			}
		}
		if token.Match(t, "%var% (") {
			delete(candidates, t.Str())
		}
	}
}

// findCallSiteOutsideClass mirrors the original's final fallback check: a
// private function may be unreachable from any method body and still be
// used, e.g. passed as a function pointer via "return|(|)|,|= name".
func findCallSiteOutsideClass(head *token.Token, name string) bool {
	for _, pattern := range []string{"return " + name, "( " + name, ") " + name, ", " + name, "= " + name} {
		if token.FindMatch(head, pattern, nil) != nil {
			return true
		}
	}
	return false
}
