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

// OperatorEq reports "void operator=(...)": the assignment operator must
// return something so that "a = b = c" keeps working.
func OperatorEq(db *symbols.Database, settings options.Settings) []*diag.Result {
	if !settings.CheckCodingStyle {
		return nil
	}

	var results []*diag.Result
	for _, info := range db.All() {
		for _, fn := range info.FunctionList {
			if fn.Type != symbols.OperatorEqual || fn.Access == symbols.Private {
				continue
			}
			if fn.Token.StrAt(-2) == "void" {
				results = append(results, &diag.Result{
					ID:        diag.OperatorEqReturn,
					Severity:  diag.Style,
					Primary:   loc(fn.Token.TokAt(-2)),
					ClassName: info.ClassName,
					Message:   "'operator=' should return something",
				})
			}
		}
	}
	return results
}

// OperatorEqRetRefThis reports operator= bodies whose return signature is
// "ClassName&" but that don't actually return a reference to *this.
func OperatorEqRetRefThis(db *symbols.Database, settings options.Settings) []*diag.Result {
	if !settings.CheckCodingStyle {
		return nil
	}

	var results []*diag.Result
	for _, info := range db.All() {
		for _, fn := range info.FunctionList {
			if fn.Type != symbols.OperatorEqual || !fn.HasBody {
				continue
			}

			sig := fn.TokenDef.TokAt(-4)
			if !token.Match(sig, ";|}|{|public:|protected:|private: %type% &") || fn.TokenDef.StrAt(-3) != info.ClassName {
				continue
			}

			argClose := fn.Token.Next().Link()
			if argClose == nil {
				continue
			}
			bodyOpen := argClose.Next()
			if bodyOpen == nil || bodyOpen.Str() != "{" {
				continue
			}
			last := bodyOpen.Link()
			if last == nil {
				continue
			}

			foundReturn := false
			cast := "( " + info.ClassName + " & )"
			for t := bodyOpen.Next(); t != nil && t != last; t = t.Next() {
				if t.Str() != "return" {
					continue
				}
				foundReturn = true
				check := t
				if token.Match(check.Next(), cast) {
					check = check.TokAt(4)
				}
				if !(token.Match(check.TokAt(1), "(| * this ;|=") ||
					token.Match(check.TokAt(1), "(| * this +=") ||
					token.Match(check.TokAt(1), "operator = (")) {
					results = append(results, operatorEqRetRefThisResult(fn.Token, info.ClassName))
				}
			}
			if !foundReturn {
				results = append(results, operatorEqRetRefThisResult(fn.Token, info.ClassName))
			}
		}
	}
	return results
}

func operatorEqRetRefThisResult(tok *token.Token, className string) *diag.Result {
	return &diag.Result{
		ID:        diag.OperatorEqRetRefThis,
		Severity:  diag.Style,
		Primary:   loc(tok),
		ClassName: className,
		Message:   "'operator=' should return reference to self",
	}
}

// OperatorEqToSelf reports operator= implementations that deallocate and
// reallocate a member without checking for self-assignment first. Single
// inheritance only: a class with more than one base has more than one
// possible address for the same object, so a pointer-identity self-check
// wouldn't be reliable anyway.
func OperatorEqToSelf(db *symbols.Database, settings options.Settings) []*diag.Result {
	if !settings.CheckCodingStyle {
		return nil
	}

	var results []*diag.Result
	for _, info := range db.All() {
		if len(info.DerivedFrom) > 1 {
			continue
		}

		for _, fn := range info.FunctionList {
			if fn.Type != symbols.OperatorEqual || !fn.HasBody {
				continue
			}

			argOpen := fn.Token.Next()
			argClose := argOpen.Link()
			if argClose == nil || !token.Match(argOpen, "( const %type% & %var% )") {
				continue
			}
			if argOpen.StrAt(2) != info.ClassName {
				continue
			}
			rhs := argOpen.TokAt(4)

			bodyOpen := argClose.Next()
			if bodyOpen == nil || bodyOpen.Str() != "{" {
				continue
			}
			last := bodyOpen.Link()
			if last == nil {
				continue
			}

			if hasAssignSelf(bodyOpen, last, rhs) {
				continue
			}
			if hasDeallocation(bodyOpen, last) {
				results = append(results, &diag.Result{
					ID:        diag.OperatorEqToSelf,
					Severity:  diag.Style,
					Primary:   loc(fn.Token),
					ClassName: info.ClassName,
					Message:   "'operator=' should check for assignment to self",
				})
			}
		}
	}
	return results
}

func hasAssignSelf(first, last, rhs *token.Token) bool {
	for tok := first; tok != nil && tok != last; tok = tok.Next() {
		if !token.SimpleMatch(tok, "if (") {
			continue
		}
		condEnd := tok.Next().Link()
		if condEnd == nil {
			continue
		}
		for t := tok.TokAt(2); t != nil && t != condEnd; t = t.Next() {
			if token.Match(t, "this ==|!= & %var%") && t.StrAt(3) == rhs.Str() {
				return true
			}
			if token.Match(t, "& %var% ==|!= this") && t.StrAt(1) == rhs.Str() {
				return true
			}
		}
	}
	return false
}

func hasDeallocation(first, last *token.Token) bool {
	for tok := first; tok != nil && tok != last; tok = tok.Next() {
		switch {
		case token.Match(tok, "{|;|, free ( %var%"):
			v := tok.StrAt(3)
			for t := tok.TokAt(4); t != nil && t != last; t = t.Next() {
				if token.Match(t, "%var% =") && t.Str() == v {
					return true
				}
			}
		case token.Match(tok, "{|;|, delete [ ] %var%"):
			v := tok.StrAt(4)
			for t := tok.TokAt(5); t != nil && t != last; t = t.Next() {
				if token.Match(t, "%var% = new %type% [") && t.Str() == v {
					return true
				}
			}
		case token.Match(tok, "{|;|, delete %var%"):
			v := tok.StrAt(2)
			for t := tok.TokAt(3); t != nil && t != last; t = t.Next() {
				if token.Match(t, "%var% = new") && t.Str() == v {
					return true
				}
			}
		}
	}
	return false
}
