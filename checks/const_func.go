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
	"strings"

	"github.com/deepaksalve/cppcheck/cruleslib/options"
	"github.com/deepaksalve/cppcheck/diag"
	"github.com/deepaksalve/cppcheck/symbols"
	"github.com/deepaksalve/cppcheck/token"
)

// CheckConst reports non-const, non-virtual, non-static, non-friend member
// functions whose body never mutates the class and never calls anything
// that might, and so could safely be declared const.
func CheckConst(db *symbols.Database, head *token.Token, settings options.Settings) []*diag.Result {
	if !settings.CheckCodingStyle || settings.Ifcfg {
		return nil
	}

	var results []*diag.Result

	for _, info := range db.All() {
		for _, fn := range info.FunctionList {
			if fn.Type != symbols.Function || !fn.HasBody || fn.IsFriend || fn.IsStatic || fn.IsConst || fn.IsVirtual {
				continue
			}

			functionName := fn.TokenDef.Str()
			if fn.IsOperator {
				functionName = "operator" + functionName
			}

			previous := fn.Token.Previous()
			if fn.IsOperator {
				previous = fn.Token.TokAt(-2)
			}
			for previous != nil && previous.Str() == "::" {
				previous = previous.TokAt(-2)
			}
			if previous == nil {
				continue
			}

			switch {
			case token.Match(previous, "*|&"):
				temp := fn.Token.Previous()
				for temp.Previous() != nil && !token.Match(temp.Previous(), ";|}|{|public:|protected:|private:") {
					temp = temp.Previous()
				}
				if temp.Str() != "const" {
					continue
				}

			case token.Match(previous.Previous(), "*|& >"):
				temp := fn.Token.Previous()
				found := false
				for temp.Previous() != nil && !token.Match(temp.Previous(), ";|}|{|public:|protected:|private:") {
					temp = temp.Previous()
					if temp.Str() == "const" {
						found = true
						break
					}
				}
				if !found {
					continue
				}

			default:
				if previous.IsName() && isAllUpper(previous.Str()) {
					continue
				}
			}

			paramEnd := fn.Token.Next().Link()
			if paramEnd == nil {
				continue
			}

			if len(info.DerivedFrom) > 0 && isVirtual(head, info.DerivedFrom, fn.Token) {
				continue
			}

			if checkConstFunc(head, info.ClassName, info.DerivedFrom, info.VarList, paramEnd) {
				if fn.IsInline {
					results = append(results, &diag.Result{
						ID:        diag.FunctionConst,
						Severity:  diag.Style,
						Primary:   loc(fn.Token),
						ClassName: info.QualifiedName(),
						Message:   "The function '" + info.QualifiedName() + "::" + functionName + "' can be const",
					})
				} else {
					results = append(results, &diag.Result{
						ID:        diag.FunctionConst,
						Severity:  diag.Style,
						Primary:   loc(fn.Token),
						Secondary: secondaryLoc(fn.TokenDef),
						ClassName: info.QualifiedName(),
						Message:   "The function '" + info.QualifiedName() + "::" + functionName + "' can be const",
					})
				}
			}
		}
	}

	return results
}

func secondaryLoc(tok *token.Token) *diag.Location {
	l := loc(tok)
	return &l
}

func isAllUpper(s string) bool {
	for _, r := range s {
		if r != '_' && !(r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// isVirtual reports whether the base classes named in derivedFrom declare
// functionToken's function as virtual, with matching name, return type and
// arguments.
func isVirtual(head *token.Token, derivedFrom []string, functionToken *token.Token) bool {
	for _, base := range derivedFrom {
		className := base
		if strings.Contains(base, "::") {
			continue // nested base classes and namespaces are not resolved
		}

		classToken := token.FindMatch(head, "class|struct "+className+" {", nil)
		if classToken == nil {
			classToken = token.FindMatch(head, "class|struct "+className+" :", nil)
		}
		if classToken == nil {
			continue
		}

		var baseList []string
		tok := classToken
		for tok.Str() != "{" {
			if token.Match(tok, ":|, public|protected|private") {
				tok = tok.TokAt(2)
				b := ""
				for token.Match(tok, "%var% ::") {
					b += tok.Str() + " :: "
					tok = tok.TokAt(2)
				}
				b += tok.Str()
				baseList = append(baseList, b)
			}
			tok = tok.Next()
		}

		found := false
		for tok = tok.Next(); tok != nil; tok = tok.Next() {
			switch {
			case tok.Str() == "{":
				tok = tok.Link()
				if tok == nil {
					found = false
					tok = nil
				}
			case tok != nil && tok.Str() == "}":
				tok = nil
			case tok != nil && token.Match(tok, "public:|protected:|private:"):
				continue
			case tok != nil && tok.Str() == "(":
				tok = tok.Link()
			case tok != nil && tok.Str() == "virtual":
				for tok.Next().Str() != "(" {
					tok = tok.Next()
				}
				if tok.Str() == functionToken.Str() {
					temp1 := tok.Previous()
					temp2 := functionToken.Previous()
					returnMatch := true
					for temp1.Str() != "virtual" {
						if temp1.Str() != temp2.Str() {
							returnMatch = false
							break
						}
						temp1 = temp1.Previous()
						temp2 = temp2.Previous()
					}
					if returnMatch && symbols.ArgsMatch(tok.TokAt(2), functionToken.TokAt(2), "", 0) {
						found = true
					}
				}
			}
			if tok == nil || found {
				break
			}
		}

		if found {
			return true
		}
		if len(baseList) > 0 && isVirtual(head, baseList, functionToken) {
			return true
		}
	}
	return false
}

// isMemberVar reports whether the expression ending at tok refers to a
// member variable (directly, through "this->", or inherited), and if so,
// whether that member is non-mutable. head is needed only to resolve base
// classes when the variable isn't found in vars.
func isMemberVar(head *token.Token, classname string, derivedFrom []string, vars []*symbols.Var, tok *token.Token) bool {
	for tok.Previous() != nil && !token.Match(tok.Previous(), "}|{|;|public:|protected:|private:|return|:|?") {
		if token.Match(tok.Previous(), "* this") {
			return true
		}
		tok = tok.Previous()
	}

	if tok.Str() == "this" {
		return true
	}

	if token.Match(tok, "( * %var% ) [") {
		tok = tok.TokAt(2)
	}

	if tok.Str() == classname && tok.Next() != nil && tok.Next().Str() == "::" {
		tok = tok.TokAt(2)
	}

	for _, v := range vars {
		if v.Name == tok.Str() {
			return !v.IsMutable
		}
	}

	for _, base := range derivedFrom {
		className := base
		if strings.Contains(base, "::") {
			continue // nested base classes and namespaces are not resolved
		}

		classToken := token.FindMatch(head, "class|struct "+className+" {", nil)
		if classToken == nil {
			classToken = token.FindMatch(head, "class|struct "+className+" :", nil)
		}
		if classToken == nil {
			continue
		}

		var baseList []string
		t := classToken
		for t.Str() != "{" {
			if token.Match(t, ":|, public|protected|private") {
				t = t.TokAt(2)
				b := ""
				for token.Match(t, "%var% ::") {
					b += t.Str() + " :: "
					t = t.TokAt(2)
				}
				b += t.Str()
				baseList = append(baseList, b)
			}
			t = t.Next()
		}

		baseVars := symbols.ExtractVars(classToken)
		if isMemberVar(head, classToken.StrAt(1), baseList, baseVars, tok) {
			return true
		}
	}

	return false
}

func checkConstFunc(head *token.Token, classname string, derivedFrom []string, vars []*symbols.Var, tok *token.Token) bool {
	indentLevel := 0
	isConst := true

	for tok1 := tok; tok1 != nil; tok1 = tok1.Next() {
		switch {
		case tok1.Str() == "{":
			indentLevel++
		case tok1.Str() == "}":
			if indentLevel <= 1 {
				return isConst
			}
			indentLevel--
		case tok1.Str() == "=" || isCompoundAssignOp(tok1.Str()):
			prev := tok1.Previous()
			if prev == nil {
				continue
			}
			if !isMemberVar(head, classname, derivedFrom, vars, prev) {
				if len(derivedFrom) > 0 {
					return false
				}
				continue
			}
			return false
		case tok1.Str() == "<<":
			if isMemberVar(head, classname, derivedFrom, vars, tok1.Previous()) {
				return false
			}
		case tok1.Str() == "++" || tok1.Str() == "--":
			return false
		case token.Match(tok1, "%var% (") && !token.Match(tok1, "return|c_str|if"):
			return false
		case token.Match(tok1, "%var% < %any% > ("):
			return false
		case tok1.Str() == "delete":
			return false
		}
	}

	return isConst
}

func isCompoundAssignOp(s string) bool {
	if len(s) != 2 || s[1] != '=' {
		return false
	}
	switch s[0] {
	case '<', '!', '>', '=':
		return false
	}
	return true
}
