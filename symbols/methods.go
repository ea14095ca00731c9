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

// scanClassBody looks at one position inside a class body (not a
// namespace). It updates current's access section on an access label, and
// on a recognized method declaration it appends a Func to
// current.FunctionList and returns the token the caller should resume
// scanning from (the end of the declaration/body). It returns nil when tok
// was not the start of anything scanClassBody handles, so the caller
// should simply advance by one token as usual.
func scanClassBody(tok *token.Token, current *SpaceInfo) *token.Token {
	switch tok.Str() {
	case "private:":
		current.Access = Private
		return nil
	case "protected:":
		current.Access = Protected
		return nil
	case "public:":
		current.Access = Public
		return nil
	}

	isCandidate := (token.Match(tok, "%var% (") || token.Match(tok, "operator %any% (")) && tok.Previous() != nil && tok.Previous().Str() != "::"
	if !isCandidate {
		return nil
	}

	var argOpen *token.Token
	if tok.Str() == "operator" {
		argOpen = tok.TokAt(2)
	} else {
		argOpen = tok.Next()
	}
	if argOpen == nil || argOpen.Link() == nil {
		return nil
	}
	if !token.Match(argOpen.Link(), ") const| ;|{|=|:") {
		return nil
	}

	fn := &Func{Access: current.Access, TokenDef: tok}

	if fn.TokenDef.Str() == "operator" {
		fn.IsOperator = true
		fn.TokenDef = fn.TokenDef.Next()
		if fn.TokenDef.Str() == "=" {
			fn.Type = OperatorEqual
		}
	} else if fn.TokenDef.Str() == current.ClassName {
		switch {
		case fn.TokenDef.Previous() != nil && fn.TokenDef.Previous().Str() == "~":
			fn.Type = Destructor
		case token.Match(fn.TokenDef, "%var% ( const %var% & %var%| )") && fn.TokenDef.StrAt(3) == current.ClassName:
			fn.Type = CopyConstructor
		default:
			fn.Type = Constructor
		}
	}

	// Scan backward to the previous statement boundary looking for one of
	// virtual/static/friend; first hit wins.
	for t1 := fn.TokenDef; t1.Previous() != nil && !token.Match(t1.Previous(), ";|}|{|public:|protected:|private:"); t1 = t1.Previous() {
		switch t1.Previous().Str() {
		case "virtual":
			fn.IsVirtual = true
		case "static":
			fn.IsStatic = true
		case "friend":
			fn.IsFriend = true
		}
		if fn.IsVirtual || fn.IsStatic || fn.IsFriend {
			break
		}
	}

	argClose := fn.TokenDef.Next().Link()
	if argClose != nil && argClose.Next() != nil && argClose.Next().Str() == "const" {
		fn.IsConst = true
	}

	if fn.Type == Constructor || fn.Type == CopyConstructor {
		current.NumConstructors++
	}

	fn.Token = fn.TokenDef
	next := fn.TokenDef.Next().Link()

	if token.Match(next, ") const| ;") || token.Match(next, ") const| = 0 ;") {
		resolveOutOfLine(fn, current)
		current.FunctionList = append(current.FunctionList, fn)
		return next.Next()
	}

	// inline
	fn.IsInline = true
	fn.HasBody = true
	body := next.Next()
	for body != nil && body.Str() != "{" {
		body = body.Next()
	}
	fn.BodyStart = body
	current.FunctionList = append(current.FunctionList, fn)
	if body != nil {
		return body.Link()
	}
	return body
}

// resolveOutOfLine implements spec §4.C.3: search the enclosing scope
// chain, from innermost to outermost, for "Sk :: ... :: name (" followed by
// a body whose argument list matches the declaration.
func resolveOutOfLine(fn *Func, info *SpaceInfo) {
	funcArgs := fn.TokenDef.TokAt(2)
	var classPattern string
	if fn.IsOperator {
		classPattern = "operator " + fn.TokenDef.Str() + " ("
	} else {
		classPattern = fn.TokenDef.Str() + " ("
	}

	nest := info
	depth := 0
	classPath := ""

	for !fn.HasBody && nest != nil {
		classPath = nest.ClassName + " :: " + classPath
		searchPattern := classPath + classPattern
		depth++
		nest = nest.Nest

		var boundary *token.Token
		if nest != nil {
			boundary = nest.ClassEnd
		}

		found := info.ClassEnd
		for {
			found = token.FindMatch(found, searchPattern, boundary)
			if found == nil {
				break
			}
			if found.Previous() != nil && found.Previous().Str() == "::" {
				break
			}
			for found.Next().Str() != "(" {
				found = found.Next()
			}
			if token.Match(found.Next().Link(), ") const| {") {
				if argsMatch(funcArgs, found.TokAt(2), classPath, depth) {
					fn.Token = found
					fn.HasBody = true
					body := found.Next().Link().Next()
					for body != nil && body.Str() != "{" {
						body = body.Next()
					}
					fn.BodyStart = body
					break
				}
				body := found
				for body.Str() != "{" {
					body = body.Next()
				}
				found = body.Link()
				continue
			}
		}
	}
}

// ArgsMatch exposes argsMatch to the checks package, which needs the same
// declaration/definition argument-list comparison to resolve virtual
// overrides in base classes.
func ArgsMatch(first, second *token.Token, path string, depth int) bool {
	return argsMatch(first, second, path, depth)
}

// argsMatch is spec §4.C.i: a lockstep comparison of a declaration's and a
// definition's argument-list token runs, tolerant of parameter-name
// differences, "= default" trailers and class-path-qualified type prefixes.
func argsMatch(first, second *token.Token, path string, depth int) bool {
	for first.Str() == second.Str() {
		if first.Str() == ")" {
			return true
		}

		if first.Next().Str() == "=" {
			first = first.TokAt(2)
			continue
		}

		if first.Next().Str() == "," && second.Next().Str() != "," {
			second = second.Next()
		} else if first.Next().Str() == ")" && second.Next().Str() != ")" {
			second = second.Next()
		} else if second.Next().Str() == "," && first.Next().Str() != "," {
			first = first.Next()
		} else if second.Next().Str() == ")" && first.Next().Str() != ")" {
			first = first.Next()
		} else if second.Str() == ")" {
			break
		} else if token.Match(first.Next(), "%var% ,|)|=") && token.Match(second.Next(), "%var% ,|)") && first.Next().Str() != second.Next().Str() {
			first = first.Next()
			second = second.Next()
			if first.Next().Str() == "=" {
				first = first.TokAt(2)
			}
		} else if depth > 0 && token.Match(first.Next(), "%var%") {
			param := path + first.Next().Str()
			if token.SimpleMatch(second.Next(), param) {
				second = second.TokAt(depth * 2)
			} else if depth > 1 {
				shortPath := shortenPath(path)
				param = shortPath + first.Next().Str()
				if token.SimpleMatch(second.Next(), param) {
					second = second.TokAt((depth - 1) * 2)
				}
			}
		}

		first = first.Next()
		second = second.Next()
		if first == nil || second == nil {
			return false
		}
	}

	return false
}

// shortenPath drops the last " :: "-separated segment of a class path, e.g.
// "Outer :: Inner :: " becomes "Outer :: ".
func shortenPath(path string) string {
	trimmed := strings.TrimSuffix(path, " :: ")
	idx := strings.LastIndex(trimmed, " ")
	if idx < 0 {
		return ""
	}
	return trimmed[:idx+1]
}
