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

// Package dataflow is component D: it decides, for one constructor body,
// which member variables end up initialized by the time the constructor
// returns. It never reports anything itself; checks.Constructors reads the
// Init flag this package sets.
package dataflow

import (
	"github.com/deepaksalve/cppcheck/symbols"
	"github.com/deepaksalve/cppcheck/token"
)

// Analyze walks a constructor (or a member function it transitively calls)
// body starting at ftok and sets Init=true on every entry of vars that the
// body initializes. Callers reset every Var.Init to false before the first
// call for a given constructor; vars is shared and mutated in place across
// the recursive calls this function makes for resolvable member-function
// calls.
//
// callstack holds the names of member functions already being analyzed on
// this path, so a recursive or mutually-recursive call is treated as
// "assume everything is initialized" rather than looping forever.
func Analyze(info *symbols.SpaceInfo, ftok *token.Token, vars []*symbols.Var, callstack []string) {
	assign := false
	indentLevel := 0

	for tok := ftok; tok != nil; tok = tok.Next() {
		if tok.Next() == nil {
			break
		}

		if indentLevel == 0 {
			if assign && token.Match(tok, "%var% (") {
				initVar(vars, tok.Str())
				if token.Match(tok.TokAt(2), "%var% =") {
					initVar(vars, tok.StrAt(2))
				}
			}
			if tok.Str() == ":" {
				assign = true
			}
		}

		switch tok.Str() {
		case "{":
			indentLevel++
			assign = false
		case "}":
			if indentLevel <= 1 {
				return
			}
			indentLevel--
		}

		if indentLevel < 1 {
			continue
		}

		if token.Match(tok, ">> %var%") {
			initVar(vars, tok.StrAt(1))
		}

		if !token.Match(tok, "[{};()=]") {
			continue
		}

		if token.SimpleMatch(tok, "( !") {
			tok = tok.Next()
		}

		if token.SimpleMatch(tok.Next(), "* this =") {
			markAll(vars)
			return
		}

		if token.Match(tok.Next(), "%var% . %var% (") {
			tok = tok.TokAt(2)
		}

		if !token.Match(tok.Next(), "%var%") &&
			!token.Match(tok.Next(), "this . %var%") &&
			!token.Match(tok.Next(), "* %var% =") &&
			!token.Match(tok.Next(), "( * this ) . %var%") {
			continue
		}

		tok = tok.Next()

		if token.SimpleMatch(tok, "( * this ) .") {
			tok = tok.TokAt(5)
		}
		if token.SimpleMatch(tok, "this .") {
			tok = tok.TokAt(2)
		}
		if token.Match(tok, "%var% ::") {
			tok = tok.TokAt(2)
		}

		switch {
		case token.SimpleMatch(tok, "memset ( this ,"):
			markAll(vars)
			return

		case token.Match(tok, "memset ( %var% ,"):
			initVar(vars, tok.StrAt(2))
			tok = tok.Next().Link()
			continue

		case token.Match(tok, "%var% (") && tok.Str() != "if":
			if passesThis(tok) {
				markAll(vars)
				return
			}
			if contains(callstack, tok.Str()) {
				markAll(vars)
				return
			}

			if fn := findMemberFunction(info, tok.Str()); fn != nil {
				if fn.HasBody && fn.BodyStart != nil {
					Analyze(info, fn.BodyStart, vars, append(callstack, tok.Str()))
					continue
				}
				// declared but no resolvable body: bail conservatively.
				markAll(vars)
				return
			}

			if len(info.DerivedFrom) > 0 {
				markAll(vars)
				return
			}

			// A genuinely external function: assume it initializes
			// whatever member variables are passed to it by name.
			depth := 0
			for t := tok.TokAt(2); t != nil; t = t.Next() {
				switch t.Str() {
				case "(":
					depth++
				case ")":
					if depth == 0 {
						t = nil
					} else {
						depth--
					}
				}
				if t == nil {
					break
				}
				if t.IsName() {
					initVar(vars, t.Str())
				}
			}
			continue

		case token.Match(tok, "%var% ="):
			initVar(vars, tok.Str())

		case token.Match(tok, "%var% [ %any% ] ="):
			initVar(vars, tok.Str())

		case token.Match(tok, "%var% [ %any% ] [ %any% ] ="):
			initVar(vars, tok.Str())

		case token.Match(tok, "* %var% ="):
			initVar(vars, tok.StrAt(1))

		case token.Match(tok, "%var% . %any% ="):
			initVar(vars, tok.Str())
		}

		if token.Match(tok, "%var% . clear|Clear (") {
			initVar(vars, tok.Str())
		}
	}
}

func initVar(vars []*symbols.Var, name string) {
	for _, v := range vars {
		if v.Name == name {
			v.Init = true
			return
		}
	}
}

func markAll(vars []*symbols.Var) {
	for _, v := range vars {
		v.Init = true
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// passesThis reports whether any argument to the call at tok (a "%var% ("
// token) is literally "this".
func passesThis(tok *token.Token) bool {
	open := tok.Next()
	argClose := open.Link()
	if argClose == nil {
		return false
	}
	for t := argClose; t != nil && t != tok; t = t.Previous() {
		if t.Str() == "this" {
			return true
		}
	}
	return false
}

// findMemberFunction looks up a member function of info by its unqualified
// name, reusing the resolution component C already performed (inline bodies
// and out-of-line definitions alike) instead of re-scanning the token
// stream the way the original findClassFunction does.
func findMemberFunction(info *symbols.SpaceInfo, name string) *symbols.Func {
	for _, fn := range info.FunctionList {
		if fn.TokenDef.Str() == name {
			return fn
		}
	}
	return nil
}
