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

import "github.com/deepaksalve/cppcheck/token"

// Database is the multi-valued className -> SpaceInfo mapping: the same
// unqualified name can occur in distinct enclosing scopes, so lookups by
// name return every match, in the order they were discovered. The
// database owns every SpaceInfo and every Var; it is immutable after Build
// returns.
type Database struct {
	all    []*SpaceInfo
	byName map[string][]*SpaceInfo
}

func newDatabase() *Database {
	return &Database{byName: make(map[string][]*SpaceInfo)}
}

func (db *Database) insert(info *SpaceInfo) {
	db.all = append(db.all, info)
	db.byName[info.ClassName] = append(db.byName[info.ClassName], info)
}

// All returns every scope in source (insertion) order.
func (db *Database) All() []*SpaceInfo {
	return db.all
}

// ByName returns every scope with the given unqualified name, in the order
// they were discovered.
func (db *Database) ByName(name string) []*SpaceInfo {
	return db.byName[name]
}

// Builder lazily and idempotently builds a Database, mirroring the
// hasSymbolDatabase guard on the original CheckClass: repeated calls after
// the first return the cached database rather than re-scanning the tokens.
type Builder struct {
	built bool
	db    *Database
}

// Database returns the symbol database for tokens, building it on first
// call and returning the cached result thereafter.
func (b *Builder) Database(tokens *token.Token) *Database {
	if b.built {
		return b.db
	}
	b.db = Build(tokens)
	b.built = true
	return b.db
}

// Build performs the single forward sweep described in spec §4.C: it
// creates a SpaceInfo for every class/struct/namespace header, links each
// into its enclosing scope's Nest chain, collects each class's var list via
// ExtractVars, and collects each class's methods (inline and out-of-line)
// via scanClassBody.
func Build(head *token.Token) *Database {
	db := newDatabase()
	var current *SpaceInfo

	for tok := head; tok != nil; tok = tok.Next() {
		if token.Match(tok, "class|struct|namespace %var% [{:]") {
			info := openScope(tok, current)
			db.insert(info)
			current = info
			tok = info.ClassStart
			continue
		}

		if current != nil && !current.IsNamespace {
			if tok == current.ClassEnd {
				current = current.Nest
				continue
			}
			advanced := scanClassBody(tok, current)
			if advanced != nil {
				tok = advanced
			}
		}
	}

	return db
}

// openScope materializes a new SpaceInfo for a "class|struct|namespace name"
// header, consuming the optional base-class list up to the body's '{'.
func openScope(tok *token.Token, parent *SpaceInfo) *SpaceInfo {
	info := &SpaceInfo{
		IsNamespace: tok.Str() == "namespace",
		ClassName:   tok.StrAt(1),
		ClassDef:    tok,
		Nest:        parent,
	}
	if tok.Str() == "struct" {
		info.Access = Public
	} else {
		info.Access = Private
	}

	tok2 := tok.TokAt(2)
	for tok2 != nil && tok2.Str() != "{" {
		if token.Match(tok2, ":|, public|protected|private") {
			tok2 = tok2.TokAt(2)
			derived := ""
			for token.Match(tok2, "%var% ::") {
				derived += tok2.Str() + " :: "
				tok2 = tok2.TokAt(2)
			}
			if tok2 != nil {
				derived += tok2.Str()
			}
			info.DerivedFrom = append(info.DerivedFrom, derived)
		}
		tok2 = tok2.Next()
	}

	info.ClassStart = tok2
	if tok2 != nil {
		info.ClassEnd = tok2.Link()
	}
	info.VarList = ExtractVars(tok)
	return info
}
