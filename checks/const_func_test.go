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
	"testing"

	"github.com/deepaksalve/cppcheck/cruleslib/options"
	"github.com/deepaksalve/cppcheck/diag"
	"github.com/deepaksalve/cppcheck/symbols"
	"github.com/deepaksalve/cppcheck/token"
)

func TestCheckConstFlagsReadOnlyFunction(t *testing.T) {
	src := `class Foo { public: int get ( ) { return a ; } private: int a ; } ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	settings := options.Default()

	results := CheckConst(db, head, settings)
	if len(results) != 1 || results[0].ID != diag.FunctionConst {
		t.Fatalf("expected one functionConst result, got %+v", results)
	}
}

func TestCheckConstIgnoresMutatingFunction(t *testing.T) {
	src := `class Foo { public: void set ( int v ) { a = v ; } private: int a ; } ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	settings := options.Default()

	if results := CheckConst(db, head, settings); len(results) != 0 {
		t.Fatalf("expected no results for a mutating function, got %+v", results)
	}
}

func TestCheckConstIgnoresEqualityComparison(t *testing.T) {
	// "count == 0" must not be mistaken for a compound assignment just
	// because its second character is '='; a comparison inside a
	// read-only body still leaves the function const-able.
	src := `class Foo { public: bool empty ( ) { return count == 0 ; } private: int count ; } ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	settings := options.Default()

	results := CheckConst(db, head, settings)
	if len(results) != 1 || results[0].ID != diag.FunctionConst {
		t.Fatalf("expected 'empty' to be reported as const-able, got %+v", results)
	}
}

func TestCheckConstDisabledByIfcfg(t *testing.T) {
	src := `class Foo { public: int get ( ) { return a ; } private: int a ; } ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	settings := options.Settings{CheckCodingStyle: true, Ifcfg: true}

	if results := CheckConst(db, head, settings); results != nil {
		t.Fatalf("expected no results with Ifcfg on, got %+v", results)
	}
}
