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

func TestConstructorsNoConstructor(t *testing.T) {
	src := `class Foo { private: int a ; } ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	settings := options.Default()

	results := Constructors(db, settings)
	if len(results) != 1 || results[0].ID != diag.NoConstructor {
		t.Fatalf("expected one noConstructor result, got %+v", results)
	}
}

func TestConstructorsUninitVar(t *testing.T) {
	src := `class Foo { public: Foo ( ) : a ( 0 ) { } private: int a ; int b ; } ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	settings := options.Default()

	results := Constructors(db, settings)
	if len(results) != 1 || results[0].ID != diag.UninitVar {
		t.Fatalf("expected one uninitVar result for 'b', got %+v", results)
	}
}

func TestConstructorsDisabledByCheckCodingStyle(t *testing.T) {
	src := `class Foo { private: int a ; } ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	settings := options.Settings{CheckCodingStyle: false}

	if results := Constructors(db, settings); results != nil {
		t.Fatalf("expected no results with CheckCodingStyle off, got %+v", results)
	}
}
