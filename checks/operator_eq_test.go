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

func TestOperatorEqVoidReturn(t *testing.T) {
	src := `class Foo { public: void operator = ( const Foo & rhs ) { } } ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	settings := options.Default()

	results := OperatorEq(db, settings)
	if len(results) != 1 || results[0].ID != diag.OperatorEqReturn {
		t.Fatalf("expected one operatorEq result, got %+v", results)
	}
}

func TestOperatorEqToSelfMissingCheck(t *testing.T) {
	src := `class Foo { public:
	Foo & operator = ( const Foo & rhs ) {
		delete ptr ;
		ptr = new int [ 1 ] ;
		return * this ;
	}
	int * ptr ;
} ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	settings := options.Default()

	results := OperatorEqToSelf(db, settings)
	if len(results) != 1 || results[0].ID != diag.OperatorEqToSelf {
		t.Fatalf("expected one operatorEqToSelf result, got %+v", results)
	}
}

func TestOperatorEqToSelfGuardedIsSilent(t *testing.T) {
	src := `class Foo { public:
	Foo & operator = ( const Foo & rhs ) {
		if ( this == & rhs ) return * this ;
		delete ptr ;
		ptr = new int [ 1 ] ;
		return * this ;
	}
	int * ptr ;
} ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	settings := options.Default()

	if results := OperatorEqToSelf(db, settings); len(results) != 0 {
		t.Fatalf("expected no results when self-assignment is guarded, got %+v", results)
	}
}
