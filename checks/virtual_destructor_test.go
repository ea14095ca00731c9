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
	"github.com/deepaksalve/cppcheck/token"
)

func TestVirtualDestructorMissing(t *testing.T) {
	src := `
class Base {
public:
	~ Base ( ) { cleanup ( ) ; }
} ;
class Derived : public Base {
public:
	~ Derived ( ) { cleanup2 ( ) ; }
} ;
`
	head := token.Tokenize(src, 0)
	settings := options.Settings{Inconclusive: true}

	results := VirtualDestructor(head, settings)
	if len(results) != 1 || results[0].ID != diag.VirtualDestructor {
		t.Fatalf("expected one virtualDestructor result, got %+v", results)
	}
}

func TestVirtualDestructorDisabledWithoutInconclusive(t *testing.T) {
	src := `
class Base {
public:
	~ Base ( ) { cleanup ( ) ; }
} ;
class Derived : public Base {
public:
	~ Derived ( ) { cleanup2 ( ) ; }
} ;
`
	head := token.Tokenize(src, 0)
	settings := options.Settings{Inconclusive: false}

	if results := VirtualDestructor(head, settings); results != nil {
		t.Fatalf("expected no results with Inconclusive off, got %+v", results)
	}
}
