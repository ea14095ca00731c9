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

package diag

import "testing"

func TestSetDedupsByIDLocationMessage(t *testing.T) {
	s := NewSet()
	r := &Result{ID: NoConstructor, Primary: Location{File: "a.cpp", Line: 3}, Message: "m"}
	s.Add(r)
	s.Add(&Result{ID: NoConstructor, Primary: Location{File: "a.cpp", Line: 3}, Message: "m"})

	if len(s.Results()) != 1 {
		t.Fatalf("expected duplicate result to be dropped, got %d", len(s.Results()))
	}
}

func TestSetKeepsDistinctResults(t *testing.T) {
	s := NewSet()
	s.Add(&Result{ID: NoConstructor, Primary: Location{File: "a.cpp", Line: 3}, Message: "m"})
	s.Add(&Result{ID: UninitVar, Primary: Location{File: "a.cpp", Line: 3}, Message: "m"})

	if len(s.Results()) != 2 {
		t.Fatalf("expected two distinct results, got %d", len(s.Results()))
	}
}

func TestSetSortOrdersByFileThenLine(t *testing.T) {
	s := NewSet()
	s.Add(&Result{ID: NoConstructor, Primary: Location{File: "b.cpp", Line: 1}, Message: "x"})
	s.Add(&Result{ID: NoConstructor, Primary: Location{File: "a.cpp", Line: 5}, Message: "y"})
	s.Add(&Result{ID: NoConstructor, Primary: Location{File: "a.cpp", Line: 1}, Message: "z"})
	s.Sort()

	results := s.Results()
	if results[0].Primary.File != "a.cpp" || results[0].Primary.Line != 1 {
		t.Fatalf("expected a.cpp:1 first, got %+v", results[0])
	}
	if results[1].Primary.File != "a.cpp" || results[1].Primary.Line != 5 {
		t.Fatalf("expected a.cpp:5 second, got %+v", results[1])
	}
	if results[2].Primary.File != "b.cpp" {
		t.Fatalf("expected b.cpp last, got %+v", results[2])
	}
}

func TestRenderIncludesSeverityAndID(t *testing.T) {
	r := &Result{ID: NoConstructor, Severity: Style, Primary: Location{File: "a.cpp", Line: 3}, Message: "no ctor"}
	got := Render(r, Printer("en"))
	want := "[style][noConstructor] a.cpp:3: no ctor"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
