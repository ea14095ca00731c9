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

package token

import "testing"

func TestTokenizeAndLink(t *testing.T) {
	head := Tokenize("class A { public: int x; };", 0)
	if head.Str() != "class" {
		t.Fatalf("expected first token 'class', got %q", head.Str())
	}
	brace := FindMatch(head, "{", nil)
	if brace == nil {
		t.Fatal("expected to find '{'")
	}
	if brace.Link() == nil || brace.Link().Str() != "}" {
		t.Fatalf("expected '{' to link to '}', got %v", brace.Link())
	}
	if brace.Link().Link() != brace {
		t.Fatal("expected link to be symmetric")
	}
}

func TestMatchWildcards(t *testing.T) {
	head := Tokenize("int x = 5 ;", 0)
	if !Match(head, "%type% %var% = %num% ;") {
		t.Fatal("expected pattern to match declaration")
	}
}

func TestMatchOptionalSlot(t *testing.T) {
	head := Tokenize("foo ( ) const ;", 0)
	paren := FindMatch(head, "(", nil)
	if !Match(paren.Link().Next(), "const| ;") {
		t.Fatal("expected optional 'const|' slot to consume the const token")
	}

	head2 := Tokenize("bar ( ) ;", 0)
	paren2 := FindMatch(head2, "(", nil)
	if !Match(paren2.Link().Next(), "const| ;") {
		t.Fatal("expected optional 'const|' slot to be skippable when absent")
	}
}

func TestSimpleMatch(t *testing.T) {
	head := Tokenize("memset ( this , 0 , sizeof ( A ) ) ;", 0)
	if !SimpleMatch(head, "memset ( this ,") {
		t.Fatal("expected literal sequence to match")
	}
}

func TestFindMatchBounded(t *testing.T) {
	head := Tokenize("class A { } class B { } ;", 0)
	firstEnd := FindMatch(head, "}", nil)
	// searching for "class %var%" bounded by firstEnd should only find A
	found := FindMatch(head, "class %var%", firstEnd)
	if found == nil || found.StrAt(1) != "A" {
		t.Fatalf("expected bounded search to find class A, got %v", found)
	}
}
