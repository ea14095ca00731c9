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

package dataflow

import (
	"testing"

	"github.com/deepaksalve/cppcheck/symbols"
	"github.com/deepaksalve/cppcheck/token"
)

func TestAnalyzeInitializerList(t *testing.T) {
	src := `class Foo { Foo ( ) : a ( 0 ) , b ( 1 ) { } int a ; int b ; } ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	info := db.ByName("Foo")[0]

	var ctor *symbols.Func
	for _, fn := range info.FunctionList {
		if fn.Type == symbols.Constructor {
			ctor = fn
		}
	}
	if ctor == nil {
		t.Fatal("expected constructor")
	}

	Analyze(info, ctor.Token, info.VarList, nil)

	for _, v := range info.VarList {
		if !v.Init {
			t.Errorf("expected %s to be initialized by the initializer list", v.Name)
		}
	}
}

func TestAnalyzeLeavesVarUninitialized(t *testing.T) {
	src := `class Foo { Foo ( ) { a = 1 ; } int a ; int b ; } ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	info := db.ByName("Foo")[0]

	var ctor *symbols.Func
	for _, fn := range info.FunctionList {
		if fn.Type == symbols.Constructor {
			ctor = fn
		}
	}

	Analyze(info, ctor.Token, info.VarList, nil)

	if !info.VarList[0].Init {
		t.Error("expected a to be initialized")
	}
	if info.VarList[1].Init {
		t.Error("expected b to remain uninitialized")
	}
}

func TestAnalyzeMemsetThisMarksAll(t *testing.T) {
	src := `class Foo { Foo ( ) { memset ( this , 0 , sizeof ( Foo ) ) ; } int a ; int b ; } ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	info := db.ByName("Foo")[0]

	var ctor *symbols.Func
	for _, fn := range info.FunctionList {
		if fn.Type == symbols.Constructor {
			ctor = fn
		}
	}

	Analyze(info, ctor.Token, info.VarList, nil)

	for _, v := range info.VarList {
		if !v.Init {
			t.Errorf("expected memset(this, ...) to mark %s initialized", v.Name)
		}
	}
}

func TestAnalyzeRecursesIntoMemberCall(t *testing.T) {
	src := `class Foo {
		Foo ( ) { init ( ) ; }
		void init ( ) { a = 1 ; }
		int a ;
	} ;`
	head := token.Tokenize(src, 0)
	db := symbols.Build(head)
	info := db.ByName("Foo")[0]

	var ctor *symbols.Func
	for _, fn := range info.FunctionList {
		if fn.Type == symbols.Constructor {
			ctor = fn
		}
	}

	Analyze(info, ctor.Token, info.VarList, nil)

	if !info.VarList[0].Init {
		t.Error("expected a to be initialized through the resolved init() call")
	}
}
