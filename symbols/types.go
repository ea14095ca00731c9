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

// Package symbols builds the class symbol model (components B and C):
// namespaces, classes, structs, member variables and methods recovered
// from a flat token stream by pattern matching, not by parsing.
package symbols

import "github.com/deepaksalve/cppcheck/token"

// Access is the tri-valued access control of a member or method.
type Access int

const (
	Public Access = iota
	Protected
	Private
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "unknown"
	}
}

// Var is one data member of a class, in source declaration order.
type Var struct {
	Name      string
	Init      bool // mutable; reset and recomputed per constructor analysis
	Priv      bool // declared in a private section
	IsMutable bool
	IsStatic  bool
	IsClass   bool // type is not a built-in scalar
}

// FuncType classifies a member function.
type FuncType int

const (
	Function FuncType = iota
	Constructor
	CopyConstructor
	OperatorEqual
	Destructor
)

// Func is one member function, whether declared inline or out-of-line.
type Func struct {
	TokenDef   *token.Token // name token at the declaration site inside the class body
	Token      *token.Token // name token at the implementation site (== TokenDef when inline or not found)
	BodyStart  *token.Token // opening '{' of the function body, nil when HasBody is false
	Access     Access
	Type       FuncType
	HasBody    bool
	IsInline   bool
	IsConst    bool
	IsVirtual  bool
	IsStatic   bool
	IsFriend   bool
	IsOperator bool
}

// SpaceInfo is one class, struct or namespace scope.
type SpaceInfo struct {
	IsNamespace     bool
	ClassName       string
	ClassDef        *token.Token
	ClassStart      *token.Token
	ClassEnd        *token.Token
	DerivedFrom     []string
	NumConstructors int
	VarList         []*Var
	FunctionList    []*Func
	Nest            *SpaceInfo // enclosing scope; a lookup relation, never ownership
	Access          Access
}

// IsStruct reports whether this scope was opened with the "struct" keyword.
func (s *SpaceInfo) IsStruct() bool {
	return s.ClassDef != nil && s.ClassDef.Str() == "struct"
}

// QualifiedName prefixes ClassName with every enclosing scope's name,
// joined the way checkConst's diagnostic text does: "Outer::Inner".
func (s *SpaceInfo) QualifiedName() string {
	name := s.ClassName
	for nest := s.Nest; nest != nil; nest = nest.Nest {
		name = nest.ClassName + "::" + name
	}
	return name
}
