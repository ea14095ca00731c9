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

// Package diag is component F: the reportable outcome of a check, and the
// small amount of machinery needed to collect, dedup and localize a run's
// results.
package diag

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Severity mirrors cppcheck's three-valued message classification.
type Severity int

const (
	Style Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Style:
		return "style"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ID names a check the way cppcheck's reportError id strings do: stable,
// lowerCamelCase, used both for localization lookups and --enable/--suppress
// filtering by a caller.
type ID string

const (
	NoConstructor           ID = "noConstructor"
	UninitVar               ID = "uninitVar"
	OperatorEqVarError      ID = "operatorEqVarError"
	UnusedPrivateFunction   ID = "unusedPrivateFunction"
	MemsetClass             ID = "memsetClass"
	MemsetStruct            ID = "memsetStruct"
	OperatorEqReturn        ID = "operatorEq"
	OperatorEqRetRefThis    ID = "operatorEqRetRefThis"
	OperatorEqToSelf        ID = "operatorEqToSelf"
	VirtualDestructor       ID = "virtualDestructor"
	ThisSubtraction         ID = "thisSubtraction"
	FunctionConst           ID = "functionConst"
)

// Location is the one piece of position data a Result carries forward from
// a Token: enough to point a reader at the offending line without keeping
// the token sequence itself alive.
type Location struct {
	File      string
	FileIndex int32
	Line      int32
}

// Result is one finding, already rendered to its final message text. Most
// checks only need Primary; functionConst's out-of-line variant also sets
// Secondary to point at the declaration.
type Result struct {
	ID        ID
	Severity  Severity
	Primary   Location
	Secondary *Location
	ClassName string
	Message   string
}

// resultKey is the identity Results dedup on: same id, same primary
// location, same rendered text.
type resultKey struct {
	id      ID
	file    string
	line    int32
	message string
}

// Set collects Results, silently dropping anything it has already seen.
// Grounded on naivesystems-analyze's ResultsSet: a result is identified by
// (id, location, message), not by pointer identity, because the same finding
// can be produced by more than one code path (e.g. an out-of-line method
// reached both directly and through a derived class's scan).
type Set struct {
	results []*Result
	seen    map[resultKey]struct{}
}

func NewSet() *Set {
	return &Set{seen: make(map[resultKey]struct{})}
}

func (s *Set) Add(r *Result) {
	key := resultKey{id: r.ID, file: r.Primary.File, line: r.Primary.Line, message: r.Message}
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.results = append(s.results, r)
}

func (s *Set) Results() []*Result {
	return s.results
}

// Sort orders results by file, then line, then id, so a run's output is
// stable across goroutine scheduling and map-iteration order regardless of
// the order checks happened to append them in.
func (s *Set) Sort() {
	slices.SortFunc(s.results, func(a, b *Result) int {
		if a.Primary.File != b.Primary.File {
			return strings.Compare(a.Primary.File, b.Primary.File)
		}
		if a.Primary.Line != b.Primary.Line {
			return int(a.Primary.Line) - int(b.Primary.Line)
		}
		return strings.Compare(string(a.ID), string(b.ID))
	})
}
