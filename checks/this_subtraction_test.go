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

func TestThisSubtractionFlagsSuspiciousTypo(t *testing.T) {
	head := token.Tokenize("x = this - y ;", 0)
	settings := options.Default()

	results := ThisSubtraction(head, settings)
	if len(results) != 1 || results[0].ID != diag.ThisSubtraction {
		t.Fatalf("expected one thisSubtraction result, got %+v", results)
	}
}

func TestThisSubtractionIgnoresPointerDeref(t *testing.T) {
	head := token.Tokenize("x = * this - y ;", 0)
	settings := options.Default()

	if results := ThisSubtraction(head, settings); len(results) != 0 {
		t.Fatalf("expected no results for '*this - y', got %+v", results)
	}
}
