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
	"github.com/deepaksalve/cppcheck/cruleslib/options"
	"github.com/deepaksalve/cppcheck/diag"
	"github.com/deepaksalve/cppcheck/token"
)

// ThisSubtraction reports "this - x", almost always a typo for "this->x"
// where the author meant member access, not pointer arithmetic.
func ThisSubtraction(head *token.Token, settings options.Settings) []*diag.Result {
	if !settings.CheckCodingStyle {
		return nil
	}

	var results []*diag.Result
	for tok := token.FindMatch(head, "this - %var%", nil); tok != nil; tok = token.FindMatch(tok.Next(), "this - %var%", nil) {
		if !token.SimpleMatch(tok.Previous(), "*") {
			results = append(results, &diag.Result{
				ID:       diag.ThisSubtraction,
				Severity: diag.Style,
				Primary:  loc(tok),
				Message:  "Suspicious pointer subtraction",
			})
		}
	}
	return results
}
