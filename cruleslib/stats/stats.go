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

// Package stats reports how much C/C++ source a run actually looked at, and
// how the results broke down by severity.
package stats

import (
	"github.com/golang/glog"
	"github.com/hhatto/gocloc"

	"github.com/deepaksalve/cppcheck/diag"
)

// SeverityCount tallies one run's results by severity, for the final
// "N style, M error" summary line.
type SeverityCount struct {
	Style   int
	Warning int
	Error   int
}

// Accumulate adds one result's severity to cnt.
func Accumulate(cnt *SeverityCount, sev diag.Severity) {
	switch sev {
	case diag.Style:
		cnt.Style++
	case diag.Warning:
		cnt.Warning++
	case diag.Error:
		cnt.Error++
	}
}

// CountLines counts C/C++ code lines in the given files or directories,
// reported as the run's total line count at the end of a run.
func CountLines(workingDirs []string) (int, error) {
	clocOpts := gocloc.NewClocOptions()
	languages := gocloc.NewDefinedLanguages()
	for _, lang := range []string{"C", "C++", "C Header", "C++ Header"} {
		if _, exists := languages.Langs[lang]; exists {
			clocOpts.IncludeLangs[lang] = struct{}{}
		}
	}

	processor := gocloc.NewProcessor(languages, clocOpts)
	result, err := processor.Analyze(workingDirs)
	if err != nil {
		glog.Errorf("gocloc failed on %v: %v", workingDirs, err)
		return 0, err
	}

	sum := 0
	for _, file := range result.Files {
		sum += int(file.Code)
	}
	return sum, nil
}
