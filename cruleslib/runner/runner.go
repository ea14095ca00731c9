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

// Package runner orchestrates one analysis pass: resolve the source files a
// glob selects, build a symbol database per file, run every check against
// it, and fold the results into one deduplicated set.
package runner

import (
	"fmt"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/deepaksalve/cppcheck/checks"
	"github.com/deepaksalve/cppcheck/cruleslib/basic"
	"github.com/deepaksalve/cppcheck/cruleslib/options"
	"github.com/deepaksalve/cppcheck/cruleslib/stats"
	"github.com/deepaksalve/cppcheck/diag"
	"github.com/deepaksalve/cppcheck/symbols"
	"github.com/deepaksalve/cppcheck/token"
)

// RunResult is one tagged analysis pass: its ID appears in Run's summary
// line and gives the CLI a stable handle for logging, the way
// naivesystems-analyze tags a batch of checker invocations.
type RunResult struct {
	ID      uuid.UUID
	Results *diag.Set
}

// ResolveSources expands glob patterns (e.g. "src/**/*.cpp") against the
// filesystem, de-duplicating matches across overlapping patterns.
func ResolveSources(patterns []string) ([]string, error) {
	seen := map[string]struct{}{}
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("runner: bad glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	return files, nil
}

// Analyze runs every check against one file's token stream, returning the
// results it found. It never returns an error: a file this package can't
// usefully tokenize just yields an empty SpaceInfo forest and no findings,
// matching the original checker's treatment of unparsable input as
// "nothing to report" rather than a hard failure.
func Analyze(head *token.Token, settings options.Settings) []*diag.Result {
	db := symbols.Build(head)

	var results []*diag.Result
	results = append(results, checks.Constructors(db, settings)...)
	results = append(results, checks.PrivateFunctions(db, head, settings)...)
	results = append(results, checks.NoMemset(head)...)
	results = append(results, checks.OperatorEq(db, settings)...)
	results = append(results, checks.OperatorEqRetRefThis(db, settings)...)
	results = append(results, checks.OperatorEqToSelf(db, settings)...)
	results = append(results, checks.VirtualDestructor(head, settings)...)
	results = append(results, checks.ThisSubtraction(head, settings)...)
	results = append(results, checks.CheckConst(db, head, settings)...)
	return results
}

// Run analyzes every file patterns resolves to and returns one deduplicated
// set of results, tagged with a fresh run ID and logged with elapsed time
// and the number of lines analyzed, the way a batch run reports its own
// throughput.
func Run(patterns []string, charset string, settings options.Settings) (*RunResult, error) {
	started := time.Now()
	run := &RunResult{ID: uuid.New(), Results: diag.NewSet()}

	files, err := ResolveSources(patterns)
	if err != nil {
		return nil, err
	}

	for i, path := range files {
		src, err := token.ReadSource(path, charset)
		if err != nil {
			glog.Warningf("runner: skipping %s: %v", path, err)
			continue
		}

		head := token.Tokenize(src, int32(i))
		for _, r := range Analyze(head, settings) {
			r.Primary.File = path
			if r.Secondary != nil {
				r.Secondary.File = path
			}
			run.Results.Add(r)
		}
	}

	run.Results.Sort()

	var severities stats.SeverityCount
	for _, r := range run.Results.Results() {
		stats.Accumulate(&severities, r.Severity)
	}

	elapsed := time.Since(started)
	loc, locErr := stats.CountLines(files)
	if locErr != nil {
		loc = 0
	}
	basic.PrintfWithTimeStamp("run %s: checked %s (%d lines) in %s, found %d issues (%d error, %d warning, %d style)",
		run.ID, basic.GetPercentString(len(files), len(files)), loc, basic.FormatTimeDuration(elapsed),
		len(run.Results.Results()), severities.Error, severities.Warning, severities.Style)

	return run, nil
}
