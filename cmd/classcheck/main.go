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

// Command classcheck runs the class-oriented checks against one or more
// glob patterns of C/C++ source.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/deepaksalve/cppcheck/cruleslib/options"
	"github.com/deepaksalve/cppcheck/cruleslib/runner"
	"github.com/deepaksalve/cppcheck/diag"
)

func main() {
	settingsPath := flag.String("settings", "", "path to a YAML settings file (defaults used if empty)")
	charset := flag.String("charset", "", "source charset, e.g. \"windows-1252\" (defaults to UTF-8)")
	lang := flag.String("language", "en", "message language: en or zh")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: classcheck [flags] <glob> [<glob> ...]")
		os.Exit(2)
	}

	settings := options.Default()
	if *settingsPath != "" {
		loaded, err := options.Load(*settingsPath)
		if err != nil {
			glog.Warningf("main: using defaults, could not load %s: %v", *settingsPath, err)
		} else {
			settings = loaded
		}
	}
	if *lang != "" {
		settings.Language = *lang
	}

	run, err := runner.Run(flag.Args(), *charset, settings)
	if err != nil {
		glog.Errorf("main: analysis failed: %v", err)
		os.Exit(1)
	}

	printer := diag.Printer(settings.Language)
	for _, r := range run.Results.Results() {
		fmt.Println(diag.Render(r, printer))
	}

	glog.V(1).Infof("run %s: %d results", run.ID, len(run.Results.Results()))
}
