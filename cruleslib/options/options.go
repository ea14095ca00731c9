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

// Package options is the run's config surface: a Settings struct loaded
// from a YAML file, with the same field names and defaults the checks
// package reads via every _settings-> access in the original checker.
package options

import (
	"os"

	"github.com/golang/glog"
	"gopkg.in/yaml.v2"
)

// Settings gates which checks run and how strict they are.
type Settings struct {
	// CheckCodingStyle enables every style-severity check: constructors,
	// privateFunctions, operatorEq, operatorEqRetRefThis, operatorEqToSelf,
	// thisSubtraction, checkConst.
	CheckCodingStyle bool `yaml:"check_coding_style"`

	// Inconclusive enables virtualDestructor, whose single-translation-unit
	// view of base classes can both miss real bugs and flag non-bugs.
	Inconclusive bool `yaml:"inconclusive"`

	// Ifcfg, when true, suppresses checkConst: a codebase riddled with
	// #ifdef configuration variance makes "could be const" unreliable.
	Ifcfg bool `yaml:"ifcfg"`

	// Language selects the message.Printer locale used to render results.
	Language string `yaml:"language"`
}

// Default matches cppcheck's own default Settings construction: coding
// style checks on, inconclusive checks off, ifcfg off, English messages.
func Default() Settings {
	return Settings{
		CheckCodingStyle: true,
		Inconclusive:     false,
		Ifcfg:            false,
		Language:         "en",
	}
}

// Load reads Settings from a YAML file, falling back to Default for any
// field the file doesn't set by starting from Default and unmarshaling
// over it.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		glog.Warningf("options: could not read %s, using defaults: %v", path, err)
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, err
	}
	return s, nil
}
