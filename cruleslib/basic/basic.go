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

// Package basic holds small process-wide helpers shared by the CLI and the
// runner: timestamped logging and human-readable duration/percent
// formatting. It must not import any other cruleslib package.
package basic

import (
	"fmt"
	"time"

	"github.com/golang/glog"
)

// PrintfWithTimeStamp writes a timestamped line to stdout and mirrors it to
// glog at Info level, the way a long-running batch analysis reports its own
// progress independent of whatever -v level the user picked.
func PrintfWithTimeStamp(format string, arg ...any) {
	prefix := fmt.Sprintf("%v ", time.Now().Format("2006-01-02 15:04:05"))
	line := fmt.Sprintf(prefix+format, arg...)
	fmt.Println(line)
	glog.Info(line)
}

// GetPercentString renders v1/v2 as "NN%", used for "finished K/N files".
func GetPercentString(v1, v2 int) string {
	if v2 == 0 {
		return "0%"
	}
	percent := (v1 * 100) / v2
	return fmt.Sprintf("%d%%", percent)
}

// FormatTimeDuration renders a duration the way the runner reports elapsed
// analysis time: whole seconds, with a fractional-second suffix only when
// there's a sub-second remainder worth showing.
func FormatTimeDuration(d time.Duration) string {
	s := d / time.Second
	d -= s * time.Second
	ms := d / time.Millisecond
	if ms == 0 {
		return fmt.Sprintf("%ds", s)
	}
	return fmt.Sprintf("%d.%03ds", s, ms)
}
