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

package diag

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var languageMap = map[string]language.Tag{"en": language.English, "zh": language.Chinese}

// Printer returns a message.Printer for a --language flag value, falling
// back to English for an unrecognized tag.
func Printer(lang string) *message.Printer {
	tag, ok := languageMap[lang]
	if !ok {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// Render formats r through p, prefixing the severity and id the way
// cppcheck's text output does: "[style][noConstructor] <file>:<line>: <message>".
func Render(r *Result, p *message.Printer) string {
	return p.Sprintf("[%s][%s] %s:%d: %s", r.Severity, r.ID, r.Primary.File, r.Primary.Line, r.Message)
}
