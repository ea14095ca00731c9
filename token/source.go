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

package token

import (
	"bytes"
	"io"
	"os"

	"github.com/golang/glog"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ReadSource reads a translation unit off disk and converts it to UTF-8
// from the given charset (an empty charset is treated as already UTF-8).
// Detection of the charset itself is the preprocessor's job; this helper
// only performs the conversion, the same division of labor as
// rulesets.convertCharset in the wider analyzer this core was lifted out of.
func ReadSource(path, charset string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if charset == "" || charset == "utf-8" || charset == "UTF-8" {
		return string(raw), nil
	}
	enc, err := ianaindex.MIME.Encoding(charset)
	if err != nil || enc == nil {
		glog.Warningf("unknown charset %q for %s, treating as UTF-8", charset, path)
		return string(raw), nil
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// ReadSourceReader is ReadSource for an already-open reader, for source
// held in memory rather than on disk. Unlike ReadSource it logs nothing
// when the charset is unknown.
func ReadSourceReader(r io.Reader, charset string) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	if charset == "" || charset == "utf-8" || charset == "UTF-8" {
		return buf.String(), nil
	}
	enc, err := ianaindex.MIME.Encoding(charset)
	if err != nil || enc == nil {
		return buf.String(), nil
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), buf.Bytes())
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
