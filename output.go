// seehuhn.de/go/penstroke - stroke documents from pen-plotter G-code
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package penstroke

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// WriteJSON writes the document to w as JSON.  If indent is set, nested
// values are indented by two spaces.  Non-ASCII labels are written
// verbatim, not escaped.
func (d Document) WriteJSON(w io.Writer, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(d)
}

// WriteFile writes the document as JSON to the named file.  If the file
// name ends in ".gz", the output is gzip-compressed.
func WriteFile(path string, doc *Document, indent bool) (err error) {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return doc.WriteJSON(fd, indent)
	}

	zw := gzip.NewWriter(fd)
	if err := doc.WriteJSON(zw, indent); err != nil {
		return err
	}
	return zw.Close()
}

// ReadFile reads a document written by [WriteFile].
func ReadFile(path string) (doc *Document, err error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	var r io.Reader = fd
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(fd)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}

	doc = &Document{}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, err
	}
	return doc, nil
}
