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
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/unicode/norm"
)

// SplitLabels splits text into individual glyphs, in reading order.
// All white space is removed.  The text is brought into Unicode
// normalization form NFC first, and combining marks stay attached to the
// preceding base character.
func SplitLabels(text string) []string {
	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, norm.NFC.String(text))

	var labels []string
	var it norm.Iter
	it.InitString(norm.NFC, text)
	for !it.Done() {
		labels = append(labels, string(it.Next()))
	}
	return labels
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadLabels reads a label file and splits it using [SplitLabels].
// Files which are not valid UTF-8 are decoded as GB18030, which covers
// label lists saved with legacy Chinese encodings such as GBK.
func LoadLabels(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := decodeLabels(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return SplitLabels(text), nil
}

func decodeLabels(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := simplifiedchinese.GB18030.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding labels: %w", err)
	}
	return string(decoded), nil
}
