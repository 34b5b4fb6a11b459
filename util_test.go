/*
 * Copyright (c) 2020 Siemens AG
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy of
 * this software and associated documentation files (the "Software"), to deal in
 * the Software without restriction, including without limitation the rights to
 * use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
 * the Software, and to permit persons to whom the Software is furnished to do so,
 * subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
 * FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
 * COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
 * IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
 * CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 *
 * Author(s): Jonas Plum
 */

package sl1scheck

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/spf13/afero"
)

type zipEntry struct {
	name string
	data string
}

const testConfig = `action = print
jobDir = tower
expTime = 2.5
expTimeFirst = 25
numFast = 3
numSlow = 0
printTime = 1234
`

// validEntries returns the contents of a well formed SL1S archive with three
// layer images.
func validEntries() []zipEntry {
	return []zipEntry{
		{"config.ini", testConfig},
		{"prusaslicer.ini", "printer_model = SL1S\n"},
		{"tower00000.png", "fake image data"},
		{"tower00001.png", "fake image data"},
		{"tower00002.png", "fake image data"},
		{"thumbnail/thumbnail400x400.png", "fake thumbnail"},
	}
}

// writeArchive creates a ZIP archive with the given entries on the
// filesystem. Entry order is preserved.
func writeArchive(t *testing.T, fs afero.Fs, path string, entries []zipEntry) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	for _, entry := range entries {
		f, err := w.Create(entry.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(entry.data)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if err := afero.WriteFile(fs, path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

// withoutEntry returns entries with one name removed.
func withoutEntry(entries []zipEntry, name string) []zipEntry {
	var out []zipEntry
	for _, entry := range entries {
		if entry.name != name {
			out = append(out, entry)
		}
	}
	return out
}

// layerEntries returns n sequentially numbered layer images.
func layerEntries(base string, n int) []zipEntry {
	var out []zipEntry
	for i := 0; i < n; i++ {
		out = append(out, zipEntry{fmt.Sprintf("%s%05d.png", base, i), "fake image data"})
	}
	return out
}
