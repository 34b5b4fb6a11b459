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
	"io"
	"io/ioutil"
	"os"

	"github.com/klauspost/compress/flate"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var ErrArchiveNotExists = errors.New("archive does not exist")
var ErrEntryNotExists = errors.New("entry does not exist")

// The Archive is a read only view over an SL1S ZIP container. It exposes the
// ordered entry list and per entry sizes and contents, but never writes to
// the underlying file.
type Archive struct {
	path   string
	file   afero.File
	reader *zip.Reader
}

// Open opens an SL1S archive from the operating system filesystem.
func Open(path string) (*Archive, error) {
	return OpenFs(afero.NewOsFs(), path)
}

// OpenFs opens an SL1S archive from the given filesystem.
func OpenFs(fs afero.Fs, path string) (*Archive, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrArchiveNotExists, path)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, errors.Wrap(ErrArchiveNotExists, path)
	}

	file, err := fs.Open(path)
	if err != nil {
		return nil, err
	}

	reader, err := zip.NewReader(file, info.Size())
	if err != nil {
		file.Close() // nolint:errcheck
		return nil, errors.Wrap(err, "not a valid ZIP container")
	}
	reader.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})

	return &Archive{path: path, file: file, reader: reader}, nil
}

// Path returns the path the archive was opened from.
func (archive *Archive) Path() string {
	return archive.path
}

// Names returns all entry names in the order they are stored in the archive.
// Directory entries are included with their trailing slash.
func (archive *Archive) Names() []string {
	var names []string
	for _, f := range archive.reader.File {
		names = append(names, f.Name)
	}
	return names
}

// Size returns the uncompressed size of an entry.
func (archive *Archive) Size(name string) (int64, error) {
	for _, f := range archive.reader.File {
		if f.Name == name {
			return int64(f.UncompressedSize64), nil
		}
	}
	return 0, errors.Wrap(ErrEntryNotExists, name)
}

// ReadFile returns the contents of a single entry.
func (archive *Archive) ReadFile(name string) ([]byte, error) {
	for _, f := range archive.reader.File {
		if f.Name != name {
			continue
		}
		r, err := f.Open()
		if err != nil {
			return nil, errors.Wrap(err, name)
		}
		defer r.Close()
		return ioutil.ReadAll(r)
	}
	return nil, errors.Wrap(ErrEntryNotExists, name)
}

// Close releases the underlying file.
func (archive *Archive) Close() error {
	return archive.file.Close()
}
