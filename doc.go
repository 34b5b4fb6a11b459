// Copyright (c) 2020 Siemens AG
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//
// Author(s): Jonas Plum

// Package sl1scheck validates the internal structure of SL1S archives,
// the ZIP based container format used by resin 3D printers to bundle
// per layer slice images and slicer configuration.
//
// The SL1S format
//
// An SL1S archive implements the following conventions:
//     - The archive is a ZIP container holding all files at the top level.
//     - config.ini contains the print job parameters as line based "key = value"
//       text, including the declared layer count (numFast) and the job name
//       (jobDir).
//     - prusaslicer.ini contains the full slicer configuration.
//     - Every layer is a slice image whose filename encodes its layer order
//       via a fixed width, zero padded numeric suffix, e.g. tower_00007.png.
//     - A thumbnail/ (or preview/) subdirectory may hold preview images;
//       these are not layers and are excluded from layer accounting.
//
// Structure
//
// An example archive:
//     tower.sl1s
//     ├── config.ini
//     ├── prusaslicer.ini
//     ├── tower_00000.png
//     ├── tower_00001.png
//     ├── ...
//     └── thumbnail
//         └── thumbnail400x400.png
//
// Validation never mutates the archive. Structural problems are collected as
// findings (errors and warnings) so a single run reports every issue at once;
// only a missing or unreadable archive aborts validation.
package sl1scheck
