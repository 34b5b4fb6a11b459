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

package sl1scheck

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Kind is the category of an archive entry. Every validation check consumes
// the same classification, so an entry is never counted twice.
type Kind int

const (
	// KindUnknown is an entry that matches no recognized category.
	KindUnknown Kind = iota
	// KindDirectory is an explicit directory entry.
	KindDirectory
	// KindConfig is the job configuration file (config.ini).
	KindConfig
	// KindSlicerConfig is the slicer configuration file (prusaslicer.ini).
	KindSlicerConfig
	// KindImage is a per layer slice image at the top level.
	KindImage
	// KindThumbnail is any entry below a thumbnail or preview directory.
	KindThumbnail
	// KindMetadata is an additional known metadata file.
	KindMetadata
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindConfig:
		return "config"
	case KindSlicerConfig:
		return "slicer config"
	case KindImage:
		return "layer image"
	case KindThumbnail:
		return "thumbnail"
	case KindMetadata:
		return "metadata"
	}
	return "unknown"
}

// An Entry is a classified archive entry. For layer images Base holds the
// filename prefix before the sequence number and Index the parsed layer
// index; Index is -1 if the filename does not follow the naming convention.
type Entry struct {
	Name  string
	Kind  Kind
	Base  string
	Index int
}

// A Classifier assigns a Kind to entry names according to a Profile.
type Classifier struct {
	profile Profile
	image   *regexp.Regexp
}

// NewClassifier creates a Classifier for the given profile.
func NewClassifier(profile Profile) (*Classifier, error) {
	var exts []string
	for _, ext := range profile.ImageExtensions {
		exts = append(exts, regexp.QuoteMeta(strings.TrimPrefix(ext, ".")))
	}
	pattern := fmt.Sprintf(`^(.+?)(\d{%d})\.(?i:%s)$`, profile.SequenceDigits, strings.Join(exts, "|"))
	image, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Classifier{profile: profile, image: image}, nil
}

// Classify assigns a category to a single entry name.
func (c *Classifier) Classify(name string) Entry {
	entry := Entry{Name: name, Kind: KindUnknown, Index: -1}

	switch {
	case strings.HasSuffix(name, "/"):
		entry.Kind = KindDirectory
	case c.InThumbnailDir(name):
		entry.Kind = KindThumbnail
	case path.Base(name) == c.profile.ConfigFile:
		entry.Kind = KindConfig
	case path.Base(name) == c.profile.SlicerConfigFile:
		entry.Kind = KindSlicerConfig
	case !strings.Contains(name, "/") && c.IsImageName(name):
		entry.Kind = KindImage
		if m := c.image.FindStringSubmatch(name); m != nil {
			entry.Base = m[1]
			index, err := strconv.Atoi(m[2])
			if err == nil {
				entry.Index = index
			}
		}
	case !strings.Contains(name, "/") && c.isMetadata(name):
		entry.Kind = KindMetadata
	}

	return entry
}

// IsImageName reports whether a name carries one of the configured image
// extensions, regardless of its sequence number.
func (c *Classifier) IsImageName(name string) bool {
	for _, ext := range c.profile.ImageExtensions {
		if strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// InThumbnailDir reports whether an entry lies below one of the configured
// thumbnail directories.
func (c *Classifier) InThumbnailDir(name string) bool {
	for _, dir := range c.profile.ThumbnailDirs {
		if strings.HasPrefix(name, dir+"/") {
			return true
		}
	}
	return false
}

func (c *Classifier) isMetadata(name string) bool {
	for _, glob := range c.profile.MetadataGlobs {
		if ok, err := doublestar.Match(glob, name); err == nil && ok {
			return true
		}
	}
	return false
}
