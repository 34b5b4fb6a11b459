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
	"github.com/imdario/mergo"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// A Profile configures the validation rules: which files must be present,
// how layer images are named and which entries are recognized metadata.
// The zero value is not usable, start from DefaultProfile.
type Profile struct {
	ConfigFile       string   `yaml:"configFile"`
	SlicerConfigFile string   `yaml:"slicerConfigFile"`
	RequiredFiles    []string `yaml:"requiredFiles"`
	ImageExtensions  []string `yaml:"imageExtensions"`
	SequenceDigits   int      `yaml:"sequenceDigits"`
	ThumbnailDirs    []string `yaml:"thumbnailDirs"`
	MetadataGlobs    []string `yaml:"metadataGlobs"`
	CountKey         string   `yaml:"countKey"`
	JobDirKey        string   `yaml:"jobDirKey"`
}

// DefaultProfile returns the validation rules for standard SL1S archives as
// produced by PrusaSlicer.
func DefaultProfile() Profile {
	return Profile{
		ConfigFile:       "config.ini",
		SlicerConfigFile: "prusaslicer.ini",
		RequiredFiles:    []string{"config.ini", "prusaslicer.ini"},
		ImageExtensions:  []string{".png", ".jpg", ".jpeg"},
		SequenceDigits:   5,
		ThumbnailDirs:    []string{"thumbnail", "preview"},
		MetadataGlobs:    []string{"*.ini", "*.json"},
		CountKey:         "numFast",
		JobDirKey:        "jobDir",
	}
}

// LoadProfile reads a YAML profile and merges it over the defaults, so a
// profile file only needs to state the rules it changes.
func LoadProfile(fs afero.Fs, path string) (Profile, error) {
	profile := Profile{}

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return profile, errors.Wrap(err, "could not read profile")
	}
	if err := yaml.Unmarshal(b, &profile); err != nil {
		return profile, errors.Wrap(err, "could not parse profile")
	}

	if err := mergo.Merge(&profile, DefaultProfile()); err != nil {
		return profile, err
	}
	return profile, nil
}
