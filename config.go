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
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// A JobConfig is a parsed config.ini. The file is line based "key = value"
// text; some slicers wrap the keys in an INI section (e.g.
// [layerRenderParams]), plain key/value files land in the unnamed default
// section. Lookups search every section and match keys case insensitively.
type JobConfig struct {
	file *ini.File
}

// ParseJobConfig parses the contents of a config.ini.
func ParseJobConfig(b []byte) (*JobConfig, error) {
	file, err := ini.LoadSources(ini.LoadOptions{SkipUnrecognizableLines: true}, b)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse config")
	}
	return &JobConfig{file: file}, nil
}

// Lookup returns the value for a key, searching all sections.
func (config *JobConfig) Lookup(key string) (string, bool) {
	for _, section := range config.file.Sections() {
		for _, k := range section.Keys() {
			if strings.EqualFold(k.Name(), key) {
				return k.Value(), true
			}
		}
	}
	return "", false
}

// Int returns the value for a key parsed as an integer.
func (config *JobConfig) Int(key string) (int, error) {
	value, ok := config.Lookup(key)
	if !ok {
		return 0, errors.Errorf("key %s not found", key)
	}
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.Errorf("%s is not a valid integer: %q", key, value)
	}
	return i, nil
}

// A KeyValue is a single configuration setting.
type KeyValue struct {
	Key   string
	Value string
}

// All returns every setting in file order.
func (config *JobConfig) All() []KeyValue {
	var settings []KeyValue
	for _, section := range config.file.Sections() {
		for _, k := range section.Keys() {
			settings = append(settings, KeyValue{Key: k.Name(), Value: k.Value()})
		}
	}
	return settings
}
