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
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// A Validator runs the structural checks of a Profile against SL1S archives.
// It is stateless, a single Validator is safe for concurrent use on
// different archives.
type Validator struct {
	profile    Profile
	classifier *Classifier
}

// NewValidator creates a Validator for the given profile.
func NewValidator(profile Profile) (*Validator, error) {
	classifier, err := NewClassifier(profile)
	if err != nil {
		return nil, err
	}
	return &Validator{profile: profile, classifier: classifier}, nil
}

// Validate opens an archive from the operating system filesystem and
// validates it. Open failures are returned as errors, every structural
// problem becomes a finding in the report.
func (v *Validator) Validate(archivePath string) (*Report, error) {
	return v.ValidateFs(afero.NewOsFs(), archivePath)
}

// ValidateFs opens an archive from the given filesystem and validates it.
func (v *Validator) ValidateFs(fs afero.Fs, archivePath string) (*Report, error) {
	archive, err := OpenFs(fs, archivePath)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	return v.ValidateArchive(archive), nil
}

// ValidateArchive runs all checks against an open archive. Checks append
// findings instead of aborting, so the report is complete in one pass.
func (v *Validator) ValidateArchive(archive *Archive) *Report {
	report := &Report{Archive: archive.Path(), Findings: []Finding{}}

	var entries []Entry
	for _, name := range archive.Names() {
		entries = append(entries, v.classifier.Classify(name))
	}

	v.checkStructure(entries, report)
	v.checkRequiredFiles(entries, report)

	config := v.parseConfig(archive, entries, report)

	var images []Entry
	for _, entry := range entries {
		if entry.Kind == KindImage {
			images = append(images, entry)
		}
	}

	v.checkImages(images, report)
	v.checkConfigConsistency(config, images, report)
	v.checkThumbnails(entries, report)
	v.checkStray(entries, report)

	return report
}

// checkStructure flags empty archives and entries nested in subfolders.
// Thumbnail and preview folders are standard and not reported.
func (v *Validator) checkStructure(entries []Entry, report *Report) {
	if len(entries) == 0 {
		report.addError("archive contains no entries")
		return
	}

	folders := map[string]bool{}
	for _, entry := range entries {
		i := strings.Index(entry.Name, "/")
		if i < 0 {
			continue
		}
		folder := entry.Name[:i]
		if !v.classifier.InThumbnailDir(folder + "/") {
			folders[folder] = true
		}
	}

	var names []string
	for folder := range folders {
		names = append(names, folder)
	}
	sort.Strings(names)
	for _, folder := range names {
		report.addWarning("entries are contained in subfolder '%s', this may cause issues with some printers", folder)
	}
}

// checkRequiredFiles verifies that every required file is present, either at
// the top level or inside a job subfolder. Thumbnail folders do not count.
func (v *Validator) checkRequiredFiles(entries []Entry, report *Report) {
	for _, required := range v.profile.RequiredFiles {
		found := false
		for _, entry := range entries {
			if entry.Kind == KindDirectory || entry.Kind == KindThumbnail {
				continue
			}
			if path.Base(entry.Name) == required {
				found = true
				break
			}
		}
		if !found {
			report.addError("required file missing: %s", required)
		}
	}
}

// parseConfig reads the first job configuration in the archive. A missing or
// unparsable config is reported and nil is returned, the remaining checks
// then skip config consistency.
func (v *Validator) parseConfig(archive *Archive, entries []Entry, report *Report) *JobConfig {
	for _, entry := range entries {
		if entry.Kind != KindConfig {
			continue
		}
		b, err := archive.ReadFile(entry.Name)
		if err != nil {
			report.addError("could not read %s: %s", entry.Name, err)
			return nil
		}
		config, err := ParseJobConfig(b)
		if err != nil {
			report.addError("could not parse %s: %s", entry.Name, err)
			return nil
		}
		return config
	}
	return nil
}

// checkImages verifies the naming convention, base name consistency and the
// numbering sequence of the layer images.
func (v *Validator) checkImages(images []Entry, report *Report) {
	if len(images) == 0 {
		report.addWarning("no layer images found in archive")
		return
	}

	convention := "name" + strings.Repeat("#", v.profile.SequenceDigits) + v.profile.ImageExtensions[0]

	bases := map[string]bool{}
	var numbers []int
	for _, image := range images {
		if image.Index < 0 {
			report.addError("layer image does not match the naming convention (%s): %s", convention, image.Name)
			continue
		}
		bases[image.Base] = true
		numbers = append(numbers, image.Index)
	}

	if len(bases) > 1 {
		var names []string
		for base := range bases {
			names = append(names, base)
		}
		sort.Strings(names)
		report.addError("multiple layer image base names found: %s, all layer images should share one base name", strings.Join(names, ", "))
	}

	if len(numbers) == 0 {
		return
	}
	sort.Ints(numbers)

	present := map[int]bool{}
	for _, n := range numbers {
		present[n] = true
	}
	var missing []string
	for n := numbers[0]; n <= numbers[len(numbers)-1]; n++ {
		if !present[n] {
			missing = append(missing, formatIndex(n, v.profile.SequenceDigits))
		}
	}
	if len(missing) > 0 {
		report.addError("missing layer image numbers: %s", strings.Join(missing, ", "))
	}

	if numbers[0] != 0 {
		report.addWarning("layer image numbering does not start at %s (starts at %s)",
			formatIndex(0, v.profile.SequenceDigits), formatIndex(numbers[0], v.profile.SequenceDigits))
	}
}

// checkConfigConsistency compares the declared layer count and job name in
// config.ini against the layer images actually present.
func (v *Validator) checkConfigConsistency(config *JobConfig, images []Entry, report *Report) {
	if config == nil {
		return
	}

	if jobDir, ok := config.Lookup(v.profile.JobDirKey); ok && len(images) > 0 && images[0].Index >= 0 {
		imageBase := strings.TrimRight(images[0].Base, "_-")
		configBase := strings.TrimRight(jobDir, "_-")
		if imageBase != configBase {
			report.addError("layer image base name '%s' does not match %s '%s' in %s",
				imageBase, v.profile.JobDirKey, configBase, v.profile.ConfigFile)
		}
	}

	if _, ok := config.Lookup(v.profile.CountKey); !ok {
		return
	}
	declared, err := config.Int(v.profile.CountKey)
	if err != nil {
		report.addError("%s in %s is not a valid integer", v.profile.CountKey, v.profile.ConfigFile)
		return
	}

	if declared != len(images) {
		report.addError("%s in %s declares %d layer images, archive contains %d",
			v.profile.CountKey, v.profile.ConfigFile, declared, len(images))
		return
	}

	// only meaningful if the counts match, otherwise the count mismatch
	// above already covers the deviation
	last := -1
	for _, image := range images {
		if image.Index > last {
			last = image.Index
		}
	}
	if last >= 0 && last != declared-1 {
		report.addError("last layer image number (%d) does not match %s-1 (%d)", last, v.profile.CountKey, declared-1)
	}
}

// checkThumbnails flags thumbnail entries with unexpected extensions. These
// never fail validation, printers ignore the thumbnail folder contents.
func (v *Validator) checkThumbnails(entries []Entry, report *Report) {
	for _, entry := range entries {
		if entry.Kind != KindThumbnail || strings.HasSuffix(entry.Name, "/") {
			continue
		}
		if !v.classifier.IsImageName(entry.Name) {
			report.addWarning("thumbnail entry has an unexpected extension: %s", entry.Name)
		}
	}
}

// checkStray flags top level entries that match no recognized category.
func (v *Validator) checkStray(entries []Entry, report *Report) {
	for _, entry := range entries {
		if entry.Kind == KindUnknown && !strings.Contains(entry.Name, "/") {
			report.addWarning("unexpected entry: %s", entry.Name)
		}
	}
}

func formatIndex(n, digits int) string {
	return fmt.Sprintf("%0*d", digits, n)
}
