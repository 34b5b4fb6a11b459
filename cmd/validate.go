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

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/slicetools/sl1scheck"
)

// Validate is the sl1scheck validate commandline subcommand
func Validate() *cobra.Command {
	var noFail bool
	var jsonOutput bool
	var noColor bool
	var profilePath string
	var extension string
	var digits int

	validateCommand := &cobra.Command{
		Use:          "validate <archive.sl1s>",
		Short:        "Validate the structure of an SL1S archive",
		Args:         requireOneArchive,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			archivePath := args[0]

			profile, err := buildProfile(profilePath, extension, digits)
			if err != nil {
				return err
			}
			validator, err := sl1scheck.NewValidator(profile)
			if err != nil {
				return err
			}

			if !hasArchiveExtension(archivePath) {
				fmt.Fprintf(cmd.ErrOrStderr(), "notice: %s does not have an .sl1s extension\n", archivePath)
			}

			report, err := validator.Validate(archivePath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				setupColor(noColor)
				printReport(out, report)
			}

			if !report.OK() && !noFail {
				return fmt.Errorf("validation failed with %d error(s)", len(report.Errors()))
			}
			return nil
		},
	}
	validateCommand.Flags().BoolVar(&noFail, "no-fail", false, "return exit code 0 even if the report contains errors")
	validateCommand.Flags().BoolVar(&jsonOutput, "json", false, "print the report as JSON")
	validateCommand.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	validateCommand.Flags().StringVar(&profilePath, "profile", "", "YAML file with validation rules, merged over the defaults")
	validateCommand.Flags().StringVar(&extension, "extension", "", "layer image extension, e.g. .png")
	validateCommand.Flags().IntVar(&digits, "digits", 0, "width of the layer image sequence number")
	return validateCommand
}

func buildProfile(profilePath, extension string, digits int) (sl1scheck.Profile, error) {
	profile := sl1scheck.DefaultProfile()
	if profilePath != "" {
		var err error
		profile, err = sl1scheck.LoadProfile(afero.NewOsFs(), profilePath)
		if err != nil {
			return profile, err
		}
	}
	if extension != "" {
		if !strings.HasPrefix(extension, ".") {
			extension = "." + extension
		}
		profile.ImageExtensions = []string{extension}
	}
	if digits > 0 {
		profile.SequenceDigits = digits
	}
	return profile, nil
}

func hasArchiveExtension(archivePath string) bool {
	lower := strings.ToLower(archivePath)
	return strings.HasSuffix(lower, ".sl1s") || strings.HasSuffix(lower, ".sl1")
}

func setupColor(noColor bool) {
	if noColor || (!isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())) {
		color.NoColor = true
	}
}

func printReport(w io.Writer, report *sl1scheck.Report) {
	if len(report.Findings) == 0 {
		fmt.Fprintf(w, "%s is valid and meets all criteria\n", report.Archive)
		return
	}

	for _, finding := range report.Findings {
		label := strings.ToUpper(string(finding.Severity))
		switch finding.Severity {
		case sl1scheck.SeverityError:
			label = color.RedString(label)
		case sl1scheck.SeverityWarning:
			label = color.YellowString(label)
		}
		fmt.Fprintf(w, "%s: %s\n", label, finding.Message)
	}

	if report.OK() {
		fmt.Fprintf(w, "validation passed with %d warning(s)\n", len(report.Warnings()))
	} else {
		fmt.Fprintf(w, "validation failed with %d error(s), %d warning(s)\n",
			len(report.Errors()), len(report.Warnings()))
	}
}

func requireOneArchive(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("requires exactly one archive")
	}
	for _, arg := range args {
		if _, err := os.Stat(arg); os.IsNotExist(err) {
			return errors.Wrap(os.ErrNotExist, arg)
		}
	}
	return nil
}
