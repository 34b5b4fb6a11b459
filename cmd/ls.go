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
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/slicetools/sl1scheck"
)

// Ls is the sl1scheck ls commandline subcommand
func Ls() *cobra.Command {
	return &cobra.Command{
		Use:   "ls <archive.sl1s>",
		Short: "List archive entries with their category and size",
		Args:  requireOneArchive,
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := sl1scheck.Open(args[0])
			if err != nil {
				return err
			}
			defer archive.Close()

			classifier, err := sl1scheck.NewClassifier(sl1scheck.DefaultProfile())
			if err != nil {
				return err
			}

			for _, name := range archive.Names() {
				size, err := archive.Size(name)
				if err != nil {
					return err
				}
				entry := classifier.Classify(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-13s %10s  %s\n",
					entry.Kind, humanize.Bytes(uint64(size)), name)
			}
			return nil
		},
	}
}

// Config is the sl1scheck config commandline subcommand
func Config() *cobra.Command {
	return &cobra.Command{
		Use:   "config <archive.sl1s>",
		Short: "Print the parsed job configuration of an archive",
		Args:  requireOneArchive,
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := sl1scheck.Open(args[0])
			if err != nil {
				return err
			}
			defer archive.Close()

			config, err := jobConfig(archive)
			if err != nil {
				return err
			}

			for _, setting := range config.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", setting.Key, setting.Value)
			}
			return nil
		},
	}
}

func jobConfig(archive *sl1scheck.Archive) (*sl1scheck.JobConfig, error) {
	profile := sl1scheck.DefaultProfile()
	classifier, err := sl1scheck.NewClassifier(profile)
	if err != nil {
		return nil, err
	}

	for _, name := range archive.Names() {
		if classifier.Classify(name).Kind != sl1scheck.KindConfig {
			continue
		}
		b, err := archive.ReadFile(name)
		if err != nil {
			return nil, err
		}
		return sl1scheck.ParseJobConfig(b)
	}
	return nil, errors.Errorf("no %s found in archive", profile.ConfigFile)
}
