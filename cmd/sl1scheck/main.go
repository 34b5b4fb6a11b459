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

// Package main implements the sl1scheck command line tool with
// various subcommands to inspect and validate SL1S archives.
//     validate  Validate the structure of an SL1S archive
//     ls        List archive entries with their category and size
//     config    Print the parsed job configuration of an archive
//
// Usage
//
// Validate an archive
//     sl1scheck validate my_print.sl1s
// Validate without failing the exit code on errors
//     sl1scheck validate --no-fail my_print.sl1s
// Validate with custom rules
//     sl1scheck validate --profile rules.yml my_print.sl1s
// List entries
//     sl1scheck ls my_print.sl1s
// Show the job configuration
//     sl1scheck config my_print.sl1s
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slicetools/sl1scheck/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sl1scheck",
		Short: "Inspect and validate SL1S archives",
	}
	rootCmd.AddCommand(cmd.Validate(), cmd.Ls(), cmd.Config())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
