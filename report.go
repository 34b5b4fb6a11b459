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
	"strings"
)

// Severity is the weight of a finding. Errors make an archive unusable,
// warnings flag deviations a printer will usually tolerate.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// A Finding is one reported issue produced by a single validation check.
// Findings are never mutated after creation.
type Finding struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", strings.ToUpper(string(f.Severity)), f.Message)
}

// A Report is the ordered sequence of findings of one validation run.
type Report struct {
	Archive  string    `json:"archive"`
	Findings []Finding `json:"findings"`
}

func (report *Report) addError(format string, a ...interface{}) {
	report.Findings = append(report.Findings, Finding{SeverityError, fmt.Sprintf(format, a...)})
}

func (report *Report) addWarning(format string, a ...interface{}) {
	report.Findings = append(report.Findings, Finding{SeverityWarning, fmt.Sprintf(format, a...)})
}

// Errors returns all error findings in report order.
func (report *Report) Errors() []Finding {
	return report.filter(SeverityError)
}

// Warnings returns all warning findings in report order.
func (report *Report) Warnings() []Finding {
	return report.filter(SeverityWarning)
}

func (report *Report) filter(severity Severity) []Finding {
	var findings []Finding
	for _, f := range report.Findings {
		if f.Severity == severity {
			findings = append(findings, f)
		}
	}
	return findings
}

// OK reports whether the run produced no error findings.
func (report *Report) OK() bool {
	return len(report.Errors()) == 0
}

// String renders the report as one line per finding, in check order.
func (report *Report) String() string {
	var lines []string
	for _, f := range report.Findings {
		lines = append(lines, f.String())
	}
	return strings.Join(lines, "\n")
}
