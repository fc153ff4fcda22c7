// Copyright 2025 The Shouldly Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package comparison

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/james00harper/shouldly/failure"
)

// SummaryBuilder is a fluent builder for failure.Summary values.
//
// All methods return the builder to allow chaining; the accumulated Summary
// is read from the Summary field at the end of the chain.
type SummaryBuilder struct {
	Summary *failure.Summary
}

// NewSummaryBuilder returns a SummaryBuilder for a comparison with the given
// name.
//
// Any typeArgs provided have their types (not their values) rendered into the
// Summary's Comparison.TypeArguments. This is how e.g. should.Equal[int]
// identifies itself in output.
func NewSummaryBuilder(cmpName string, typeArgs ...any) *SummaryBuilder {
	var rendered []string
	if len(typeArgs) > 0 {
		rendered = make([]string, len(typeArgs))
		for i, arg := range typeArgs {
			if typ := reflect.TypeOf(arg); typ != nil {
				rendered[i] = typ.String()
			} else {
				rendered[i] = "any"
			}
		}
	}
	return &SummaryBuilder{&failure.Summary{
		Comparison: &failure.Comparison{
			Name:          cmpName,
			TypeArguments: rendered,
		},
	}}
}

func (fb *SummaryBuilder) fixNilFailure() {
	if fb.Summary == nil {
		fb.Summary = &failure.Summary{}
	}
}

// Because adds a "Because" finding with a single formatted line.
//
// This should read as a terse explanation of why the comparison failed.
func (fb *SummaryBuilder) Because(format string, args ...any) *SummaryBuilder {
	return fb.AddFindingf("Because", format, args...)
}

// Actual adds an "Actual" finding rendering the given value.
func (fb *SummaryBuilder) Actual(value any) *SummaryBuilder {
	return fb.addValueFinding("Actual", value)
}

// Expected adds an "Expected" finding rendering the given value.
func (fb *SummaryBuilder) Expected(value any) *SummaryBuilder {
	return fb.addValueFinding("Expected", value)
}

// AddFindingf adds a finding with a formatted value.
//
// The formatted text is split into lines.
func (fb *SummaryBuilder) AddFindingf(name, format string, args ...any) *SummaryBuilder {
	fb.fixNilFailure()
	fb.Summary.Findings = append(fb.Summary.Findings, &failure.Finding{
		Name:  name,
		Value: strings.Split(fmt.Sprintf(format, args...), "\n"),
	})
	return fb
}

// WarnIfLong marks the most recently added finding with failure.LevelWarn if
// its value is long (multiple lines, or more than 30 characters on one line).
//
// Warn-level findings are only rendered in verbose mode.
func (fb *SummaryBuilder) WarnIfLong() *SummaryBuilder {
	fb.fixNilFailure()
	if len(fb.Summary.Findings) == 0 {
		return fb
	}
	finding := fb.Summary.Findings[len(fb.Summary.Findings)-1]
	if len(finding.Value) > 1 || (len(finding.Value) == 1 && len(finding.Value[0]) > 30) {
		finding.Level = failure.LevelWarn
	}
	return fb
}

func (fb *SummaryBuilder) addValueFinding(name string, value any) *SummaryBuilder {
	fb.fixNilFailure()
	fb.Summary.Findings = append(fb.Summary.Findings, &failure.Finding{
		Name:  name,
		Value: strings.Split(renderValue(value), "\n"),
	})
	return fb
}

// renderValue renders an arbitrary value for a finding. Strings are quoted
// so that whitespace and case differences are visible.
func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
