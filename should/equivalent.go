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

package should

import (
	"github.com/james00harper/shouldly/comparison"
	"github.com/james00harper/shouldly/equivalence"
	"github.com/james00harper/shouldly/failure"
)

// BeEquivalentTo checks that the actual value is structurally equivalent to
// `expected`: compatible runtime types, byte-exact strings, sequences
// matched as order-independent multisets, structs compared field by field.
//
// On failure, the Summary carries the path from the graph root to the first
// divergent value along with the two values found there:
//
//	should.BeEquivalentTo FAILED
//	  Because: values diverge at root [order].Items [[]line].Element [1] [line].SKU [string]
//	  Actual: "widget-2"
//	  Expected: "widget-3"
//
// Type reconciliation is permissive (see equivalence.Permissive): an array
// compares against a slice, and an unnamed struct against its named twin.
// Use BeStrictlyEquivalentTo to require identical runtime types.
//
// Cyclic graphs are not supported; see the equivalence package.
func BeEquivalentTo(expected any) comparison.Func[any] {
	return beEquivalent("should.BeEquivalentTo", equivalence.Comparer{}, expected)
}

// BeStrictlyEquivalentTo is BeEquivalentTo with strict type reconciliation:
// the runtime types of actual and expected must be identical at every node.
func BeStrictlyEquivalentTo(expected any) comparison.Func[any] {
	return beEquivalent("should.BeStrictlyEquivalentTo", equivalence.Comparer{Policy: equivalence.Strict}, expected)
}

func beEquivalent(cmpName string, comparer equivalence.Comparer, expected any) comparison.Func[any] {
	return func(actual any) *failure.Summary {
		report := comparer.Compare(actual, expected)
		if report == nil {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Because("values diverge at %s", report.Path).
			Actual(report.Actual).WarnIfLong().
			Expected(report.Expected).WarnIfLong().
			AddFindingf("Path", "%s", report.Path).
			Summary
	}
}
