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

// Package check contains assertion entry points which mark the current test
// failed but let it keep running. See the assert package for the fatal
// variants.
package check

import (
	"github.com/james00harper/shouldly"
	"github.com/james00harper/shouldly/comparison"
)

// That will compare `actual` using `compare(actual)`.
//
// If this results in a failure.Summary, it will be reported with
// shouldly.Report, and the test will be failed with t.Fail().
//
// Example: `check.That(t, 10, should.Equal(20))`
//
// Returns `true` iff `compare(actual)` returned no failure (i.e. nil).
func That[T any](t shouldly.TestingTB, actual T, compare comparison.Func[T], opts ...shouldly.Option) bool {
	if summary := shouldly.ApplyAllOptions(compare(actual), opts); summary != nil {
		t.Helper()
		shouldly.Report(t, "check.That", summary)
		t.Fail()
		return false
	}
	return true
}

// Loosely will compare `actual` using `compare.CastCompare(actual)`,
// allowing `actual` to have any type which converts losslessly to the
// comparison's type.
//
// If this results in a failure.Summary, it will be reported with
// shouldly.Report, and the test will be failed with t.Fail().
//
// Example: `check.Loosely(t, uint8(10), should.Equal(20))`
//
// Returns `true` iff `compare.CastCompare(actual)` returned no failure
// (i.e. nil).
func Loosely[T any](t shouldly.TestingTB, actual any, compare comparison.Func[T], opts ...shouldly.Option) bool {
	if summary := shouldly.ApplyAllOptions(compare.CastCompare(actual), opts); summary != nil {
		t.Helper()
		shouldly.Report(t, "check.Loosely", summary)
		t.Fail()
		return false
	}
	return true
}
