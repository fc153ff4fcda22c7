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
	"github.com/google/go-cmp/cmp"

	"github.com/james00harper/shouldly/comparison"
	"github.com/james00harper/shouldly/failure"
	"github.com/james00harper/shouldly/typed"
)

// Match returns a Comparison which checks if the actual value matches
// `expected` in the view of "github.com/google/go-cmp/cmp", and accepts
// additional cmp.Options for handling of different types/fields/filtering,
// proto Message semantics, etc.
//
// For convenience, `opts` implicitly includes the options registered with
// github.com/james00harper/shouldly/registry, which by default handle
// protobuf messages and compare functions by pointer.
//
// Unlike should.BeEquivalentTo, this is ordered: two sequences match only
// if their elements match position by position. It is recommended that you
// use should.Equal when comparing primitive types.
func Match[T any](expected T, opts ...cmp.Option) comparison.Func[T] {
	cmpName := "should.Match"

	return func(actual T) *failure.Summary {
		diff := typed.Diff(actual, expected, opts...)

		if diff == "" {
			return nil
		}

		return comparison.NewSummaryBuilder(cmpName, expected).
			Actual(actual).WarnIfLong().
			Expected(expected).WarnIfLong().
			AddCmpDiff(diff).
			Summary
	}
}
