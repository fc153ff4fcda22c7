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
	"reflect"

	"github.com/james00harper/shouldly/comparison"
	"github.com/james00harper/shouldly/failure"
)

func lengthOf(cmpName string, actual any) (int, *failure.Summary) {
	if actual == nil {
		// Untyped nil has length 0 for our purposes (e.g. a nil error slice).
		return 0, nil
	}
	val := reflect.ValueOf(actual)
	switch val.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return val.Len(), nil
	}
	return 0, comparison.NewSummaryBuilder(cmpName).
		Because("`%T` does not have a length", actual).
		Summary
}

// HaveLength checks that the actual value (a string, slice, array, map or
// channel) has the given length.
func HaveLength(target int) comparison.Func[any] {
	const cmpName = "should.HaveLength"

	return func(actual any) *failure.Summary {
		length, summary := lengthOf(cmpName, actual)
		if summary != nil {
			return summary
		}
		if length == target {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Actual(length).
			Expected(target).
			Summary
	}
}

// BeEmpty implements comparison.Func[any] and checks that the actual value
// (a string, slice, array, map or channel) has length 0.
func BeEmpty(actual any) *failure.Summary {
	const cmpName = "should.BeEmpty"

	length, summary := lengthOf(cmpName, actual)
	if summary != nil {
		return summary
	}
	if length == 0 {
		return nil
	}
	return comparison.NewSummaryBuilder(cmpName).
		Actual(actual).WarnIfLong().
		AddFindingf("Length", "%d", length).
		Summary
}
