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
	"math"
	"reflect"

	"github.com/james00harper/shouldly/comparison"
	"github.com/james00harper/shouldly/failure"
)

func checkIsNaN[T comparable](cmpName string, expected T) comparison.Func[T] {
	val := reflect.ValueOf(expected)
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(val.Float()) {
			return func(t T) *failure.Summary {
				return comparison.NewSummaryBuilder(cmpName, expected).
					Because("Cannot compare to float(NaN), use should.BeNaN instead.").
					Summary
			}
		}
	}
	return nil
}

// Equal checks whether two objects are equal, as determined by Go's `==`
// operator.
//
// Notably, NaN (the float value) cannot compare to itself. This Comparison
// implementation will return a specific error in the event that `expected`
// and `actual` are NaN.
//
// Pointers compare by identity under `==`; if you meant to compare what
// they point at, use should.Match or should.BeEquivalentTo.
func Equal[T comparable](expected T) comparison.Func[T] {
	cmpName := "should.Equal"

	if fn := checkIsNaN(cmpName, expected); fn != nil {
		return fn
	}

	return func(actual T) *failure.Summary {
		if actual == expected {
			return nil
		}

		fb := comparison.NewSummaryBuilder(cmpName, expected).
			SmartCmpDiff(actual, expected)
		if typ := reflect.TypeOf(expected); typ != nil && typ.Kind() == reflect.Pointer {
			fb = fb.Because("pointers differ by identity; did you want should.Match?")
		}
		return fb.Summary
	}
}

// NotEqual checks whether two objects are unequal, as determined by Go's
// `!=` operator.
//
// Notably, NaN (the float value) cannot compare to itself. This Comparison
// implementation will return a specific error in the event that `expected`
// and `actual` are NaN.
func NotEqual[T comparable](expected T) comparison.Func[T] {
	cmpName := "should.NotEqual"

	if fn := checkIsNaN(cmpName, expected); fn != nil {
		return fn
	}

	return func(actual T) *failure.Summary {
		if actual != expected {
			return nil
		}

		return comparison.NewSummaryBuilder(cmpName, expected).
			Actual(actual).
			Summary
	}
}
