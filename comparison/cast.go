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
	"reflect"

	"github.com/james00harper/shouldly/failure"
)

// CastCompare applies this Func to a dynamically-typed value.
//
// If `actual` is already a T (or convertible to T without loss of
// information), the underlying Func is applied to the converted value.
// Otherwise this returns a Summary describing the bad conversion.
//
// This is the implementation behind assert.Loosely and check.Loosely.
func (cmp Func[T]) CastCompare(actual any) *failure.Summary {
	converted, summary := castTo[T](actual)
	if summary != nil {
		return summary
	}
	return cmp(converted)
}

func castTo[T any](actual any) (ret T, summary *failure.Summary) {
	targetType := reflect.TypeFor[T]()

	if actual == nil {
		// Untyped nil casts to the zero value of any nil-able T (and to `any`).
		switch targetType.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map,
			reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return ret, nil
		}
		return ret, NewSummaryBuilder("comparison.Func.CastCompare", ret).
			Because("Actual value is nil, which is not convertible to `%s`", targetType).
			Summary
	}

	if direct, ok := actual.(T); ok {
		return direct, nil
	}

	actualValue := reflect.ValueOf(actual)
	if actualValue.Type().ConvertibleTo(targetType) {
		converted := actualValue.Convert(targetType)
		// Only accept the conversion if it round-trips; this rejects lossy
		// numeric narrowing like int(10000) -> uint8.
		if converted.Type().ConvertibleTo(actualValue.Type()) {
			back := converted.Convert(actualValue.Type())
			if reflect.DeepEqual(back.Interface(), actual) {
				return converted.Interface().(T), nil
			}
		}
	}

	return ret, NewSummaryBuilder("comparison.Func.CastCompare", ret).
		Because("Actual value of type `%T` is not losslessly convertible to `%s`", actual, targetType).
		Actual(actual).
		Summary
}
