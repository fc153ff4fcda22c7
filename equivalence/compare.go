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

// Package equivalence implements deep structural comparison of arbitrary
// object graphs for test assertions.
//
// Two values are equivalent when they have compatible runtime types and
// their contents match recursively: value kinds by native equality, strings
// byte-for-byte, sequences as order-independent multisets, and structs and
// maps member-by-member. A failed comparison yields a Report locating the
// first divergence via a Path from the graph root.
//
// Comparison is read-only over its inputs and keeps no state between calls,
// so concurrent comparisons of independent value pairs are safe. Cyclic
// graphs are not supported: there is no cycle detection, and comparing a
// self-referential structure which is not short-circuited by pointer
// identity will recurse without bound.
package equivalence

import (
	"fmt"
	"reflect"
	"sort"
)

// Policy selects how the runtime types of actual and expected values are
// reconciled before their contents are compared.
type Policy int

const (
	// Permissive accepts identical types, an actual type assignable to the
	// expected type (e.g. an unnamed struct against its named twin), any two
	// sequence types (array vs. slice, differing element types), and any two
	// map types. This is the default: it compares shape rather than nominal
	// type, which is what test expectations usually want.
	Permissive Policy = iota

	// Strict requires the two runtime types to be identical.
	Strict
)

// Comparer performs structural equivalence comparison.
//
// The zero value uses the Permissive policy.
type Comparer struct {
	Policy Policy
}

// Compare reports whether actual is structurally equivalent to expected
// under the Permissive policy. It returns nil on equivalence, or a Report
// locating the first divergence.
func Compare(actual, expected any) *Report {
	return Comparer{}.Compare(actual, expected)
}

// Compare reports whether actual is structurally equivalent to expected.
// It returns nil on equivalence, or a Report locating the first divergence.
//
// Traversal is depth-first; struct members compare in declaration order and
// map members in sorted key order, so the first failure is deterministic
// for a given pair of inputs.
func (c Comparer) Compare(actual, expected any) *Report {
	return c.compare(actual, expected, nil)
}

func (c Comparer) compare(actual, expected any, path Path) *Report {
	actualValue := reflect.ValueOf(actual)
	expectedValue := reflect.ValueOf(expected)

	actualAbsent := absent(actualValue)
	expectedAbsent := absent(expectedValue)
	if actualAbsent && expectedAbsent {
		return nil
	}
	if actualAbsent != expectedAbsent {
		return &Report{Actual: actual, Expected: expected, Path: path}
	}

	// Pointers are transparent: identical pointers are equivalent without
	// descending (this also terminates one level of self-reference), and
	// otherwise both sides compare by pointee. Neither side is nil here.
	// Strict still demands identical types before dereferencing, so a
	// pointer never matches its pointee under that policy.
	if actualValue.Kind() == reflect.Pointer || expectedValue.Kind() == reflect.Pointer {
		if c.Policy == Strict && actualValue.Type() != expectedValue.Type() {
			return &Report{Actual: actual, Expected: expected, Path: path.annotate(expectedValue.Type().String())}
		}
		if actualValue.Kind() == reflect.Pointer && expectedValue.Kind() == reflect.Pointer &&
			actualValue.Type() == expectedValue.Type() &&
			actualValue.Pointer() == expectedValue.Pointer() {
			return nil
		}
		if actualValue.Kind() == reflect.Pointer {
			actual = actualValue.Elem().Interface()
		}
		if expectedValue.Kind() == reflect.Pointer {
			expected = expectedValue.Elem().Interface()
		}
		return c.compare(actual, expected, path)
	}

	actualType := actualValue.Type()
	expectedType := expectedValue.Type()

	// The expected side's runtime type is what we compare against; its name
	// annotates the path segment for this node.
	path = path.annotate(expectedType.String())

	if !c.compatible(actualType, expectedType) {
		return &Report{Actual: actual, Expected: expected, Path: path}
	}

	switch expectedType.Kind() {
	case reflect.String:
		// Ordinal, byte-exact. No case folding, no locale.
		if actualValue.String() != expectedValue.String() {
			return &Report{Actual: actual, Expected: expected, Path: path}
		}
		return nil

	case reflect.Slice, reflect.Array:
		if expectedType.Kind() == reflect.Slice && actualType == expectedType &&
			actualValue.Len() == expectedValue.Len() &&
			actualValue.Pointer() == expectedValue.Pointer() {
			return nil
		}
		return c.compareSequence(actualValue, expectedValue, path)

	case reflect.Map:
		if actualType == expectedType && actualValue.Pointer() == expectedValue.Pointer() {
			return nil
		}
		return c.compareMap(actualValue, expectedValue, path)

	case reflect.Struct:
		if equal, ok := compareByEqualMethod(actualValue, expectedValue); ok {
			if equal {
				return nil
			}
			return &Report{Actual: actual, Expected: expected, Path: path}
		}
		if exportedFieldCount(expectedType) == 0 {
			// Opaque struct: no readable members to recurse into.
			if reflect.DeepEqual(actual, expected) {
				return nil
			}
			return &Report{Actual: actual, Expected: expected, Path: path}
		}
		return c.compareStruct(actualValue, expectedValue, path)

	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if actualValue.Pointer() == expectedValue.Pointer() {
			return nil
		}
		return &Report{Actual: actual, Expected: expected, Path: path}

	default:
		// Value kind: bool, integer, float, complex. Native equality, after
		// converting the actual side when the permissive policy admitted an
		// assignable type.
		if actualType != expectedType {
			actualValue = actualValue.Convert(expectedType)
		}
		if !actualValue.Equal(expectedValue) {
			return &Report{Actual: actual, Expected: expected, Path: path}
		}
		return nil
	}
}

// compatible implements the type-reconciliation policy of the Comparer.
func (c Comparer) compatible(actualType, expectedType reflect.Type) bool {
	if actualType == expectedType {
		return true
	}
	if c.Policy == Strict {
		return false
	}
	if actualType.AssignableTo(expectedType) {
		return true
	}
	if isSequence(actualType) && isSequence(expectedType) {
		return true
	}
	if actualType.Kind() == reflect.Map && expectedType.Kind() == reflect.Map {
		return true
	}
	return false
}

// compareSequence compares two finite indexable sequences. The counts must
// match; the elements then pair up under a loose (order-independent)
// multiset match.
//
// Each expected element, in order, tries every not-yet-matched actual index
// in ascending order and consumes the first one it is equivalent to. If an
// expected element matches nothing, the failure from the last attempted
// candidate is the one reported; failures from earlier candidates are
// discarded. The element path is indexed by the expected element's own
// position. Worst case is quadratic in the sequence length.
func (c Comparer) compareSequence(actualValue, expectedValue reflect.Value, path Path) *Report {
	actualCount := actualValue.Len()
	expectedCount := expectedValue.Len()
	if actualCount != expectedCount {
		return &Report{Actual: actualCount, Expected: expectedCount, Path: path.push(countSegment)}
	}

	consumed := make([]bool, actualCount)
	for i := 0; i < expectedCount; i++ {
		expectedElem := expectedValue.Index(i).Interface()
		elemPath := path.pushElement(i)

		var lastFailure *Report
		matched := false
		for j := 0; j < actualCount; j++ {
			if consumed[j] {
				continue
			}
			report := c.compare(actualValue.Index(j).Interface(), expectedElem, elemPath)
			if report == nil {
				consumed[j] = true
				matched = true
				break
			}
			lastFailure = report
		}
		if !matched {
			return lastFailure
		}
	}
	return nil
}

// compareStruct compares the exported fields of two structs in declaration
// order of the expected type. The first divergent member ends the whole
// comparison.
func (c Comparer) compareStruct(actualValue, expectedValue reflect.Value, path Path) *Report {
	expectedType := expectedValue.Type()
	for i := 0; i < expectedType.NumField(); i++ {
		field := expectedType.Field(i)
		if !field.IsExported() {
			continue
		}
		memberPath := path.push(field.Name)
		actualField := actualValue.FieldByName(field.Name)
		if !actualField.IsValid() {
			return &Report{Actual: nil, Expected: expectedValue.Field(i).Interface(), Path: memberPath}
		}
		if report := c.compare(actualField.Interface(), expectedValue.Field(i).Interface(), memberPath); report != nil {
			return report
		}
	}
	return nil
}

// compareMap treats a map as a composite whose members are its keys,
// visited in sorted render order so failure paths are reproducible.
func (c Comparer) compareMap(actualValue, expectedValue reflect.Value, path Path) *Report {
	actualCount := actualValue.Len()
	expectedCount := expectedValue.Len()
	if actualCount != expectedCount {
		return &Report{Actual: actualCount, Expected: expectedCount, Path: path.push(countSegment)}
	}

	type member struct {
		segment string
		key     reflect.Value
	}
	members := make([]member, 0, expectedCount)
	for _, key := range expectedValue.MapKeys() {
		members = append(members, member{fmt.Sprintf("%v", key.Interface()), key})
	}
	sort.Slice(members, func(i, j int) bool { return members[i].segment < members[j].segment })

	actualKeyType := actualValue.Type().Key()
	for _, m := range members {
		memberPath := path.push(m.segment)
		key := m.key
		if key.Type() != actualKeyType {
			// The converted key must round-trip losslessly, or a truncated
			// key could land on an unrelated actual member.
			if !key.Type().ConvertibleTo(actualKeyType) || !actualKeyType.ConvertibleTo(key.Type()) {
				return &Report{Actual: nil, Expected: expectedValue.MapIndex(m.key).Interface(), Path: memberPath}
			}
			converted := key.Convert(actualKeyType)
			if !reflect.DeepEqual(converted.Convert(key.Type()).Interface(), key.Interface()) {
				return &Report{Actual: nil, Expected: expectedValue.MapIndex(m.key).Interface(), Path: memberPath}
			}
			key = converted
		}
		actualElem := actualValue.MapIndex(key)
		if !actualElem.IsValid() {
			return &Report{Actual: nil, Expected: expectedValue.MapIndex(m.key).Interface(), Path: memberPath}
		}
		if report := c.compare(actualElem.Interface(), expectedValue.MapIndex(m.key).Interface(), memberPath); report != nil {
			return report
		}
	}
	return nil
}

// compareByEqualMethod compares via an `Equal(T) bool` method on the
// expected value, if it defines one (time.Time is the canonical case).
// ok is false when no usable method exists.
func compareByEqualMethod(actualValue, expectedValue reflect.Value) (equal, ok bool) {
	method := expectedValue.MethodByName("Equal")
	if !method.IsValid() {
		return false, false
	}
	methodType := method.Type()
	if methodType.NumIn() != 1 || methodType.NumOut() != 1 ||
		methodType.Out(0).Kind() != reflect.Bool ||
		methodType.In(0) != expectedValue.Type() {
		return false, false
	}
	if !actualValue.Type().AssignableTo(methodType.In(0)) {
		return false, false
	}
	return method.Call([]reflect.Value{actualValue})[0].Bool(), true
}

// absent reports whether a value is null for comparison purposes: an
// untyped nil, or a nil of a nil-able kind.
func absent(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func isSequence(t reflect.Type) bool {
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}

func exportedFieldCount(t reflect.Type) int {
	n := 0
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			n++
		}
	}
	return n
}
