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
	"testing"
)

type invoice struct {
	ID    string
	Lines []invoiceLine
}

type invoiceLine struct {
	SKU string
	Qty int
}

func TestBeEquivalentTo(t *testing.T) {
	t.Parallel()

	t.Run("identical graphs", shouldPass(
		BeEquivalentTo(invoice{ID: "a", Lines: []invoiceLine{{"x", 1}}})(
			invoice{ID: "a", Lines: []invoiceLine{{"x", 1}}})))

	t.Run("reordered sequence", shouldPass(
		BeEquivalentTo([]int{1, 2, 3})([]int{3, 1, 2})))

	t.Run("array against slice", shouldPass(
		BeEquivalentTo([]string{"a", "b"})([2]string{"b", "a"})))

	t.Run("nested mismatch reports the path", shouldFail(
		BeEquivalentTo(invoice{ID: "a", Lines: []invoiceLine{{"x", 1}, {"y", 2}}})(
			invoice{ID: "a", Lines: []invoiceLine{{"x", 1}, {"y", 3}}}),
		"should.BeEquivalentTo",
		"Path",
		"Lines",
		"Element [1]",
		"Qty [int]"))

	t.Run("count mismatch", shouldFail(
		BeEquivalentTo([]int{1, 2, 3})([]int{1, 2}),
		"Count",
		"Actual: 2",
		"Expected: 3"))

	t.Run("nil vs value", shouldFail(
		BeEquivalentTo(5)(nil),
		"root"))

	t.Run("string case mismatch", shouldFail(
		BeEquivalentTo("Abc")("abc"),
		`Actual: "abc"`,
		`Expected: "Abc"`))
}

func TestBeStrictlyEquivalentTo(t *testing.T) {
	t.Parallel()

	t.Run("identical types", shouldPass(
		BeStrictlyEquivalentTo([]int{2, 1})([]int{1, 2})))

	t.Run("array against slice is a type mismatch", shouldFail(
		BeStrictlyEquivalentTo([]string{"a"})([1]string{"a"}),
		"should.BeStrictlyEquivalentTo"))
}
