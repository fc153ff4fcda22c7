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

	"github.com/google/go-cmp/cmp/cmpopts"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("simple", shouldPass(Match(100)(100)))
	t.Run("simple fail", shouldFail(Match(100)(101), "Diff"))

	t.Run("pointers match by pointee", shouldPass(Match(ptrTo(5))(ptrTo(5))))

	t.Run("proto message", shouldPass(
		Match(wrapperspb.Int64(42))(wrapperspb.Int64(42))))
	t.Run("proto message fail", shouldFail(
		Match(wrapperspb.Int64(42))(wrapperspb.Int64(43)), "Diff"))

	t.Run("extra options", shouldPass(
		Match([]int{3, 1, 2}, cmpopts.SortSlices(func(a, b int) bool { return a < b }))(
			[]int{1, 2, 3})))
}

func ptrTo[T any](v T) *T { return &v }
