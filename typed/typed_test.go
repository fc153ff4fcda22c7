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

package typed

import (
	"testing"

	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestDiff(t *testing.T) {
	t.Parallel()

	if diff := Diff(10, 10); diff != "" {
		t.Fatalf("equal values produced a diff: %s", diff)
	}
	if diff := Diff(10, 20); diff == "" {
		t.Fatal("unequal values produced no diff")
	}
}

func TestDiffHandlesProtos(t *testing.T) {
	t.Parallel()

	// Raw cmp.Diff panics on proto messages; the registry's default options
	// make this work.
	if diff := Diff(wrapperspb.String("a"), wrapperspb.String("a")); diff != "" {
		t.Fatalf("equal protos produced a diff: %s", diff)
	}
	if diff := Diff(wrapperspb.String("a"), wrapperspb.String("b")); diff == "" {
		t.Fatal("unequal protos produced no diff")
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	if !Equal([]int{1, 2}, []int{1, 2}) {
		t.Fatal("equal slices reported inequal")
	}
	if Equal([]int{1, 2}, []int{2, 1}) {
		t.Fatal("unequal slices reported equal")
	}
}
