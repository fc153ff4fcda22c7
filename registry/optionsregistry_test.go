// Copyright 2025 The Shouldly Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetCmpOptionsReturnsACopy(t *testing.T) {
	// Mutates the global registry; no t.Parallel.

	before := GetCmpOptions()
	beforeLen := len(before)

	RegisterCmpOption(cmp.AllowUnexported(struct{ x int }{}))

	if got := len(GetCmpOptions()); got != beforeLen+1 {
		t.Fatalf("registry length %d, want %d", got, beforeLen+1)
	}
	// The previously returned copy must be unaffected.
	if len(before) != beforeLen {
		t.Fatalf("earlier copy changed length: %d", len(before))
	}
}

func TestRegisterNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	RegisterCmpOption(nil)
}

func TestDefaultOptionsCompareFuncsByPointer(t *testing.T) {
	t.Parallel()

	f := func() {}
	g := func() {}

	type holder struct{ Fn func() }
	if !cmp.Equal(holder{f}, holder{f}, GetCmpOptions()...) {
		t.Fatal("same function pointer should compare equal")
	}
	if cmp.Equal(holder{f}, holder{g}, GetCmpOptions()...) {
		t.Fatal("distinct function pointers should compare inequal")
	}
}
