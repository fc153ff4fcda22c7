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
	"strings"
	"testing"

	"github.com/james00harper/shouldly/comparison"
	"github.com/james00harper/shouldly/failure"
)

// shouldPass returns a subtest which fails if the comparison produced
// a Summary.
func shouldPass(summary *failure.Summary) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		if summary != nil {
			t.Fatalf("comparison unexpectedly failed:\n%s",
				comparison.RenderCLI{Verbose: true}.Failure("  ", summary))
		}
	}
}

// shouldFail returns a subtest which fails unless the comparison produced
// a Summary whose rendering contains every fragment.
func shouldFail(summary *failure.Summary, fragments ...string) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		if summary == nil {
			t.Fatal("comparison unexpectedly passed")
		}
		rendered := comparison.RenderCLI{Verbose: true}.Failure("  ", summary)
		for _, fragment := range fragments {
			if !strings.Contains(rendered, fragment) {
				t.Fatalf("rendered failure is missing %q:\n%s", fragment, rendered)
			}
		}
	}
}
