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
	"strings"
	"testing"

	"github.com/james00harper/shouldly/failure"
)

type stringerBox struct{ N int }

func (stringerBox) String() string { return "box" }

func findingNames(s *failure.Summary) []string {
	names := make([]string, len(s.Findings))
	for i, f := range s.Findings {
		names[i] = f.Name
	}
	return names
}

func TestSmartCmpDiff(t *testing.T) {
	t.Parallel()

	t.Run("short distinct values get no diff", func(t *testing.T) {
		summary := NewSummaryBuilder("x").SmartCmpDiff(10, 20).Summary
		if got := strings.Join(findingNames(summary), ","); got != "Actual,Expected" {
			t.Fatalf("findings: %s", got)
		}
	})

	t.Run("long values get a diff and are warn level", func(t *testing.T) {
		a := strings.Repeat("x", 40) + "a"
		b := strings.Repeat("x", 40) + "b"
		summary := NewSummaryBuilder("x").SmartCmpDiff(a, b).Summary

		if got := strings.Join(findingNames(summary), ","); got != "Actual,Expected,Diff" {
			t.Fatalf("findings: %s", got)
		}
		if summary.Findings[0].Level != failure.LevelWarn {
			t.Fatal("long Actual should be warn level")
		}
		if summary.Findings[2].Type != failure.HintCmpDiff {
			t.Fatal("Diff finding should be hinted as a cmp diff")
		}
	})

	t.Run("identical renderings force a diff", func(t *testing.T) {
		// Both values render as "box", so the cmp diff is the only way to see
		// the difference.
		summary := NewSummaryBuilder("x").SmartCmpDiff(stringerBox{1}, stringerBox{2}).Summary
		names := findingNames(summary)
		if names[len(names)-1] != "Diff" {
			t.Fatalf("findings: %v", names)
		}
	})
}
