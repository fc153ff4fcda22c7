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

package shouldly

import (
	"fmt"
	"strings"
	"testing"

	"github.com/james00harper/shouldly/comparison"
)

// fakeTB records Log calls. In real use this would be *testing.T.
type fakeTB struct {
	logged  []string
	failed  bool
	stopped bool
}

func (f *fakeTB) Helper() {}
func (f *fakeTB) Log(args ...any) {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprint(arg)
	}
	f.logged = append(f.logged, strings.Join(parts, " "))
}
func (f *fakeTB) Fail()    { f.failed = true }
func (f *fakeTB) FailNow() { f.stopped = true }

func TestReport(t *testing.T) {
	// Mutates package-level rendering config; no t.Parallel.

	oldColorize := Colorize
	Colorize = false
	defer func() { Colorize = oldColorize }()

	t.Run("nil summary logs nothing", func(t *testing.T) {
		fake := &fakeTB{}
		Report(fake, "assert.That", nil)
		if len(fake.logged) != 0 {
			t.Fatalf("logged: %q", fake.logged)
		}
	})

	t.Run("summary renders with assert name", func(t *testing.T) {
		fake := &fakeTB{}
		summary := comparison.NewSummaryBuilder("should.Equal", 0).
			Actual(1).
			Expected(2).
			Summary
		Report(fake, "assert.That", summary)

		if len(fake.logged) != 1 {
			t.Fatalf("want one log call, got %q", fake.logged)
		}
		out := fake.logged[0]
		for _, fragment := range []string{
			"assert.That should.Equal[int] FAILED",
			"Actual: 1",
			"Expected: 2",
		} {
			if !strings.Contains(out, fragment) {
				t.Fatalf("output missing %q:\n%s", fragment, out)
			}
		}
	})

	t.Run("reporting never fails the test itself", func(t *testing.T) {
		fake := &fakeTB{}
		Report(fake, "check.That", comparison.NewSummaryBuilder("x").Summary)
		if fake.failed || fake.stopped {
			t.Fatal("Report should leave Fail/FailNow to the assertion wrapper")
		}
	})
}
