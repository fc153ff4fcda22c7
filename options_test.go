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
	"path/filepath"
	"testing"

	"github.com/james00harper/shouldly/failure"
)

func mkSummary() *failure.Summary {
	return &failure.Summary{Comparison: &failure.Comparison{Name: "options_test"}}
}

func TestExplainIsLazy(t *testing.T) {
	t.Parallel()

	opt := Explain(func() string {
		t.Fatal("message callback ran on the success path")
		return ""
	})
	if got := ApplyAllOptions(nil, []Option{opt}); got != nil {
		t.Fatalf("nil summary should stay nil, got %v", got)
	}
}

func TestExplainAttachesMessage(t *testing.T) {
	t.Parallel()

	calls := 0
	summary := ApplyAllOptions(mkSummary(), []Option{Explain(func() string {
		calls++
		return "line one\nline two"
	})})

	if calls != 1 {
		t.Fatalf("message callback ran %d times, want 1", calls)
	}
	if len(summary.Findings) != 1 {
		t.Fatalf("want 1 finding, got %d", len(summary.Findings))
	}
	finding := summary.Findings[0]
	if finding.Name != "Message" {
		t.Fatalf("finding name: %q", finding.Name)
	}
	if len(finding.Value) != 2 || finding.Value[0] != "line one" || finding.Value[1] != "line two" {
		t.Fatalf("finding value: %q", finding.Value)
	}
}

func TestExplainf(t *testing.T) {
	t.Parallel()

	summary := ApplyAllOptions(mkSummary(), []Option{Explainf("id=%d", 7)})
	if got := summary.Findings[0].Value[0]; got != "id=7" {
		t.Fatalf("got %q", got)
	}
}

func TestLineContext(t *testing.T) {
	t.Parallel()

	opt := LineContext() // the frame recorded is this line
	summary := ApplyAllOptions(mkSummary(), []Option{opt})

	if len(summary.SourceContext) != 1 {
		t.Fatalf("SourceContext len wrong: %d", len(summary.SourceContext))
	}
	atCtx := summary.SourceContext[0]
	if atCtx.Name != "at" {
		t.Fatalf("SourceContext name: %q", atCtx.Name)
	}
	if len(atCtx.Frames) != 1 {
		t.Fatalf("Frames len wrong: %d", len(atCtx.Frames))
	}
	if got := filepath.Base(atCtx.Frames[0].Filename); got != "options_test.go" {
		t.Fatalf("unexpected filename: %q", got)
	}
	if atCtx.Frames[0].Lineno == 0 {
		t.Fatal("line number not captured")
	}
}
