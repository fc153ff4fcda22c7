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
	"runtime"
	"strings"

	"github.com/james00harper/shouldly/failure"
)

// Option modifies a failure Summary before it is reported. Options are only
// ever applied to failing comparisons, so any work they defer (like
// building an explanation string) happens on the failure path only.
type Option interface {
	modifySummary(*failure.Summary)
}

type summaryModifier func(*failure.Summary)

func (s summaryModifier) modifySummary(f *failure.Summary) { s(f) }

// ApplyAllOptions applies opts to summary in order and returns it.
//
// A nil summary (a passing comparison) is returned unchanged without
// invoking any option.
func ApplyAllOptions(summary *failure.Summary, opts []Option) *failure.Summary {
	if summary == nil {
		return nil
	}
	for _, opt := range opts {
		opt.modifySummary(summary)
	}
	return summary
}

// Explain attaches a caller-supplied message to a failure.
//
// The message callback runs only if the assertion fails; use this when the
// message is expensive to build.
func Explain(message func() string) Option {
	return summaryModifier(func(f *failure.Summary) {
		f.Findings = append(f.Findings, &failure.Finding{
			Name:  "Message",
			Value: strings.Split(message(), "\n"),
		})
	})
}

// Explainf attaches a fixed formatted message to a failure. It is a thin
// adapter over Explain.
func Explainf(format string, args ...any) Option {
	return Explain(func() string {
		return fmt.Sprintf(format, args...)
	})
}

// LineContext returns an Option which adds an "at" SourceContext with the
// filename and line number of the frame calling LineContext, plus
// skipFrames[0] (if provided).
//
// This is the Option counterpart of comparison.Func.WithLineContext, for
// use in test helper functions.
func LineContext(skipFrames ...int) Option {
	if len(skipFrames) > 1 {
		panic(fmt.Errorf(
			"shouldly.LineContext: skipFrames has more than one value: %v", skipFrames))
	}
	skip := 1
	if len(skipFrames) > 0 {
		skip = 1 + skipFrames[0]
	}
	_, filename, lineno, ok := runtime.Caller(skip)

	return summaryModifier(func(f *failure.Summary) {
		if !ok {
			return
		}
		f.SourceContext = append(f.SourceContext, &failure.Stack{
			Name:   "at",
			Frames: []failure.Frame{{Filename: filename, Lineno: lineno}},
		})
	})
}
