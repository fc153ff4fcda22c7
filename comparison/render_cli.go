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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgutz/ansi"

	"github.com/james00harper/shouldly/failure"
)

// RenderCLI renders failure.Summary values for `go test` CLI output.
type RenderCLI struct {
	// If true, will render all Warn-level findings.
	//
	// Otherwise this will print an omission message which describes how long
	// the omitted value is and to pass `-v` to the test to see them.
	Verbose bool

	// If true, will add ANSI color codes to Findings with appropriate types
	// (currently just simple +/- per-line colorization for unified and
	// cmp.Diff Findings).
	Colorize bool

	// If true, SourceContext frames render with their full path instead of
	// just the base filename.
	FullFilenames bool
}

// Finding renders a Finding to a set of output lines which would be suitable
// for display as CLI output (e.g. to be logged with testing.T.Log calls).
func (r RenderCLI) Finding(prefix string, f *failure.Finding) (ret string) {
	if len(f.Value) == 0 {
		return fmt.Sprintf("%s%s [no value]", prefix, f.Name)
	}
	if len(f.Value) == 1 && len(strings.TrimSpace(f.Value[0])) == 0 {
		return fmt.Sprintf("%s%s [blank one-line value]", prefix, f.Name)
	}

	if f.Level > failure.LevelError && !r.Verbose {
		valLen := len(f.Value) - 1 // one per newline
		for _, line := range f.Value {
			valLen += len(line)
		}
		return fmt.Sprintf("%s%s [verbose value len=%d (pass -v to see)]", prefix, f.Name, valLen)
	}

	if len(f.Value) == 1 {
		return fmt.Sprintf("%s%s: %s", prefix, f.Name, f.Value[0])
	}

	value := make([]string, len(f.Value))
	copy(value, f.Value)
	if r.Colorize {
		switch f.Type {
		case failure.HintCmpDiff, failure.HintUnifiedDiff:
			for i, line := range value {
				code := ""
				if strings.HasPrefix(line, "-") {
					code = ansi.Green
					if strings.HasPrefix(line, "--- ") {
						code = ansi.LightGreen
					}
				} else if strings.HasPrefix(line, "+") {
					code = ansi.Red
					if strings.HasPrefix(line, "+++ ") {
						code = ansi.LightRed
					}
				} else if strings.HasPrefix(line, "@@ ") {
					code = ansi.Red
				}
				if code != "" {
					value[i] = fmt.Sprintf("%s%s%s", code, line, ansi.Reset)
				} else {
					value[i] = line
				}
			}
		}
	}
	for i, line := range value {
		value[i] = "    " + line
	}
	return fmt.Sprintf("%s%s: \\\n%s", prefix, f.Name, strings.Join(value, "\n"))
}

// SourceContext renders a Stack to a single "(name file:line ...)" line.
func (r RenderCLI) SourceContext(prefix string, s *failure.Stack) string {
	frames := make([]string, len(s.Frames))
	for i, frame := range s.Frames {
		filename := frame.Filename
		if !r.FullFilenames {
			filename = filepath.Base(filename)
		}
		frames[i] = fmt.Sprintf("%s:%d", filename, frame.Lineno)
	}
	return fmt.Sprintf("%s(%s %s)", prefix, s.Name, strings.Join(frames, " "))
}

// Failure pretty-prints the result as a list of lines for display via the
// `go test` CLI output.
//
// If Verbose is set, will render all verbose Findings.
// If Colorize is set, will attempt to add ANSI coloring (currently just very
// basic per-line colors for diffs).
func (r RenderCLI) Failure(prefix string, f *failure.Summary) string {
	if f == nil {
		return ""
	}
	testName := f.Comparison.GetName()
	if testName == "" {
		testName = "UNKNOWN COMPARISON"
	}

	var testTypeArgs string
	if args := f.Comparison.GetTypeArguments(); len(args) > 0 {
		testTypeArgs = fmt.Sprintf("[%s]", strings.Join(args, ", "))
	}

	lines := make([]string, 0, len(f.Findings)+len(f.SourceContext))
	for _, ctx := range f.SourceContext {
		lines = append(lines, r.SourceContext(prefix, ctx))
	}
	for _, finding := range f.Findings {
		lines = append(lines, r.Finding(prefix, finding))
	}

	if len(lines) == 0 {
		return fmt.Sprintf("%s%s FAILED", testName, testTypeArgs)
	}
	return fmt.Sprintf("%s%s FAILED\n%s", testName, testTypeArgs, strings.Join(lines, "\n"))
}
