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

// Package failure contains the structured failure data produced by
// comparisons.
//
// A Summary is the only artifact a failing comparison produces; rendering it
// to human-readable text is the job of comparison.RenderCLI, and reporting it
// to the Go testing library is the job of shouldly.Report. Comparisons never
// format text themselves.
package failure

// Level indicates how a Finding should be treated when rendering.
type Level int

const (
	// LevelError findings are always rendered.
	LevelError Level = iota

	// LevelWarn findings are rendered only in verbose mode; the renderer
	// replaces them with a short omission notice otherwise.
	LevelWarn
)

// TypeHint tells the renderer what kind of text a Finding's Value holds, so
// it can apply content-aware presentation (e.g. diff colorization).
type TypeHint int

const (
	// HintNone is plain text.
	HintNone TypeHint = iota

	// HintCmpDiff marks output of cmp.Diff.
	HintCmpDiff

	// HintUnifiedDiff marks a unified diff.
	HintUnifiedDiff
)

// Finding is a single named observation attached to a Summary, e.g.
// "Actual", "Expected", "Because", "Path" or "Diff".
//
// Value holds the pre-split lines of the finding's rendering.
type Finding struct {
	Name  string
	Value []string
	Level Level
	Type  TypeHint
}

// Comparison identifies the comparison which generated a Summary.
type Comparison struct {
	// Name is the fully qualified comparison name, e.g. "should.Equal".
	Name string

	// TypeArguments holds rendered type parameters of the comparison, if any,
	// e.g. ["int"] for should.Equal[int].
	TypeArguments []string
}

// Frame is a single source location.
type Frame struct {
	Filename string
	Lineno   int
}

// Stack is a named list of source locations attached to a Summary (e.g. the
// "at" context added by comparison.Func.WithLineContext).
type Stack struct {
	Name   string
	Frames []Frame
}

// Summary is the structured description of one failed comparison.
//
// A nil *Summary means the comparison passed.
type Summary struct {
	Comparison    *Comparison
	Findings      []*Finding
	SourceContext []*Stack
}

// GetName returns the comparison name, tolerating nil receivers.
func (c *Comparison) GetName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

// GetTypeArguments returns the rendered type arguments, tolerating nil
// receivers.
func (c *Comparison) GetTypeArguments() []string {
	if c == nil {
		return nil
	}
	return c.TypeArguments
}
