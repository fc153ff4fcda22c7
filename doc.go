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

// Package shouldly is a structural assertion library for Go tests.
//
// The typical entry points live in the assert and check subpackages,
// combined with a comparison from the should subpackage:
//
//	assert.Loosely(t, got, should.BeEquivalentTo(want))
//	check.That(t, resp.Code, should.Equal(200))
//
// assert stops the test on failure (t.FailNow), check marks it failed and
// continues (t.Fail).
//
// should.BeEquivalentTo compares arbitrary object graphs structurally:
// strings byte-for-byte, sequences as order-independent multisets, structs
// field-by-field. On mismatch the reported failure includes the path from
// the graph root to the first divergent value, e.g.
//
//	root [order].Items [[]line].Element [2] [line].SKU [string]
//
// Failures are structured (see the failure package) and only rendered to
// text when reported, by comparison.RenderCLI. Options like Explain attach
// extra context to a failure and are evaluated only when the assertion
// actually fails.
package shouldly
