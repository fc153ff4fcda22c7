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

package equivalence

// Report describes the first point of divergence found by a comparison.
//
// Actual and Expected hold the two values at that point, which is usually
// deep inside the compared graphs (for a sequence count mismatch they hold
// the two counts). Path leads from the graph root to the divergent node.
//
// A Report is created once per failed comparison and never mutated
// afterward. Attaching a custom message or the name of the originating
// assertion is the caller's job, not the comparer's.
type Report struct {
	Actual   any
	Expected any
	Path     Path
}
