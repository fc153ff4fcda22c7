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

import (
	"fmt"
	"strings"
)

// Path locates a node in a compared object graph.
//
// Each segment is a struct field name, a map key, an `Element [i]` sequence
// position, or the `Count` pseudo-member of a sequence. The segment for
// a node additionally carries a ` [TypeName]` annotation once the node's
// compare-against type has been resolved. The root of the graph is the
// segment `root`.
//
// A Path's length equals the recursion depth at which it was captured.
// Paths are extended copy-on-write, so sibling branches of the comparison
// never share backing storage.
type Path []string

const (
	rootSegment  = "root"
	countSegment = "Count"
)

// push returns a new Path with segment appended. The receiver is unchanged.
func (p Path) push(segment string) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, segment)
}

// pushElement returns a new Path with an `Element [i]` segment appended.
func (p Path) pushElement(i int) Path {
	return p.push(fmt.Sprintf("Element [%d]", i))
}

// annotate returns a new Path whose last segment carries a ` [typeName]`
// annotation. An empty Path first receives the root placeholder segment.
func (p Path) annotate(typeName string) Path {
	if len(p) == 0 {
		return Path{rootSegment + " [" + typeName + "]"}
	}
	next := make(Path, len(p))
	copy(next, p)
	next[len(next)-1] += " [" + typeName + "]"
	return next
}

// String renders the path with `.` separating segments, e.g.
//
//	root [*equivalence_test.order].Items [[]equivalence_test.line].Element [2] [equivalence_test.line].SKU [string]
//
// An empty Path renders as `root`. This rendering is the stable contract
// consumed by the should package's "Path" finding; tests may match on it.
func (p Path) String() string {
	if len(p) == 0 {
		return rootSegment
	}
	return strings.Join(p, ".")
}

// Last returns the final segment, or `root` for an empty Path.
func (p Path) Last() string {
	if len(p) == 0 {
		return rootSegment
	}
	return p[len(p)-1]
}
