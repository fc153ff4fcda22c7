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

package failure

import "testing"

func TestComparisonGettersTolerateNil(t *testing.T) {
	t.Parallel()

	var c *Comparison
	if got := c.GetName(); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := c.GetTypeArguments(); got != nil {
		t.Fatalf("got %v", got)
	}

	c = &Comparison{Name: "should.Equal", TypeArguments: []string{"int"}}
	if got := c.GetName(); got != "should.Equal" {
		t.Fatalf("got %q", got)
	}
	if got := c.GetTypeArguments(); len(got) != 1 || got[0] != "int" {
		t.Fatalf("got %v", got)
	}
}
