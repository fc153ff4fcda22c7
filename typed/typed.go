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

// Package typed is a typesafe wrapper around cmp.Diff.
//
// Requiring both arguments to have the same type catches argument-order and
// type mistakes at compile time, which raw cmp.Diff does not.
package typed

import (
	"github.com/google/go-cmp/cmp"

	"github.com/james00harper/shouldly/registry"
)

// Diff is a typesafe version of cmp.Diff which also includes the default
// options from the registry package (protobuf support and friends).
//
// The output reads as edits turning `actual` into `expected` (-actual
// +expected).
func Diff[T any](actual, expected T, opts ...cmp.Option) string {
	return cmp.Diff(actual, expected, append(registry.GetCmpOptions(), opts...)...)
}

// Equal is a typesafe version of cmp.Equal, again with the registry's
// default options included.
func Equal[T any](actual, expected T, opts ...cmp.Option) bool {
	return cmp.Equal(actual, expected, append(registry.GetCmpOptions(), opts...)...)
}
