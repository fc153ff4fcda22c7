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

// Package assert contains assertion entry points which stop the current
// test on failure. See the check package for the non-fatal variants.
package assert

import (
	"testing"

	"github.com/james00harper/shouldly"
	"github.com/james00harper/shouldly/comparison"
	"github.com/james00harper/shouldly/should"
)

// That will compare `actual` using `compare(actual)`.
//
// If this results in a failure.Summary, it will be reported with
// shouldly.Report, and the test will be stopped with t.FailNow().
//
// Example: `assert.That(t, 10, should.Equal(20))`
func That[T any](t shouldly.TestingTB, actual T, compare comparison.Func[T], opts ...shouldly.Option) {
	if summary := shouldly.ApplyAllOptions(compare(actual), opts); summary != nil {
		t.Helper()
		shouldly.Report(t, "assert.That", summary)
		t.FailNow()
	}
}

// Loosely will compare `actual` using `compare.CastCompare(actual)`,
// allowing `actual` to have any type which converts losslessly to the
// comparison's type.
//
// If this results in a failure.Summary, it will be reported with
// shouldly.Report, and the test will be stopped with t.FailNow().
//
// Example: `assert.Loosely(t, uint8(10), should.Equal(20))`
func Loosely[T any](t shouldly.TestingTB, actual any, compare comparison.Func[T], opts ...shouldly.Option) {
	if summary := shouldly.ApplyAllOptions(compare.CastCompare(actual), opts); summary != nil {
		t.Helper()
		shouldly.Report(t, "assert.Loosely", summary)
		t.FailNow()
	}
}

// NoErr is a short helper to check that a given `err` is nil.
//
// This is identical to:
//
//	assert.That(t, err, should.ErrLike(nil))
//
// See [should.ErrLike].
func NoErr(t testing.TB, err error) {
	if err != nil {
		t.Helper()
		/*assert*/ That(t, err, should.ErrLike(nil))
	}
}

// ErrIsLike is a short helper to check that a given `err` matches a string
// or error `target`.
//
// This is identical to:
//
//	assert.That(t, err, should.ErrLike(target))
//
// See [should.ErrLike].
func ErrIsLike(t testing.TB, err error, target any) {
	t.Helper()
	/*assert*/ That(t, err, should.ErrLike(target))
}
