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
	"flag"
	"os"

	"github.com/james00harper/shouldly/comparison"
	"github.com/james00harper/shouldly/failure"
)

// TestingTB is the subset of testing.TB that this library needs. It exists
// so that non-testing callers (and this library's own tests) can supply
// fakes.
type TestingTB interface {
	Helper()
	Log(args ...any)
	Fail()
	FailNow()
}

var (
	// Verbose forces rendering of Warn-level findings even when the test
	// binary is not running with -v. Settable for tests.
	Verbose = os.Getenv("SHOULDLY_VERBOSE") != ""

	// Colorize enables ANSI colors in rendered failures. Defaults to on
	// unless NO_COLOR is set. Settable for tests.
	Colorize = os.Getenv("NO_COLOR") == ""

	// FullSourceContextFilenames renders full paths instead of base
	// filenames in source context lines. Settable for tests.
	FullSourceContextFilenames = false
)

func verboseEnabled() bool {
	if Verbose {
		return true
	}
	if f := flag.Lookup("test.v"); f != nil {
		return f.Value.String() == "true"
	}
	return false
}

// Report renders a failure Summary and logs it to t.
//
// assertName identifies the assertion entry point the user called (e.g.
// "assert.That"); it is always passed explicitly by the calling wrapper.
// Report does not fail the test; that is the wrapper's job.
func Report(t TestingTB, assertName string, summary *failure.Summary) {
	if summary == nil {
		return
	}
	t.Helper()
	renderer := comparison.RenderCLI{
		Verbose:       verboseEnabled(),
		Colorize:      Colorize,
		FullFilenames: FullSourceContextFilenames,
	}
	t.Log(assertName + " " + renderer.Failure("  ", summary))
}
