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

// Package test_helper lets this library test its own assertion entry
// points: ExpectFailure records Log/Fail calls instead of failing the
// enclosing test, so a test can assert that an assertion failed and logged
// what it should have.
package test_helper

import (
	"fmt"
	"strings"
	"testing"
)

// ExpectFailure is a testing.TB which records failures instead of
// propagating them.
type ExpectFailure struct {
	*testing.T

	logCalls []string
	fail     bool
}

var _ testing.TB = (*ExpectFailure)(nil)

// NewExpectFailure wraps t. The returned TB swallows Log/Fail/FailNow;
// call Check at the end of the test to assert that a failure was recorded.
func NewExpectFailure(t *testing.T) *ExpectFailure {
	return &ExpectFailure{T: t}
}

// Log records the rendered log line.
func (e *ExpectFailure) Log(args ...any) {
	// fmt.Sprint has special logic to not join strings with " " - TB.Log does
	// not have this logic.
	formatted := make([]string, len(args))
	for i, arg := range args {
		formatted[i] = fmt.Sprint(arg)
	}
	e.logCalls = append(e.logCalls, strings.Join(formatted, " "))
}

// Logf records the rendered log line.
func (e *ExpectFailure) Logf(format string, args ...any) {
	e.logCalls = append(e.logCalls, fmt.Sprintf(format, args...))
}

// Fail records that the test-under-test failed.
func (e *ExpectFailure) Fail() {
	e.fail = true
}

// FailNow records that the test-under-test failed. It does not stop the
// goroutine; the assertion entry points under test return normally here.
func (e *ExpectFailure) FailNow() {
	e.fail = true
}

// Check asserts that Fail/FailNow was called and that every msg appears in
// some recorded log line. It fails the real test otherwise.
func (e *ExpectFailure) Check(msgs ...string) {
	e.Helper()

	if !e.fail {
		e.T.Log("ExpectFailure: Test case did not call Fail/FailNow.")
		e.T.Fail()
	}

	var missingMsgs []string
	for _, msg := range msgs {
		var ok bool
		for _, logged := range e.logCalls {
			if strings.Contains(logged, msg) {
				ok = true
				break
			}
		}
		if !ok {
			missingMsgs = append(missingMsgs, msg)
		}
	}
	if len(missingMsgs) > 0 {
		e.T.Log("ExpectFailure: Missing Check messages:")
		for _, msg := range missingMsgs {
			e.T.Log(" *", msg)
		}

		e.T.Log("Actual logs:")
		for _, msg := range e.logCalls {
			e.T.Log(msg)
		}
		e.T.Fail()
	}
	if e.T.Failed() {
		e.T.FailNow()
	}
}
