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

package should

import (
	"strings"

	"github.com/james00harper/shouldly/comparison"
	"github.com/james00harper/shouldly/failure"
)

func stringCheck(cmpName, target string, pred func(actual, target string) bool) comparison.Func[string] {
	return func(actual string) *failure.Summary {
		if pred(actual, target) {
			return nil
		}
		return comparison.NewSummaryBuilder(cmpName).
			Actual(actual).WarnIfLong().
			Expected(target).WarnIfLong().
			Summary
	}
}

// ContainSubstring checks that the actual string contains `target`.
func ContainSubstring(target string) comparison.Func[string] {
	return stringCheck("should.ContainSubstring", target, strings.Contains)
}

// NotContainSubstring checks that the actual string does not contain
// `target`.
func NotContainSubstring(target string) comparison.Func[string] {
	return stringCheck("should.NotContainSubstring", target,
		func(actual, target string) bool { return !strings.Contains(actual, target) })
}

// HavePrefix checks that the actual string starts with `target`.
func HavePrefix(target string) comparison.Func[string] {
	return stringCheck("should.HavePrefix", target, strings.HasPrefix)
}

// NotHavePrefix checks that the actual string does not start with `target`.
func NotHavePrefix(target string) comparison.Func[string] {
	return stringCheck("should.NotHavePrefix", target,
		func(actual, target string) bool { return !strings.HasPrefix(actual, target) })
}

// HaveSuffix checks that the actual string ends with `target`.
func HaveSuffix(target string) comparison.Func[string] {
	return stringCheck("should.HaveSuffix", target, strings.HasSuffix)
}

// NotHaveSuffix checks that the actual string does not end with `target`.
func NotHaveSuffix(target string) comparison.Func[string] {
	return stringCheck("should.NotHaveSuffix", target,
		func(actual, target string) bool { return !strings.HasSuffix(actual, target) })
}
