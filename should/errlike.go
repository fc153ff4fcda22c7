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
	"errors"
	"fmt"
	"strings"

	"github.com/james00harper/shouldly/comparison"
	"github.com/james00harper/shouldly/failure"
)

// ErrLike checks an error against a target:
//
//   - target nil: the error must be nil.
//   - target string: the error must be non-nil and its message must contain
//     the string.
//   - target error: the error must be non-nil and either match via
//     errors.Is or contain target's message.
//
// Any other target type is a usage error and always fails.
func ErrLike(target any) comparison.Func[error] {
	const cmpName = "should.ErrLike"

	return func(actual error) *failure.Summary {
		switch expected := target.(type) {
		case nil:
			if actual == nil {
				return nil
			}
			return comparison.NewSummaryBuilder(cmpName).
				Because("Expected a nil error.").
				Actual(fmt.Sprintf("%s", actual)).WarnIfLong().
				Summary

		case string:
			return errLikeMessage(cmpName, actual, expected)

		case error:
			if actual != nil && errors.Is(actual, expected) {
				return nil
			}
			return errLikeMessage(cmpName, actual, expected.Error())

		default:
			return comparison.NewSummaryBuilder(cmpName).
				Because("Bad target type `%T`: ErrLike accepts nil, string or error.", target).
				Summary
		}
	}
}

func errLikeMessage(cmpName string, actual error, fragment string) *failure.Summary {
	if actual == nil {
		return comparison.NewSummaryBuilder(cmpName).
			Because("Error is unexpectedly nil.").
			Expected(fragment).WarnIfLong().
			Summary
	}
	if strings.Contains(actual.Error(), fragment) {
		return nil
	}
	return comparison.NewSummaryBuilder(cmpName).
		Actual(actual.Error()).WarnIfLong().
		AddFindingf("Expected (substring)", "%q", fragment).WarnIfLong().
		Summary
}
