// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"errors"
	"fmt"
	"regexp"
)

// DefaultAppURL is used when the operator leaves the app URL blank.
const DefaultAppURL = "http://localhost:3000"

const (
	minNameLength = 3
	maxNameLength = 63
)

var (
	bucketCharset = regexp.MustCompile(`^[a-z0-9.-]+$`)
	iamCharset    = regexp.MustCompile(`^[a-zA-Z0-9+=,.@_-]+$`)
	appURLPattern = regexp.MustCompile(`^https?://.+$`)
)

// ValidatorFunc checks one answer and returns guidance for the operator when
// it is not acceptable.
type ValidatorFunc func(string) error

// Validators runs each validator in order and returns the first failure.
func Validators(validators ...ValidatorFunc) ValidatorFunc {
	return func(value string) error {
		for _, v := range validators {
			if err := v(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// Length requires between min and max characters inclusive.
func Length(min, max int) ValidatorFunc {
	return func(value string) error {
		if n := len(value); n < min || n > max {
			return fmt.Errorf("must be between %d and %d characters", min, max)
		}
		return nil
	}
}

// Matches requires value to match re; msg is returned otherwise.
func Matches(re *regexp.Regexp, msg string) ValidatorFunc {
	return func(value string) error {
		if !re.MatchString(value) {
			return errors.New(msg)
		}
		return nil
	}
}

// ValidateBucketName accepts 3 to 63 lowercase letters, digits, dots and
// hyphens.
var ValidateBucketName = Validators(
	Length(minNameLength, maxNameLength),
	Matches(bucketCharset, "may only contain lowercase letters, numbers, dots and hyphens"),
)

// ValidateIAMName accepts 3 to 63 characters from the IAM name alphabet. It
// applies to user names and policy names.
var ValidateIAMName = Validators(
	Length(minNameLength, maxNameLength),
	Matches(iamCharset, "may only contain letters, numbers and +=,.@_-"),
)

// ValidateAppURL accepts http and https URLs with something after the scheme.
var ValidateAppURL = Matches(appURLPattern, "must start with http:// or https://")
