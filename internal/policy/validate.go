// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is reported when the input is not a JSON object at all.
// Per-field problems are only reported for well-formed objects.
var ErrInvalidJSON = errors.New("invalid JSON object")

// SchemaError lists every structural problem found in a document.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return strings.Join(e.Problems, ", ")
}

// Validate checks data against the policy document schema: a JSON object
// whose Version is "2012-10-17" and whose Statement is a non-empty array of
// objects, each with a string Effect and non-empty string arrays for Action
// and Resource. Unknown keys are ignored.
func Validate(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return ErrInvalidJSON
	}

	var problems []string

	version := root.Get("Version")
	switch {
	case !version.Exists():
		problems = append(problems, "Version is required")
	case version.Type != gjson.String || version.Str != Version:
		problems = append(problems, fmt.Sprintf("Version must be %q", Version))
	}

	statement := root.Get("Statement")
	switch {
	case !statement.Exists():
		problems = append(problems, "Statement is required")
	case !statement.IsArray():
		problems = append(problems, "Statement must be an array")
	case len(statement.Array()) == 0:
		problems = append(problems, "Statement must contain at least one entry")
	default:
		for i, s := range statement.Array() {
			problems = append(problems, validateStatement(fmt.Sprintf("Statement[%d]", i), s)...)
		}
	}

	if len(problems) > 0 {
		return &SchemaError{Problems: problems}
	}
	return nil
}

func validateStatement(path string, s gjson.Result) []string {
	if !s.IsObject() {
		return []string{path + " must be an object"}
	}

	var problems []string

	effect := s.Get("Effect")
	switch {
	case !effect.Exists():
		problems = append(problems, path+".Effect is required")
	case effect.Type != gjson.String:
		problems = append(problems, path+".Effect must be a string")
	}

	problems = append(problems, validateStringList(path+".Action", s.Get("Action"))...)
	problems = append(problems, validateStringList(path+".Resource", s.Get("Resource"))...)
	return problems
}

func validateStringList(path string, r gjson.Result) []string {
	switch {
	case !r.Exists():
		return []string{path + " is required"}
	case !r.IsArray():
		return []string{path + " must be an array of strings"}
	}

	items := r.Array()
	if len(items) == 0 {
		return []string{path + " must contain at least one entry"}
	}

	var problems []string
	for i, item := range items {
		if item.Type != gjson.String {
			problems = append(problems, fmt.Sprintf("%s[%d] must be a string", path, i))
		}
	}
	return problems
}
