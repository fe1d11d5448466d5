// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package prompttest provides a scripted prompt.Prompter for tests.
package prompttest

import (
	"context"
	"errors"

	"github.com/tfctl/bucketctl/internal/prompt"
)

// ErrExhausted is returned once a Scripted prompter runs out of answers.
var ErrExhausted = errors.New("prompttest: script exhausted")

// Scripted replays canned answers in order and records every question it was
// asked.
type Scripted struct {
	Inputs   []string
	Confirms []bool

	// Hook, when set, runs before each Input answer is returned.
	Hook func(q prompt.Question)

	Asked     []prompt.Question
	Confirmed []string
}

// Input implements prompt.Prompter.
func (s *Scripted) Input(_ context.Context, q prompt.Question) (string, error) {
	s.Asked = append(s.Asked, q)
	if len(s.Inputs) == 0 {
		return "", ErrExhausted
	}
	if s.Hook != nil {
		s.Hook(q)
	}
	answer := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	return answer, nil
}

// Confirm implements prompt.Prompter.
func (s *Scripted) Confirm(_ context.Context, message string, _ bool) (bool, error) {
	s.Confirmed = append(s.Confirmed, message)
	if len(s.Confirms) == 0 {
		return false, ErrExhausted
	}
	answer := s.Confirms[0]
	s.Confirms = s.Confirms[1:]
	return answer, nil
}
