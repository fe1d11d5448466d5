// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/tfctl/bucketctl/internal/log"
)

// ErrAborted is returned when the operator cancels a prompt.
var ErrAborted = errors.New("aborted by operator")

// Question describes one free-text prompt. Hint carries the validation
// message from the previous attempt, if any.
type Question struct {
	Message  string
	Default  string
	Validate ValidatorFunc
	Hint     string
}

// Prompter asks the operator for input.
type Prompter interface {
	Input(ctx context.Context, q Question) (string, error)
	Confirm(ctx context.Context, message string, def bool) (bool, error)
}

// Ask keeps asking q until the answer passes q.Validate. A blank answer is
// replaced by q.Default before validation. Only a Prompter error ends the
// loop early.
func Ask(ctx context.Context, p Prompter, q Question) (string, error) {
	for {
		answer, err := p.Input(ctx, q)
		if err != nil {
			return "", err
		}

		answer = strings.TrimSpace(answer)
		if answer == "" {
			answer = q.Default
		}

		if q.Validate == nil {
			return answer, nil
		}
		if err := q.Validate(answer); err != nil {
			log.Debugf("rejected answer: question=%q err=%v", q.Message, err)
			q.Hint = err.Error()
			continue
		}
		return answer, nil
	}
}
