// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"context"
	"fmt"
)

// Answers holds everything the operator chose before provisioning starts.
type Answers struct {
	BucketName      string
	Username        string
	AppURL          string
	AllowPublicRead bool
	Region          string
	DefaultPolicy   bool
}

// Defaults seeds blank answers.
type Defaults struct {
	AppURL string
	Region string
}

// Collector asks the fixed sequence of questions.
type Collector struct {
	prompter Prompter
	defaults Defaults
}

// NewCollector returns a Collector. A blank d.AppURL falls back to
// DefaultAppURL.
func NewCollector(p Prompter, d Defaults) *Collector {
	if d.AppURL == "" {
		d.AppURL = DefaultAppURL
	}
	return &Collector{prompter: p, defaults: d}
}

// Collect runs the questions in order. Each text answer is re-asked until it
// validates, so either every field is filled in or an error is returned.
func (c *Collector) Collect(ctx context.Context) (Answers, error) {
	var a Answers
	var err error

	if a.BucketName, err = Ask(ctx, c.prompter, Question{
		Message:  "Bucket name",
		Validate: ValidateBucketName,
	}); err != nil {
		return Answers{}, fmt.Errorf("bucket name: %w", err)
	}

	if a.Username, err = Ask(ctx, c.prompter, Question{
		Message:  "IAM username",
		Validate: ValidateIAMName,
	}); err != nil {
		return Answers{}, fmt.Errorf("username: %w", err)
	}

	if a.AppURL, err = Ask(ctx, c.prompter, Question{
		Message:  "App URL allowed by CORS",
		Default:  c.defaults.AppURL,
		Validate: ValidateAppURL,
	}); err != nil {
		return Answers{}, fmt.Errorf("app URL: %w", err)
	}

	if a.AllowPublicRead, err = c.prompter.Confirm(ctx, "Allow public read of <bucket>/public/*?", false); err != nil {
		return Answers{}, fmt.Errorf("public read: %w", err)
	}

	if a.Region, err = Ask(ctx, c.prompter, Question{
		Message: "AWS region",
		Default: c.defaults.Region,
	}); err != nil {
		return Answers{}, fmt.Errorf("region: %w", err)
	}

	if a.DefaultPolicy, err = c.prompter.Confirm(ctx, "Use the default bucket policy?", true); err != nil {
		return Answers{}, fmt.Errorf("default policy: %w", err)
	}

	return a, nil
}

// PolicyName asks for the name of a custom IAM policy.
func (c *Collector) PolicyName(ctx context.Context) (string, error) {
	name, err := Ask(ctx, c.prompter, Question{
		Message:  "Custom policy name",
		Validate: ValidateIAMName,
	})
	if err != nil {
		return "", fmt.Errorf("policy name: %w", err)
	}
	return name, nil
}
