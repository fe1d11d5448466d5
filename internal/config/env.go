// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
)

// Environment variables consulted for AWS access. They are read once at
// startup and never prompted for.
const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvDefaultRegion   = "AWS_DEFAULT_REGION"
	EnvAccountID       = "AWS_ACCOUNT_ID"
)

// ErrMissingCredentials is returned by Env.Validate when either half of the
// access key pair is absent.
var ErrMissingCredentials = errors.New(EnvAccessKeyID + " and " + EnvSecretAccessKey + " must both be set")

// Env is the AWS identity the tool operates as. The account ID is taken as
// given and is never looked up through an API.
type Env struct {
	AccessKeyID     string
	SecretAccessKey string
	DefaultRegion   string
	AccountID       string
}

// LoadEnv reads Env from the process environment.
func LoadEnv() Env {
	return Env{
		AccessKeyID:     os.Getenv(EnvAccessKeyID),
		SecretAccessKey: os.Getenv(EnvSecretAccessKey),
		DefaultRegion:   os.Getenv(EnvDefaultRegion),
		AccountID:       os.Getenv(EnvAccountID),
	}
}

// Validate checks that credentials are present. Region and account ID are
// only needed by specific steps and are checked there.
func (e Env) Validate() error {
	if e.AccessKeyID == "" || e.SecretAccessKey == "" {
		return ErrMissingCredentials
	}
	return nil
}
