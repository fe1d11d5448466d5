// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package provision creates the bucket, its CORS and public read settings,
// the IAM user, its policy and its access key. Every operation is a single
// AWS call (public read is two) with no retry, existence check or rollback.
// Errors are wrapped with %w so the AWS error stays reachable through
// errors.As.
package provision
