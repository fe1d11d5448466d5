// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the bucketctl root command. Its action collects
// the operator's answers, provisions the AWS resources in order and writes
// the credentials file.
package command
