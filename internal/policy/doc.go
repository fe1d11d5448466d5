// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package policy builds the IAM and bucket policy documents bucketctl
// registers and validates operator-authored documents against the policy
// schema.
package policy
