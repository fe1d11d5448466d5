// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package envfile writes the new access key to a dotenv file named after the
// bucket.
package envfile
