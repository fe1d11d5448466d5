// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package prompt collects the operator's answers before anything is
// provisioned. Text answers are validated as soon as they are entered and
// re-asked with the validation message shown inline until they pass.
package prompt
