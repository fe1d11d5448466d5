// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package editor drives the custom policy flow: write a skeleton policy file,
// optionally open it in the operator's editor, and block until the file on
// disk is a valid policy document.
package editor
