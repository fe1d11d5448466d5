// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"encoding/json"
	"fmt"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Diff renders the changes from before to after as an ASCII JSON diff. It
// returns "" when the documents are equal.
func Diff(before, after []byte) (string, error) {
	delta, err := gojsondiff.New().Compare(before, after)
	if err != nil {
		return "", fmt.Errorf("failed to compare policies: %w", err)
	}
	if !delta.Modified() {
		return "", nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(before, &jdoc); err != nil {
		return "", fmt.Errorf("failed to unmarshal policy: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       false,
	}
	out, err := formatter.NewAsciiFormatter(jdoc, config).Format(delta)
	if err != nil {
		return "", fmt.Errorf("failed to format diff: %w", err)
	}
	return out, nil
}
