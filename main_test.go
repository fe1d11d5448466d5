// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitAndRunAppExitCodes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	tests := []struct {
		name    string
		cfgFile string
		args    []string
		want    int
		stderr  string
	}{
		{
			name:    "init failure",
			cfgFile: filepath.Join(home, "missing.yaml"),
			args:    []string{"bucketctl"},
			want:    1,
			stderr:  "config file not found",
		},
		{
			name:   "run failure",
			args:   []string{"bucketctl"},
			want:   2,
			stderr: "AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must both be set",
		},
		{
			name: "help",
			args: []string{"bucketctl", "--help"},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BUCKETCTL_CFG_FILE", tt.cfgFile)

			var stderr bytes.Buffer
			got := initAndRunApp(tt.args, &stderr)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, stderr.String(), tt.stderr)
		})
	}
}
