// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWorkDir(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) (path string, want string)
		errIs error
	}{
		{
			name: "blank is cwd",
			setup: func(t *testing.T) (string, string) {
				dir := chdirTemp(t)
				return "", dir
			},
		},
		{
			name: "absolute",
			setup: func(t *testing.T) (string, string) {
				dir := t.TempDir()
				return dir, dir
			},
		},
		{
			name: "relative",
			setup: func(t *testing.T) (string, string) {
				dir := chdirTemp(t)
				require.NoError(t, os.Mkdir(filepath.Join(dir, "out"), 0o755))
				return "out", filepath.Join(dir, "out")
			},
		},
		{
			name: "home",
			setup: func(t *testing.T) (string, string) {
				home := t.TempDir()
				t.Setenv("HOME", home)
				require.NoError(t, os.Mkdir(filepath.Join(home, "creds"), 0o755))
				return "~/creds", filepath.Join(home, "creds")
			},
		},
		{
			name: "missing",
			setup: func(t *testing.T) (string, string) {
				return filepath.Join(t.TempDir(), "nope"), ""
			},
			errIs: os.ErrNotExist,
		},
		{
			name: "file not dir",
			setup: func(t *testing.T) (string, string) {
				f := filepath.Join(t.TempDir(), "file")
				require.NoError(t, os.WriteFile(f, nil, 0o644))
				return f, ""
			},
			errIs: os.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, want := tt.setup(t)

			got, err := ResolveWorkDir(path)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)

			// Temp dirs may sit behind a symlink (macOS /var).
			wantEval, _ := filepath.EvalSymlinks(want)
			gotEval, _ := filepath.EvalSymlinks(got)
			assert.Equal(t, wantEval, gotEval)
		})
	}
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(old)
	})
	return dir
}
