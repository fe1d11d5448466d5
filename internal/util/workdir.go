// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveWorkDir returns the absolute directory the policy and credentials
// files are written to. A blank path means the current directory, a leading
// ~/ is expanded to the home directory and relative paths are taken from the
// current directory. It returns an error if the entry does not exist or is
// not a directory.
func ResolveWorkDir(path string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	var dir string
	switch {
	case path == "":
		dir = cwd
	case path == "~" || strings.HasPrefix(path, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, strings.TrimPrefix(path, "~"))
	case filepath.IsAbs(path):
		dir = path
	default:
		dir = filepath.Join(cwd, path)
	}

	if r, err := os.Stat(dir); err != nil {
		return "", err
	} else if !r.IsDir() {
		return "", os.ErrInvalid
	}

	return filepath.Clean(dir), nil
}
