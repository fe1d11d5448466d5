// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Mode is the permission the credentials file is written with.
const Mode os.FileMode = 0o600

// Credentials are the values written to the file, one per line.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
}

// FileName returns the credentials file name for bucket.
func FileName(bucket string) string {
	return ".env." + bucket
}

// Lines renders c as KEY=value lines in their fixed order. Values are written
// verbatim.
func (c Credentials) Lines() []string {
	return []string{
		"AWS_ACCESS_KEY_ID=" + c.AccessKeyID,
		"AWS_SECRET_ACCESS_KEY=" + c.SecretAccessKey,
		"AWS_BUCKET_NAME=" + c.BucketName,
		"AWS_REGION=" + c.Region,
	}
}

// Write writes c to .env.<bucket> in dir, replacing any existing file, and
// returns the path written.
func Write(dir string, c Credentials) (string, error) {
	if c.BucketName == "" {
		return "", fmt.Errorf("credentials file: bucket name is required")
	}

	path := filepath.Join(dir, FileName(c.BucketName))
	data := strings.Join(c.Lines(), "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), Mode); err != nil {
		return "", fmt.Errorf("failed to write credentials file: %w", err)
	}
	// WriteFile keeps the mode of a file that already exists.
	if err := os.Chmod(path, Mode); err != nil {
		return "", fmt.Errorf("failed to set credentials file mode: %w", err)
	}
	return path, nil
}
