// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig sets BUCKETCTL_CFG_FILE to point to a test config file and
// resets the global Config.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("BUCKETCTL_CFG_FILE", absPath)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "https://app.example.com", cfg.Data["app_url"])
				assert.Equal(t, false, cfg.Data["launch_editor"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				defaults, ok := cfg.Data["defaults"].(map[string]interface{})
				assert.True(t, ok, "defaults should be a map")
				assert.Equal(t, "https://nested.example.com", defaults["app_url"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source, "should have a source path")
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			cfg, err := Load()
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("BUCKETCTL_CFG_FILE", "/nonexistent/path/bucketctl.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_CfgFileIsDirectory(t *testing.T) {
	t.Setenv("BUCKETCTL_CFG_FILE", "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{
			name:     "simple string value",
			testFile: "simple.yaml",
			key:      "app_url",
			want:     "https://app.example.com",
		},
		{
			name:     "nested string value",
			testFile: "nested.yaml",
			key:      "editor.command",
			want:     "code --wait",
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []string{"default-value"},
			want:         "default-value",
		},
		{
			name:     "missing key without default",
			testFile: "simple.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-string value",
			testFile: "mixed-types.yaml",
			key:      "version",
			wantErr:  true,
		},
		{
			name:     "traverse non-map value",
			testFile: "mixed-types.yaml",
			key:      "version.something",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			got, err := GetString(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetBool(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []bool
		want         bool
		wantErr      bool
	}{
		{
			name:     "top level bool",
			testFile: "simple.yaml",
			key:      "launch_editor",
			want:     false,
		},
		{
			name:     "nested bool",
			testFile: "nested.yaml",
			key:      "defaults.launch_editor",
			want:     true,
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []bool{true},
			want:         true,
		},
		{
			name:     "string is not a bool",
			testFile: "mixed-types.yaml",
			key:      "launch_editor",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			got, err := GetBool(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestGetString_LazyLoad verifies getters reload when Config is empty.
func TestGetString_LazyLoad(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	val, err := GetString("workdir")
	assert.NoError(t, err)
	assert.Equal(t, "/tmp", val)
}
