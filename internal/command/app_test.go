// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/bucketctl/internal/config"
	"github.com/tfctl/bucketctl/internal/meta"
	"github.com/tfctl/bucketctl/internal/version"
)

func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("BUCKETCTL_CFG_FILE", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("AWS_ACCOUNT_ID", "")
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })
}

func TestInitApp(t *testing.T) {
	isolate(t)
	t.Setenv("AWS_DEFAULT_REGION", "us-east-2")

	app, err := InitApp(context.Background(), []string{"bucketctl"})
	require.NoError(t, err)
	assert.Equal(t, "bucketctl", app.Name)
	assert.Equal(t, version.Version, app.Version)
	assert.Empty(t, app.Commands)
	assert.Empty(t, app.Flags)

	m := GetMeta(app)
	assert.Equal(t, "us-east-2", m.Env.DefaultRegion)
	assert.NotEmpty(t, m.WorkDir)
	assert.Equal(t, []string{"bucketctl"}, m.Args)
}

func TestInitAppBadConfigFile(t *testing.T) {
	isolate(t)
	t.Setenv("BUCKETCTL_CFG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := InitApp(context.Background(), []string{"bucketctl"})
	assert.Error(t, err)
}

func TestInitAppWorkdirFromConfig(t *testing.T) {
	isolate(t)
	t.Setenv("BUCKETCTL_CFG_FILE", filepath.Join("..", "config", "testdata", "simple.yaml"))

	app, err := InitApp(context.Background(), []string{"bucketctl"})
	require.NoError(t, err)

	wantEval, _ := filepath.EvalSymlinks("/tmp")
	gotEval, _ := filepath.EvalSymlinks(GetMeta(app).WorkDir)
	assert.Equal(t, wantEval, gotEval)

	s := loadSettings()
	assert.Equal(t, "https://app.example.com", s.AppURL)
	assert.False(t, s.LaunchEditor)
}

func TestRootActionChecks(t *testing.T) {
	isolate(t)

	app, err := InitApp(context.Background(), []string{"bucketctl"})
	require.NoError(t, err)
	err = app.Run(context.Background(), []string{"bucketctl"})
	assert.ErrorIs(t, err, config.ErrMissingCredentials)

	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	orig := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	app, err = InitApp(context.Background(), []string{"bucketctl"})
	require.NoError(t, err)
	err = app.Run(context.Background(), []string{"bucketctl"})
	assert.ErrorIs(t, err, ErrNotTerminal)
}

func TestVersionFlag(t *testing.T) {
	isolate(t)

	app, err := InitApp(context.Background(), []string{"bucketctl", "--version"})
	require.NoError(t, err)

	var buf bytes.Buffer
	app.Writer = &buf
	require.NoError(t, app.Run(context.Background(), []string{"bucketctl", "--version"}))
	assert.Contains(t, buf.String(), version.Version)
}

func TestGetMeta(t *testing.T) {
	assert.Equal(t, meta.Meta{}, GetMeta(nil))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{}))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{Metadata: map[string]any{"meta": "nope"}}))

	m := meta.Meta{WorkDir: "/w"}
	assert.Equal(t, m, GetMeta(&cli.Command{Metadata: map[string]any{"meta": m}}))
}
