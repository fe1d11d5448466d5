// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/bucketctl/internal/config"
	"github.com/tfctl/bucketctl/internal/editor"
	"github.com/tfctl/bucketctl/internal/log"
	"github.com/tfctl/bucketctl/internal/meta"
	"github.com/tfctl/bucketctl/internal/prompt"
	"github.com/tfctl/bucketctl/internal/provision"
	"github.com/tfctl/bucketctl/internal/util"
	"github.com/tfctl/bucketctl/internal/version"
)

// ErrNotTerminal is returned when stdin cannot be prompted on.
var ErrNotTerminal = errors.New("bucketctl is interactive and stdin is not a terminal")

// isTerminal reports whether stdin is a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// InitApp builds the root command. Config file and working directory
// problems are reported here; AWS credentials are checked when the command
// runs so --help and --version work without them.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	cfg, err := config.Load()
	if err != nil {
		if os.Getenv("BUCKETCTL_CFG_FILE") != "" {
			return nil, err
		}
		log.Debugf("no config file: err=%v", err)
	}

	workSpec, _ := config.GetString("workdir", "")
	wd, err := util.ResolveWorkDir(workSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workdir (%s): %w", workSpec, err)
	}

	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		Env:         config.LoadEnv(),
		WorkDir:     wd,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:    "bucketctl",
		Usage:   "Provision an S3 bucket and a scoped IAM user for an app",
		Version: version.Version,
		Description: "Asks for a bucket name, IAM username, app URL and region, then creates\n" +
			"the bucket with CORS for the app, an IAM user with a bucket policy and an\n" +
			"access key, and writes the key to .env.<bucket>.\n\n" +
			"Credentials come from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.\n" +
			"AWS_DEFAULT_REGION is used when no region is given and AWS_ACCOUNT_ID\n" +
			"is required for the default policy.",
		Metadata: map[string]any{"meta": m},
		Action:   rootCommandAction,
	}

	return app, nil
}

func rootCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("workdir=%s region=%s account=%t", m.WorkDir, m.Env.DefaultRegion, m.Env.AccountID != "")

	if err := m.Env.Validate(); err != nil {
		return err
	}
	if !isTerminal() {
		return ErrNotTerminal
	}

	s := loadSettings()
	command := ""
	if s.LaunchEditor {
		command = editor.ResolveCommand(s.Editor)
	}

	r := newRunner(m, s, deps{
		prompter: prompt.NewTeaPrompter(),
		clients:  provision.NewClientFactory(m.Env),
		editorOpts: []editor.Option{
			editor.WithCommand(command),
		},
		out: os.Stdout,
	})
	return r.Run(ctx)
}
