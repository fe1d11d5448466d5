// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kballard/go-shellquote"

	"github.com/tfctl/bucketctl/internal/log"
	"github.com/tfctl/bucketctl/internal/policy"
	"github.com/tfctl/bucketctl/internal/prompt"
)

// FileName is the policy file written into the working directory. It is left
// in place after the run.
const FileName = "custom-bucket-policy.json"

// LaunchFunc runs argv in the foreground and returns when it exits.
type LaunchFunc func(ctx context.Context, argv []string) error

// Editor walks the operator through authoring a custom bucket policy.
type Editor struct {
	prompter prompt.Prompter
	dir      string
	command  string
	launch   LaunchFunc
}

// Option configures an Editor.
type Option func(*Editor)

// WithCommand sets the editor command line launched on the policy file. A
// blank command means the operator opens the file themselves.
func WithCommand(command string) Option {
	return func(e *Editor) {
		e.command = command
	}
}

// WithLauncher replaces the process launcher.
func WithLauncher(fn LaunchFunc) Option {
	return func(e *Editor) {
		e.launch = fn
	}
}

// New returns an Editor that writes its file into dir.
func New(p prompt.Prompter, dir string, opts ...Option) *Editor {
	e := &Editor{prompter: p, dir: dir, launch: runForeground}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Path is where the policy file is written.
func (e *Editor) Path() string {
	return filepath.Join(e.dir, FileName)
}

// Edit writes the skeleton policy for bucket, optionally opens it in the
// configured editor and then waits until the operator confirms a file that
// parses and passes the schema. It returns the path of the accepted file.
func (e *Editor) Edit(ctx context.Context, bucket string) (string, error) {
	path := e.Path()
	skeleton := policy.Skeleton(bucket)
	if err := policy.WriteFile(path, skeleton); err != nil {
		return "", err
	}
	log.Infof("wrote policy skeleton to %s", path)

	if e.command != "" {
		e.openEditor(ctx, path)
	}

	var accepted []byte
	_, err := prompt.Ask(ctx, e.prompter, prompt.Question{
		Message: fmt.Sprintf("Edit %s in your editor, then press enter when done", path),
		Validate: func(string) error {
			data, err := policy.ReadFile(path)
			if err != nil {
				return err
			}
			accepted = data
			return nil
		},
	})
	if err != nil {
		return "", fmt.Errorf("policy file: %w", err)
	}

	if diff, err := Diff([]byte(skeleton.String()), accepted); err != nil {
		log.Debugf("failed to diff policy edits: %v", err)
	} else if diff != "" {
		log.Debugf("policy edits:\n%s", diff)
	}

	return path, nil
}

// openEditor runs the editor on path. A failure is logged and the operator
// falls back to editing the file by hand.
func (e *Editor) openEditor(ctx context.Context, path string) {
	argv, err := shellquote.Split(e.command)
	if err != nil || len(argv) == 0 {
		log.Warnf("cannot parse editor command %q: %v", e.command, err)
		return
	}

	argv = append(argv, path)
	log.Debugf("launching editor: %v", argv)
	if err := e.launch(ctx, argv); err != nil {
		log.Warnf("editor %s exited with error: %v", argv[0], err)
	}
}

func runForeground(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// ResolveCommand picks the editor command line. The configured value wins,
// then VISUAL, then EDITOR.
func ResolveCommand(configured string) string {
	if configured != "" {
		return configured
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	return os.Getenv("EDITOR")
}
