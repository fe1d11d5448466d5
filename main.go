// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tfctl/bucketctl/internal/command"
	"github.com/tfctl/bucketctl/internal/log"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// initAndRunApp initializes the app and runs it, returning the exit code.
// Errors are printed to stderr as is.
func initAndRunApp(args []string, stderr io.Writer) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	return initAndRunApp(args, os.Stderr)
}
