// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/tfctl/bucketctl/internal/config"
)

// Meta contains runtime metadata handed to the root command. It carries CLI
// arguments, loaded configuration, the AWS environment, context, the
// resolved working directory and the starting directory.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	Env         config.Env
	WorkDir     string
	StartingDir string
}
