// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/tfctl/bucketctl/internal/config"
	"github.com/tfctl/bucketctl/internal/meta"
)

// settings are the config file values the run consults.
type settings struct {
	AppURL       string
	Editor       string
	LaunchEditor bool
	Color        bool
}

// loadSettings reads settings from the global config. Missing keys take
// their defaults; keys holding the wrong type are treated as missing.
func loadSettings() settings {
	var s settings
	s.AppURL, _ = config.GetString("app_url", "")
	s.Editor, _ = config.GetString("editor", "")

	var err error
	if s.LaunchEditor, err = config.GetBool("launch_editor", true); err != nil {
		s.LaunchEditor = true
	}
	s.Color, _ = config.GetBool("color", false)
	return s
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
