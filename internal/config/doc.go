// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides the environment-sourced AWS identity and the
// optional bucketctl.yaml user configuration. The YAML file is looked up at
// $BUCKETCTL_CFG_FILE, falling back to bucketctl.yaml in os.UserConfigDir:
//   - Linux: $XDG_CONFIG_HOME/bucketctl.yaml or $HOME/.config/bucketctl.yaml
//   - macOS: $HOME/Library/Application Support/bucketctl.yaml
//   - Windows: %AppData%/bucketctl.yaml
package config
