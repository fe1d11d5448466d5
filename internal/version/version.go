// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other bucketctl packages to avoid import cycles.

package version

import "runtime/debug"

// Version is the module version, "dev" for local builds.
var Version = fromBuildInfo(debug.ReadBuildInfo)

// fromBuildInfo derives the version string. Local builds carry "(devel)" as
// the module version; they report "dev" plus the short VCS revision when the
// toolchain stamped one.
func fromBuildInfo(read func() (*debug.BuildInfo, bool)) string {
	info, ok := read()
	if !ok {
		return "dev"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return "dev"
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if dirty {
		rev += "-dirty"
	}
	return "dev-" + rev
}
