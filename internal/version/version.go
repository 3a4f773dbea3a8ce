// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other repdiff packages to avoid import cycles.

package version

import "runtime/debug"

// buildVersion is set with -ldflags "-X github.com/tfctl/repdiff/internal/version.buildVersion=v1.2.3".
var buildVersion string

var Version = func() string {
	if buildVersion != "" {
		return buildVersion
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}()
