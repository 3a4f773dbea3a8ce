// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for repdiff's user
// configuration. The configuration is an optional YAML document located in
// the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/repdiff.yaml or $HOME/.config/repdiff.yaml
//   - macOS: $HOME/Library/Application Support/repdiff.yaml
//   - Windows: %APPDATA%/repdiff.yaml
//
// REPDIFF_CFG_FILE overrides the location. A missing file is not an error;
// every getter accepts a default.
//
// Example:
//
//	encoding: cp866
//	separator: "'"
//	working_folder: /srv/reports
//	compare:
//	  components: true
//	  loads: true
//	  weekly:
//	    - --loads
//	    - --save weekly.csv
package config
