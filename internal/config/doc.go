// Package config handles loading and parsing react-repl's TOML
// configuration file.
//
// # Overview
//
// The tool keeps one small config at ~/.config/react-repl/config.toml:
//
//	root_id = 1        # which application root the inspector opens on
//	tick_seconds = 1   # demo producer commit cadence
//
// # Loading Behavior
//
// Load resolves the path (expanding a leading ~), parses the file, and
// applies defaults for anything missing or non-positive. A missing file is
// not an error (first runs get the defaults), but an unreadable or
// malformed file is, wrapped as "open config:", "read config:", or
// "parse config:" so the failure site is obvious at the top level.
package config
