// Package main hosts the lerobotviz CLI entrypoint and command graph.
//
// The Cobra command tree resolves LeRobot dataset metadata from the artifact
// host: it fetches meta/info.json, checks the codebase version against the
// supported generations, and prints artifact URLs. Configuration loading,
// logger construction, and resolver wiring live in commandContext so the
// subcommands stay declarative.
//
// Add behaviour to internal/dataset first and surface it here through a
// dedicated command or flag.
package main
