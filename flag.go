// Copyright © 2026 The Gomon Project.

package main

import (
	"github.com/zosmac/gocore"
)

// init initializes the command line flags.
func init() {
	gocore.Flags.CommandDescription = `The gopstree command reads the status of each process under /proc and produces a tree listing of the processes running currently on the system, by parent pid.`
}
