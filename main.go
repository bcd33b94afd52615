// Copyright © 2026 The Gomon Project.

package main

import (
	"context"
	"os"
	"strconv"

	"github.com/zosmac/gocore"
)

type (
	// Pid is the type for the process identifier.
	Pid int

	// record identifies one observed process.
	record struct {
		Name string
		Pid
		Ppid Pid
	}
)

// String renders the pid.
func (pid Pid) String() string {
	return strconv.Itoa(int(pid))
}

// HasParent reports whether the process has a parent process.
func (r record) HasParent() bool {
	return r.Ppid > 0
}

// Parent returns the parent's pid.
func (r record) Parent() Pid {
	return r.Ppid
}

// main
func main() {
	var err error
	gocore.Main(func(ctx context.Context) error {
		err = Main(ctx)
		return err
	})
	if err != nil {
		os.Exit(1)
	}
}

// Main harvests the process records, builds the process tree, and displays it.
func Main(ctx context.Context) error {
	records, err := harvest()
	if err != nil {
		return err
	}

	return buildTree(records).display(os.Stdout)
}
