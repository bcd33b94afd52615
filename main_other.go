// Copyright © 2026 The Gomon Project.

//go:build !linux

package main

import (
	"github.com/shirou/gopsutil/v3/process"
	"github.com/zosmac/gocore"
)

// harvest gets the records of the active processes.
func harvest() ([]record, error) {
	ps, err := process.Processes()
	if err != nil {
		return nil, gocore.Error("Processes", err)
	}

	records := make([]record, 0, len(ps))
	for _, p := range ps {
		name, err := p.Name()
		if err != nil || name == "" {
			continue // process exited or is inaccessible
		}
		ppid, err := p.Ppid()
		if err != nil {
			continue
		}
		records = append(records, record{Name: name, Pid: Pid(p.Pid), Ppid: Pid(ppid)})
	}

	return records, nil
}
