// Copyright © 2026 The Gomon Project.

package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// statusFields accumulates the fields of a process status file that identify the process.
type statusFields struct {
	name    string
	pid     Pid
	ppid    Pid
	hasName bool
	hasPid  bool
	hasPpid bool
}

// set records the value of a status key, last occurrence wins.
func (sf *statusFields) set(key, value string) {
	switch key {
	case "Name":
		sf.name, sf.hasName = value, true
	case "Pid":
		sf.pid, sf.hasPid = parsePid(value)
	case "PPid":
		sf.ppid, sf.hasPpid = parsePid(value)
	}
}

// record resolves the fields to a record if all were found.
func (sf statusFields) record() (record, bool) {
	if !sf.hasName || !sf.hasPid || !sf.hasPpid {
		return record{}, false
	}
	return record{Name: sf.name, Pid: sf.pid, Ppid: sf.ppid}, true
}

func parsePid(s string) (Pid, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return Pid(n), true
}

// parseStatus scans the "Key:\tvalue" lines of a process status file for the
// process' name, pid, and parent pid.
func parseStatus(r io.Reader) (record, bool, error) {
	var sf statusFields
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		sf.set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	if err := sc.Err(); err != nil {
		return record{}, false, err
	}

	rec, ok := sf.record()
	return rec, ok, nil
}
