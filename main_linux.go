// Copyright © 2026 The Gomon Project.

package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/zosmac/gocore"
	"golang.org/x/sys/unix"
)

// procRoot is the mount point of the process information filesystem.
var procRoot = "/proc"

// harvest gets the records of the active processes.
func harvest() ([]record, error) {
	return harvestDir(procRoot)
}

// harvestDir reads the status file of each process directory under root. Only the
// listing of root itself can fail; a process that exits during the scan is skipped.
func harvestDir(root string) ([]record, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, gocore.Error("ReadDir", err)
	}

	records := make([]record, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := strconv.Atoi(entry.Name()); err != nil {
			continue // not a process directory
		}

		rec, ok, err := readStatus(filepath.Join(root, entry.Name(), "status"))
		if err != nil {
			if !vanished(err) {
				gocore.Error("status", err).Warn()
			}
			continue
		}
		if ok {
			records = append(records, rec)
		}
	}

	return records, nil
}

// readStatus opens, parses, and closes one status file.
func readStatus(path string) (record, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return record{}, false, err
	}
	defer f.Close()

	return parseStatus(f)
}

// vanished reports whether an error results from the process exiting after its
// directory was listed.
func vanished(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, unix.ENOENT) ||
		errors.Is(err, unix.ESRCH)
}
