// Copyright © 2026 The Gomon Project.

package main

/*
Package gopstree defines the gopstree command that prints a tree listing of the processes on
the system. The tree is built from each process' parent pid, as reported by the process status
files under /proc, and is rooted at a synthetic "/" node (pid 0) above init. Each process in the
listing shows its command name and pid.

Processes that exit while the scan runs are simply left out, as are any whose parent could not
be found in the snapshot.
*/
