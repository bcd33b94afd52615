// Copyright © 2026 The Gomon Project.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/zosmac/gocore"
)

type (
	// table indexes the harvested records by pid.
	table = gocore.Table[Pid, record]

	// node is a process in the tree, owning its children.
	node struct {
		record
		children []*node
	}

	// processTree organizes the processes into a hierarchy under a synthetic root.
	processTree struct {
		root *node
	}
)

// rootRecord is the synthetic record for the node above init.
var rootRecord = record{Name: "/", Pid: 0, Ppid: -1}

// indent is the number of spaces per level of the tree listing.
const indent = 2

// buildTree builds the process tree. A record whose ancestry does not reach the
// root, because a parent exited during the scan, is left out.
func buildTree(records []record) processTree {
	tb := make(table, len(records))
	for _, r := range records {
		tb[r.Pid] = r // last seen wins
	}

	children := map[Pid][]Pid{}
	indexed := make(map[Pid]struct{}, len(tb))
	for _, r := range records {
		if _, ok := indexed[r.Pid]; ok || tb[r.Pid] != r {
			continue // superseded by a later record for the same pid
		}
		indexed[r.Pid] = struct{}{}
		children[r.Ppid] = append(children[r.Ppid], r.Pid)
	}

	tr := processTree{root: &node{record: rootRecord}}
	visited := map[Pid]struct{}{rootRecord.Pid: {}}
	tr.root.populate(tb, children, visited)
	return tr
}

// populate adds the children of the node, and recursively their children.
func (n *node) populate(tb table, children map[Pid][]Pid, visited map[Pid]struct{}) {
	for _, pid := range children[n.Pid] {
		if _, ok := visited[pid]; ok {
			continue // guard against a cyclic snapshot
		}
		visited[pid] = struct{}{}
		child := &node{record: tb[pid]}
		child.populate(tb, children, visited)
		n.children = append(n.children, child)
	}
}

// display writes the tree listing, one process per line, in depth first order.
func (tr processTree) display(w io.Writer) error {
	bw := bufio.NewWriter(w)
	tr.root.display(bw, 0)
	return bw.Flush()
}

func (n *node) display(w *bufio.Writer, depth int) {
	fmt.Fprintf(w, "%s- %s #%d\n", strings.Repeat(" ", depth*indent), n.Name, n.Pid)
	for _, child := range n.children {
		child.display(w, depth+1)
	}
}
