// Package chain resolves reply chains: the connected set of entries
// reachable from a starting entry by following linked-id references in
// either direction. It operates on an already-fetched entry slice and
// never touches storage.
package chain

import "github.com/oddworks/onelogs/pkg/types"

// Compute returns the ids connected to startID: the ancestor chain found
// by walking parent pointers upward, plus every descendant whose linked
// id points, directly or transitively, into the set.
//
// The walk tolerates malformed data rather than failing on it: a dangling
// linked id ends the upward walk, a cycle is cut by the visited set, and
// a startID with no links yields the singleton set. The input should come
// from ListAll so soft-deleted intermediate nodes keep the graph
// connected.
func Compute(entries []types.DiaryEntry, startID int64) map[int64]bool {
	// Parent-pointer map, built once per invocation.
	parent := make(map[int64]*int64, len(entries))
	for _, e := range entries {
		parent[e.EntryID] = e.LinkedID
	}

	visited := map[int64]bool{startID: true}

	// Upward: follow parent pointers until absent, dangling, or already
	// seen. The visited check terminates cyclic graphs.
	cur := startID
	for {
		p, ok := parent[cur]
		if !ok || p == nil {
			break
		}
		if _, exists := parent[*p]; !exists {
			break // dangling reference, treat as no parent
		}
		if visited[*p] {
			break
		}
		visited[*p] = true
		cur = *p
	}

	// Downward: expand children with an explicit work-list so pathological
	// graphs cannot grow the call stack. Every node found on the upward
	// walk is a seed, so branches hanging off ancestors are collected
	// too. A node already in the set is never re-expanded.
	work := make([]int64, 0, len(visited))
	for id := range visited {
		work = append(work, id)
	}
	for len(work) > 0 {
		id := work[len(work)-1]
		work = work[:len(work)-1]
		for _, e := range entries {
			if e.LinkedID == nil || *e.LinkedID != id {
				continue
			}
			if visited[e.EntryID] {
				continue
			}
			visited[e.EntryID] = true
			work = append(work, e.EntryID)
		}
	}

	return visited
}

// Filter returns the entries whose ids are in the set, preserving the
// input order. Callers pass the diary's normally ordered list so a chain
// renders in ascending id order.
func Filter(entries []types.DiaryEntry, ids map[int64]bool) []types.DiaryEntry {
	filtered := []types.DiaryEntry{}
	for _, e := range entries {
		if ids[e.EntryID] {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
