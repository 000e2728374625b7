// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"sort"
)

/*
merge moves incoming into existing and returns the result
that must be saved instead of existing.

If both nodes are Branches, incoming children are merged into existing
one by one: a child existing has too is merged recursively,
a new one is just added. Children only existing has are untouched.

Any other combination (Leaf+Leaf, Leaf+Branch, Branch+Leaf)
is resolved in favour of incoming.

incoming must be owned by the caller (a fresh copy),
since its children are moved, not copied.
*/
func merge(existing, incoming Node) Node {
	if existing.IsLeaf() || incoming.IsLeaf() {
		return incoming
	}
	for key, child := range incoming.children {
		if existingChild, found := existing.children[key]; found {
			existing.children[key] = merge(existingChild, child)
		} else {
			existing.children[key] = child
		}
	}
	return existing
}

/*
conflicts returns sorted paths (relative to path) which merge(existing, incoming)
would overwrite or reshape: Leafs that exist in both trees
and keys whose Leaf/Branch kind differs.
Keys that are Branches in both trees are never reported themselves,
only their conflicting descendants.
*/
func conflicts(existing, incoming Node, path string) []string {
	var found []string
	collectConflicts(existing, incoming, path, &found)
	sort.Strings(found)
	return found
}

func collectConflicts(existing, incoming Node, path string, dest *[]string) {
	if existing.IsLeaf() || incoming.IsLeaf() {
		*dest = append(*dest, path)
		return
	}
	for key, child := range incoming.children {
		if existingChild, found := existing.children[key]; found {
			collectConflicts(existingChild, child, joinPath(path, key), dest)
		}
	}
}
