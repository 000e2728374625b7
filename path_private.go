// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"strings"

	"github.com/qioalice/ekago/v2/ekaerr"
)

//goland:noinspection GoSnakeCaseUsage
const (
	/*
	PathDelimiter separates segments of a translation path: "menu.file.open".
	There is no escaping, so keys can't contain it.
	*/
	PathDelimiter byte = '.'
)

/*
splitPath splits path into segments.
Returns nil if path is empty or any segment is empty.
*/
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	segs := strings.Split(path, string(PathDelimiter))
	for _, seg := range segs {
		if seg == "" {
			return nil
		}
	}
	return segs
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + string(PathDelimiter) + key
}

/*
descend returns the Branch that holds the final segment of segs.
Intermediate segments (all but last) must be Branches.

If create is true, absent intermediate Branches are created.
Creation starts only after the whole path is proven to be free of Leafs,
so a failed call never leaves new empty Branches behind.
*/
func descend(root Node, segs []string, create bool) (Node, *ekaerr.Error) {

	const s = "Failed to resolve translation path. "

	// First pass never mutates.
	node := root
	for i, seg := range segs[:len(segs)-1] {
		child, found := node.children[seg]
		if !found && create {
			// The rest of path will be created, nothing can block it.
			break
		}

		if !found {
			return Node{}, ErrKeyNotFound.
				New(s + "Intermediate key not found.").
				AddFields("trstore_key", strings.Join(segs[:i+1], string(PathDelimiter))).
				Throw()
		}

		if child.IsLeaf() {
			return Node{}, ErrTypeMismatch.
				New(s + "Intermediate key is a phrase, not a subtree.").
				AddFields("trstore_key", strings.Join(segs[:i+1], string(PathDelimiter))).
				Throw()
		}

		node = child
	}

	if !create {
		return node, nil
	}

	node = root
	for _, seg := range segs[:len(segs)-1] {
		child, found := node.children[seg]
		if !found {
			child = makeBranch(1)
			node.children[seg] = child
		}
		node = child
	}

	return node, nil
}

/*
resolve returns the Node addressed by segs inside root (not a copy).
*/
func resolve(root Node, segs []string) (Node, *ekaerr.Error) {

	parent, err := descend(root, segs, false)
	if err.IsNotNil() {
		return Node{}, err.Throw()
	}

	last := segs[len(segs)-1]
	node, found := parent.children[last]
	if !found {
		return Node{}, ErrKeyNotFound.
			New("Failed to resolve translation path. Key not found.").
			AddFields("trstore_key", last).
			Throw()
	}

	return node, nil
}

/*
resolveOrCreate returns the Branch the final segment of segs must be written to,
creating absent intermediate Branches.
*/
func resolveOrCreate(root Node, segs []string) (Node, *ekaerr.Error) {
	return descend(root, segs, true)
}

/*
remove deletes the final segment of segs from its parent Branch.
It's no-op if any prefix of path doesn't exist or is a Leaf.
Ancestors that became empty are kept.
*/
func remove(root Node, segs []string) {
	node := root
	for _, seg := range segs[:len(segs)-1] {
		child, found := node.children[seg]
		if !found || child.IsLeaf() {
			return
		}
		node = child
	}
	delete(node.children, segs[len(segs)-1])
}
