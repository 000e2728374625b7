// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"sort"

	"gopkg.in/yaml.v3"
)

type (
	/*
	Node is an element of locale's translation tree.

	It's either a Leaf (translated phrase) or a Branch
	(named child nodes, keys are unique, order doesn't matter).

	A Node exclusively owns its children.
	All constructors and all getters of Store return deep copies,
	so you will never get a Node that shares its children with
	the store's tree or with another Node. Thus there are no cycles.

	The zero Node is a Leaf with an empty phrase.
	*/
	Node struct {
		value    string
		children map[string]Node // nil for Leaf
	}
)

/*
Leaf returns a Leaf node holding the passed phrase.
*/
func Leaf(phrase string) Node {
	return Node{value: phrase}
}

/*
Branch returns a Branch node with a deep copy of passed children.
Nil or empty map gives an empty Branch.
*/
func Branch(children map[string]Node) Node {
	n := makeBranch(len(children))
	for key, child := range children {
		n.children[key] = child.Clone()
	}
	return n
}

func makeBranch(capacity int) Node {
	return Node{children: make(map[string]Node, capacity)}
}

func (n Node) IsLeaf() bool {
	return n.children == nil
}

func (n Node) IsBranch() bool {
	return n.children != nil
}

/*
Value returns the phrase of Leaf. It's an empty string for Branch.
*/
func (n Node) Value() string {
	return n.value
}

/*
Child returns a deep copy of the child by the given key.
Returns false if n is a Leaf or there is no such child.
*/
func (n Node) Child(key string) (Node, bool) {
	child, found := n.children[key]
	if !found {
		return Node{}, false
	}
	return child.Clone(), true
}

/*
Len returns the number of direct children. Always 0 for Leaf.
*/
func (n Node) Len() int {
	return len(n.children)
}

/*
Keys returns sorted keys of direct children. Nil for Leaf.
*/
func (n Node) Keys() []string {
	if n.IsLeaf() {
		return nil
	}
	keys := make([]string, 0, len(n.children))
	for key := range n.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

/*
Clone returns a deep copy of n.
*/
func (n Node) Clone() Node {
	if n.IsLeaf() {
		return n
	}
	c := makeBranch(len(n.children))
	for key, child := range n.children {
		c.children[key] = child.Clone()
	}
	return c
}

/*
Equal reports whether n and other have the same shape and the same phrases.
*/
func (n Node) Equal(other Node) bool {
	switch {
	case n.IsLeaf() != other.IsLeaf():
		return false
	case n.IsLeaf():
		return n.value == other.value
	case len(n.children) != len(other.children):
		return false
	}
	for key, child := range n.children {
		otherChild, found := other.children[key]
		if !found || !child.Equal(otherChild) {
			return false
		}
	}
	return true
}

/*
Interface converts n back to the shape of the external payload:
a string for Leaf, map[string]interface{} for Branch (recursively).
*/
func (n Node) Interface() interface{} {
	if n.IsLeaf() {
		return n.value
	}
	m := make(map[string]interface{}, len(n.children))
	for key, child := range n.children {
		m[key] = child.Interface()
	}
	return m
}

func (n Node) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(n.Interface())
}

func (n *Node) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := jsonAPI.Unmarshal(b, &v); err != nil {
		return err
	}
	parsed, err := nodeOf(v, "")
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n Node) MarshalYAML() (interface{}, error) {
	return n.Interface(), nil
}

func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	var v interface{}
	if err := value.Decode(&v); err != nil {
		return err
	}
	parsed, err := nodeOf(v, "")
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
