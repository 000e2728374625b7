// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"strings"

	"github.com/qioalice/ekago/v2/ekaunsafe"

	"github.com/modern-go/reflect2"
)

type (
	/*
	scanError describes why a parsed payload can't be turned into a Node.
	It's a plain error, because it's also returned from
	json.Unmarshaler and yaml.Unmarshaler implementations of Node.
	Public API wraps it into ErrParse.
	*/
	scanError struct {
		path   string
		reason string
	}
)

var (
	rtypeNode            = reflect2.RTypeOf(Node{})
	rtypeMapStringString = reflect2.RTypeOf(map[string]string(nil))
	rtypeMapStringNode   = reflect2.RTypeOf(map[string]Node(nil))
)

func (e *scanError) Error() string {
	if e.path == "" {
		return e.reason
	}
	return e.path + ": " + e.reason
}

/*
nodeOf walks over the parsed external payload v, treating it as
a "string | map of the same" value, and builds a Node:

 - string becomes a Leaf,
 - map[string]interface{}, map[string]string, map[string]Node become a Branch,
   values are processed recursively,
 - Node is validated and deep copied.

Any other type (including nil, numbers and arrays) is an error.
Keys must be non-empty and must not contain a path delimiter,
because such keys can't be addressed by a path later.

path is a dotted path of v for error messages.
*/
func nodeOf(v interface{}, path string) (Node, error) {

	switch rtype := reflect2.RTypeOf(v); {

	case rtype == 0:
		return Node{}, &scanError{path, "value is null"}

	case rtype == ekaunsafe.RTypeString():
		return Leaf(v.(string)), nil

	case rtype == ekaunsafe.RTypeMapStringInterface():
		m := v.(map[string]interface{})
		n := makeBranch(len(m))
		for key, value := range m {
			if err := n.scanChild(key, value, path); err != nil {
				return Node{}, err
			}
		}
		return n, nil

	case rtype == rtypeMapStringString:
		m := v.(map[string]string)
		n := makeBranch(len(m))
		for key, value := range m {
			if err := n.scanChild(key, value, path); err != nil {
				return Node{}, err
			}
		}
		return n, nil

	case rtype == rtypeMapStringNode:
		return nodeOf(Branch(v.(map[string]Node)), path)

	case rtype == rtypeNode:
		node := v.(Node)
		if err := validateKeys(node, path); err != nil {
			return Node{}, err
		}
		return node.Clone(), nil

	default:
		return Node{}, &scanError{path, "unexpected type of value: " + reflect2.TypeOf(v).String()}
	}
}

/*
scanChild converts value and saves it by key into the Branch n.
*/
func (n Node) scanChild(key string, value interface{}, path string) error {
	childPath := joinPath(path, key)
	if err := checkKey(key, path); err != nil {
		return err
	}
	child, err := nodeOf(value, childPath)
	if err != nil {
		return err
	}
	n.children[key] = child
	return nil
}

/*
validateKeys checks every key of the tree n using checkKey().
*/
func validateKeys(n Node, path string) error {
	for key, child := range n.children {
		if err := checkKey(key, path); err != nil {
			return err
		}
		if err := validateKeys(child, joinPath(path, key)); err != nil {
			return err
		}
	}
	return nil
}

func checkKey(key, path string) error {
	switch {
	case key == "":
		return &scanError{path, "key is empty"}
	case strings.IndexByte(key, PathDelimiter) != -1:
		return &scanError{path, "key contains path delimiter: " + key}
	}
	return nil
}
