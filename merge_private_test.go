// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	existing := Branch(map[string]Node{
		"only_old": Leaf("old"),
		"both":     Leaf("old"),
		"nested": Branch(map[string]Node{
			"a": Leaf("1"),
		}),
		"leaf_to_branch": Leaf("leaf"),
		"branch_to_leaf": Branch(map[string]Node{"x": Leaf("x")}),
	})
	incoming := Branch(map[string]Node{
		"only_new": Leaf("new"),
		"both":     Leaf("new"),
		"nested": Branch(map[string]Node{
			"b": Leaf("2"),
		}),
		"leaf_to_branch": Branch(map[string]Node{"y": Leaf("y")}),
		"branch_to_leaf": Leaf("leaf"),
	})

	want := Branch(map[string]Node{
		"only_old": Leaf("old"),
		"only_new": Leaf("new"),
		"both":     Leaf("new"),
		"nested": Branch(map[string]Node{
			"a": Leaf("1"),
			"b": Leaf("2"),
		}),
		"leaf_to_branch": Branch(map[string]Node{"y": Leaf("y")}),
		"branch_to_leaf": Leaf("leaf"),
	})

	assert.True(t, want.Equal(merge(existing, incoming)))
}

func TestMerge_IncompatibleRoots(t *testing.T) {
	assert.Equal(t, "b", merge(Leaf("a"), Leaf("b")).Value())
	assert.True(t, merge(Leaf("a"), Branch(nil)).IsBranch())
	assert.True(t, merge(Branch(nil), Leaf("a")).IsLeaf())
}

func TestConflicts(t *testing.T) {
	existing := Branch(map[string]Node{
		"a": Leaf("1"),
		"b": Branch(map[string]Node{"c": Leaf("2"), "d": Leaf("3")}),
		"e": Branch(nil),
	})

	assert.Empty(t, conflicts(existing, Branch(map[string]Node{
		"x": Leaf("new"),
		"b": Branch(map[string]Node{"z": Leaf("new")}),
		"e": Branch(map[string]Node{"f": Leaf("new")}),
	}), ""))

	assert.Equal(t, []string{"a", "b.c", "e"}, conflicts(existing, Branch(map[string]Node{
		"a": Leaf("new"),
		"b": Branch(map[string]Node{"c": Leaf("new")}),
		"e": Leaf("new"),
	}), ""))
}
