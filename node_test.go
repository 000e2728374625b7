// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNode_LeafAndBranch(t *testing.T) {
	leaf := Leaf("hello")
	assert.True(t, leaf.IsLeaf())
	assert.False(t, leaf.IsBranch())
	assert.Equal(t, "hello", leaf.Value())
	assert.Equal(t, 0, leaf.Len())
	assert.Nil(t, leaf.Keys())

	branch := Branch(map[string]Node{
		"b": Leaf("2"),
		"a": Leaf("1"),
	})
	assert.True(t, branch.IsBranch())
	assert.Equal(t, "", branch.Value())
	assert.Equal(t, []string{"a", "b"}, branch.Keys())

	child, found := branch.Child("a")
	require.True(t, found)
	assert.Equal(t, "1", child.Value())

	_, found = branch.Child("c")
	assert.False(t, found)

	_, found = leaf.Child("a")
	assert.False(t, found)

	assert.True(t, Branch(nil).IsBranch())
	assert.Equal(t, 0, Branch(nil).Len())
}

func TestNode_OwnsItsChildren(t *testing.T) {
	inner := Branch(map[string]Node{"x": Leaf("1")})
	outer := Branch(map[string]Node{"inner": inner})

	// Mutating the original must not affect the copy made by Branch().
	inner.children["x"] = Leaf("changed")
	got, _ := outer.Child("inner")
	x, _ := got.Child("x")
	assert.Equal(t, "1", x.Value())

	clone := outer.Clone()
	clone.children["inner"].children["x"] = Leaf("changed")
	assert.False(t, clone.Equal(outer))
}

func TestNode_Equal(t *testing.T) {
	a := Branch(map[string]Node{"k": Branch(map[string]Node{"v": Leaf("1")})})
	b := Branch(map[string]Node{"k": Branch(map[string]Node{"v": Leaf("1")})})
	assert.True(t, a.Equal(b))

	assert.False(t, a.Equal(Leaf("1")))
	assert.False(t, Leaf("1").Equal(Leaf("2")))
	assert.False(t, a.Equal(Branch(map[string]Node{"k": Leaf("1")})))
	assert.False(t, a.Equal(Branch(map[string]Node{"j": Branch(nil)})))
}

func TestNode_Interface(t *testing.T) {
	n := Branch(map[string]Node{
		"title": Leaf("Title"),
		"menu":  Branch(map[string]Node{"open": Leaf("Open")}),
	})
	assert.Equal(t, map[string]interface{}{
		"title": "Title",
		"menu":  map[string]interface{}{"open": "Open"},
	}, n.Interface())
	assert.Equal(t, "x", Leaf("x").Interface())
}

func TestNode_JSON(t *testing.T) {
	var n Node
	require.NoError(t, n.UnmarshalJSON([]byte(`{"a":{"b":"x"},"c":"y"}`)))

	want := Branch(map[string]Node{
		"a": Branch(map[string]Node{"b": Leaf("x")}),
		"c": Leaf("y"),
	})
	assert.True(t, want.Equal(n))

	b, err := jsonAPI.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":{"b":"x"},"c":"y"}`, string(b))

	assert.Error(t, n.UnmarshalJSON([]byte(`{"a":1}`)))
	assert.Error(t, n.UnmarshalJSON([]byte(`{"a":`)))
}

func TestNode_YAML(t *testing.T) {
	var n Node
	require.NoError(t, yaml.Unmarshal([]byte("a:\n  b: x\nc: y\n"), &n))

	v, found := n.Child("c")
	require.True(t, found)
	assert.Equal(t, "y", v.Value())

	b, err := yaml.Marshal(n)
	require.NoError(t, err)

	var back Node
	require.NoError(t, yaml.Unmarshal(b, &back))
	assert.True(t, n.Equal(back))

	assert.Error(t, yaml.Unmarshal([]byte("a: [1, 2]\n"), &n))
}

func TestNodeOf(t *testing.T) {
	n, err := nodeOf(map[string]interface{}{
		"a": "x",
		"b": map[string]interface{}{"c": "y"},
		"d": map[string]string{"e": "z"},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d"}, n.Keys())

	for name, payload := range map[string]interface{}{
		"number":      map[string]interface{}{"a": 1},
		"null":        map[string]interface{}{"a": nil},
		"array":       map[string]interface{}{"a": []interface{}{"x"}},
		"empty key":   map[string]interface{}{"": "x"},
		"dotted key":  map[string]interface{}{"a.b": "x"},
		"nested null": map[string]interface{}{"a": map[string]interface{}{"b": nil}},
	} {
		_, err := nodeOf(payload, "")
		assert.Error(t, err, name)
	}

	_, err = nodeOf(map[string]interface{}{"a": map[string]interface{}{"b": 1}}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.b")
}
