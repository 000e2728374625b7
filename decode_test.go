// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"testing"

	"github.com/qioalice/ekago/v2/ekaerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	want := Branch(map[string]Node{
		"welcome": Leaf("Hello, {name}!"),
		"menu": Branch(map[string]Node{
			"open":  Leaf("Open"),
			"close": Leaf("Close"),
		}),
	})

	for _, tt := range []struct {
		name   string
		decode func([]byte) (Node, *ekaerr.Error)
		doc    string
	}{
		{
			name:   "JSON",
			decode: DecodeJSON,
			doc:    `{"welcome": "Hello, {name}!", "menu": {"open": "Open", "close": "Close"}}`,
		},
		{
			name:   "YAML",
			decode: DecodeYAML,
			doc:    "welcome: Hello, {name}!\nmenu:\n  open: Open\n  close: Close\n",
		},
		{
			name:   "TOML",
			decode: DecodeTOML,
			doc:    "welcome = \"Hello, {name}!\"\n\n[menu]\nopen = \"Open\"\nclose = \"Close\"\n",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.decode([]byte(tt.doc))
			require.True(t, err.IsNil())
			assert.True(t, want.Equal(got))
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, tt := range []struct {
		name   string
		decode func([]byte) (Node, *ekaerr.Error)
		doc    string
	}{
		{"JSON syntax", DecodeJSON, `{"a": `},
		{"JSON number", DecodeJSON, `{"a": 1}`},
		{"JSON null", DecodeJSON, `{"a": null}`},
		{"JSON array", DecodeJSON, `{"a": ["x"]}`},
		{"JSON dotted key", DecodeJSON, `{"a.b": "x"}`},
		{"YAML syntax", DecodeYAML, "a: [x"},
		{"YAML not mapping", DecodeYAML, "- a\n- b\n"},
		{"YAML bool", DecodeYAML, "a: true\n"},
		{"TOML syntax", DecodeTOML, "a = "},
		{"TOML integer", DecodeTOML, "a = 1\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.decode([]byte(tt.doc))
			require.True(t, err.IsNotNil())
			assert.True(t, err.Is(ErrParse))
		})
	}
}

func TestDecode_ToStore(t *testing.T) {
	tree, err := DecodeYAML([]byte("a:\n  b: x\n"))
	require.True(t, err.IsNil())

	s := New()
	require.True(t, s.SetTranslationsNode("en", tree).IsNil())
	assert.True(t, s.HasTranslation("en", "a.b"))
}
