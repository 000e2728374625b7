// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"github.com/qioalice/ekago/v2/ekaerr"

	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

var (
	jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary
)

/*
DecodeJSON parses a JSON document of the shape
"object of (string | the same object)" into a Branch Node.
*/
func DecodeJSON(b []byte) (Node, *ekaerr.Error) {
	return decode(b, jsonAPI.Unmarshal, "JSON")
}

/*
DecodeYAML parses a YAML document of the shape
"mapping of (string | the same mapping)" into a Branch Node.
*/
func DecodeYAML(b []byte) (Node, *ekaerr.Error) {
	return decode(b, yaml.Unmarshal, "YAML")
}

/*
DecodeTOML parses a TOML document (tables of strings) into a Branch Node.
*/
func DecodeTOML(b []byte) (Node, *ekaerr.Error) {
	return decode(b, tomlUnmarshal, "TOML")
}

func decode(b []byte, unmarshaler func([]byte, interface{}) error, formatName string) (Node, *ekaerr.Error) {
	const s = "Failed to decode translations. "

	rootMap := make(map[string]interface{})
	if legacyErr := unmarshaler(b, &rootMap); legacyErr != nil {
		return Node{}, ErrParse.
			Wrap(legacyErr, s+"Malformed document.").
			AddFields("trstore_format", formatName).
			Throw()
	}

	node, legacyErr := nodeOf(rootMap, "")
	if legacyErr != nil {
		return Node{}, ErrParse.
			Wrap(legacyErr, s+"Unexpected document structure.").
			AddFields("trstore_format", formatName).
			Throw()
	}

	return node, nil
}

/*
tomlUnmarshal decodes TOML document into *map[string]interface{} v,
with nested tables as map[string]interface{} too.
*/
func tomlUnmarshal(b []byte, v interface{}) error {
	tree, err := toml.LoadBytes(b)
	if err != nil {
		return err
	}
	*v.(*map[string]interface{}) = tree.ToMap()
	return nil
}
