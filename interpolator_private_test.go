// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		args   Args
		want   string
	}{
		{"no args", "Hi, {name}!", nil, "Hi, {name}!"},
		{"plain text", "test string", Args{"a": "b"}, "test string"},
		{"simple", "Hello, {name}!", Args{"name": "Ann"}, "Hello, Ann!"},
		{"missing arg", "Hi, {name}!", Args{"other": "x"}, "Hi, {name}!"},
		{"repeated", "{x}-{x}-{x}", Args{"x": "7"}, "7-7-7"},
		{"many", "{a} and {b}", Args{"a": "1", "b": "2"}, "1 and 2"},
		{"unicode name", "Привет, {имя}!", Args{"имя": "Аня"}, "Привет, Аня!"},
		{"underscore and digits", "{user_1}", Args{"user_1": "u"}, "u"},
		{"empty braces", "{} {", Args{"": "x"}, "{} {"},
		{"not identifier", "{a b} {a-b}", Args{"a b": "x", "a-b": "y"}, "{a b} {a-b}"},
		{"double braces", "{{name}}", Args{"name": "Ann"}, "{Ann}"},
		{"unclosed", "{name", Args{"name": "Ann"}, "{name"},
		{"trailing brace", "end {", Args{"name": "Ann"}, "end {"},
		{"value with placeholder", "{a}{b}", Args{"a": "{b}", "b": "B"}, "{b}B"},
		{"value with braces", "{a}", Args{"a": "{{a}}"}, "{{a}}"},
		{"empty value", "[{a}]", Args{"a": ""}, "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format(tt.phrase, tt.args))
		})
	}
}

func BenchmarkFormat(b *testing.B) {
	args := Args{
		"s1": "string",
		"i_": "124",
	}
	for i := 0; i < b.N; i++ {
		format("{s1} {i_} {unexisted} {", args)
	}
}
