// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocale_Tr(t *testing.T) {
	s := New()
	require.True(t, s.SetTranslations("en", map[string]interface{}{
		"welcome": "Hello, {name}!",
		"menu":    map[string]interface{}{"open": "Open"},
	}).IsNil())

	en := s.LC("en")
	assert.Equal(t, "en", en.Name())
	assert.True(t, en.Exists())
	assert.True(t, en.Has("menu.open"))

	for _, tt := range []struct {
		path string
		args Args
		want string
	}{
		{"welcome", Args{"name": "Ann"}, "Hello, Ann!"},
		{"welcome", nil, "Hello, {name}!"},
		{"menu.open", nil, "Open"},
		{"menu", nil, sptr(_SPTR_TRANSLATION_IS_SUBTREE, "menu")},
		{"menu.close", nil, sptr(_SPTR_TRANSLATION_NOT_FOUND, "menu.close")},
		{"welcome.x", nil, sptr(_SPTR_TRANSLATION_NOT_FOUND, "welcome.x")},
		{"menu..open", nil, sptr(_SPTR_TRANSLATION_KEY_IS_INCORRECT, "menu..open")},
	} {
		assert.Equal(t, tt.want, en.Tr(tt.path, tt.args), tt.path)
	}

	assert.Equal(t, sptr(_SPTR_LOCALE_NOT_FOUND, "welcome"), s.LC("fr").Tr("welcome", nil))
}

func TestLocale_Nil(t *testing.T) {
	var nilLocale *Locale
	manual := new(Locale)

	for _, l := range []*Locale{nilLocale, manual, (*Store)(nil).LC("en")} {
		assert.Equal(t, "i18nErr: LocaleIsNil. Key: a.b", l.Tr("a.b", nil))
		assert.Equal(t, "", l.Name())
		assert.False(t, l.Exists())
		assert.False(t, l.Has("a"))

		_, err := l.Get("a")
		assert.True(t, err.Is(ErrLocaleNotFound))

		_, err = l.Format("a", nil)
		assert.True(t, err.Is(ErrLocaleNotFound))
	}
}

func TestLocale_OutlivesReload(t *testing.T) {
	s := New()
	en := s.LC("en")
	assert.False(t, en.Exists())

	require.True(t, s.SetTranslations("en", map[string]interface{}{"a": "1"}).IsNil())
	assert.Equal(t, "1", en.Tr("a", nil))

	s.DeleteLocale("en")
	assert.Equal(t, sptr(_SPTR_LOCALE_NOT_FOUND, "a"), en.Tr("a", nil))

	require.True(t, s.SetTranslations("en", map[string]interface{}{"a": "2"}).IsNil())
	assert.Equal(t, "2", en.Tr("a", nil))

	node, err := en.Get("a")
	require.True(t, err.IsNil())
	assert.Equal(t, "2", node.Value())

	phrase, err := en.Format("a", Args{"x": "y"})
	require.True(t, err.IsNil())
	assert.Equal(t, "2", phrase)
}
