// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"github.com/qioalice/ekago/v2/ekaerr"
)

type (
	_SpecialTranslationClass string
)

//goland:noinspection GoSnakeCaseUsage
const (
	__SPTR_PREFIX = _SpecialTranslationClass("i18nErr: ")
	__SPTR_SUFFIX = _SpecialTranslationClass(". Key: ")

	_SPTR_TRANSLATION_NOT_FOUND = __SPTR_PREFIX +
		_SpecialTranslationClass("TranslationNotFound") + __SPTR_SUFFIX

	_SPTR_TRANSLATION_IS_SUBTREE = __SPTR_PREFIX +
		_SpecialTranslationClass("TranslationIsSubtree") + __SPTR_SUFFIX

	_SPTR_LOCALE_IS_NIL = __SPTR_PREFIX +
		_SpecialTranslationClass("LocaleIsNil") + __SPTR_SUFFIX

	_SPTR_LOCALE_NOT_FOUND = __SPTR_PREFIX +
		_SpecialTranslationClass("LocaleNotFound") + __SPTR_SUFFIX

	_SPTR_TRANSLATION_KEY_IS_INCORRECT = __SPTR_PREFIX +
		_SpecialTranslationClass("TranslationKeyIsIncorrect") + __SPTR_SUFFIX

	_SPTR_STORE_IS_POISONED = __SPTR_PREFIX +
		_SpecialTranslationClass("StoreIsPoisoned") + __SPTR_SUFFIX
)

/*
Trivia:
Locale.Tr() may fail. Not existed locale, not existed or malformed
translation path, a subtree instead of phrase, and others.

Tr() is called from templates and log lines, where checking
a second return value makes the caller's code too hard to read.
So instead of *ekaerr.Error Tr() returns a special string,
easily seen at the screen and easily grepped in the logs.

sptr() is a generator of that special string
and "_SPTR_" starts constants are classes for that generator.
*/
func sptr(class _SpecialTranslationClass, originalKey string) string {
	return string(class) + originalKey
}

/*
sptrClassOf maps an error of Store's method to the special string class.
*/
func sptrClassOf(err *ekaerr.Error) _SpecialTranslationClass {
	switch {
	case err.Is(ErrLocaleNotFound):
		return _SPTR_LOCALE_NOT_FOUND
	case err.Is(ErrInvalidPath):
		return _SPTR_TRANSLATION_KEY_IS_INCORRECT
	case err.Is(ErrFormatTargetNotString):
		return _SPTR_TRANSLATION_IS_SUBTREE
	case err.Is(ErrStorePoisoned):
		return _SPTR_STORE_IS_POISONED
	default:
		return _SPTR_TRANSLATION_NOT_FOUND
	}
}
