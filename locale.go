// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"github.com/qioalice/ekago/v2/ekaerr"
)

type (
	/*
	Locale is a handle of one locale of a Store.

	Getting locale by Store.LC() allows you to use translation paths
	without repeating the locale's name.
	The handle doesn't hold any data, each call goes to the Store,
	so the handle stays valid even if the locale is deleted and loaded again.

	WARNING!
	You must not instantiate this class manually!
	It's useless but safely.
	Manually instantiated Locale objects are considered not initialized
	and provides to you the same behaviour as if it'd be nil.
	*/
	Locale struct {
		owner *Store
		name  string
	}
)

/*
Tr tries to get translated language phrase by the specified translation path
and then tries to interpolate this phrase using passed args, if any.

Nil safe. Never fails.
If something goes wrong, the special string is returned.

Special returned strings.
All of special returned strings has the same format:

        "i18nErr: <error_class>. Key: <translation_path>".
                <translation_path> is your translation path,
                <error_class> might be:

 - _SPTR_LOCALE_IS_NIL:                Current Locale object is nil,
 - _SPTR_LOCALE_NOT_FOUND:             There is no such locale in the Store,
 - _SPTR_TRANSLATION_KEY_IS_INCORRECT: Translation path is empty or malformed,
 - _SPTR_TRANSLATION_NOT_FOUND:        Translation not found,
 - _SPTR_TRANSLATION_IS_SUBTREE:       Translation path addresses a subtree.
*/
func (l *Locale) Tr(path string, args Args) string {

	if !l.isValid() {
		return sptr(_SPTR_LOCALE_IS_NIL, path)
	}

	translatedPhrase, err := l.owner.FormatTranslation(l.name, path, args)
	if err.IsNotNil() {
		return sptr(sptrClassOf(err), path)
	}

	return translatedPhrase
}

/*
Get is an alias for Store.GetTranslation(l.Name(), path).
*/
func (l *Locale) Get(path string) (Node, *ekaerr.Error) {
	if !l.isValid() {
		return Node{}, errLocaleIsNil()
	}
	return l.owner.GetTranslation(l.name, path)
}

/*
Has is an alias for Store.HasTranslation(l.Name(), path).
Returns false for nil Locale.
*/
func (l *Locale) Has(path string) bool {
	return l.isValid() && l.owner.HasTranslation(l.name, path)
}

/*
Format is an alias for Store.FormatTranslation(l.Name(), path, args).
*/
func (l *Locale) Format(path string, args Args) (string, *ekaerr.Error) {
	if !l.isValid() {
		return "", errLocaleIsNil()
	}
	return l.owner.FormatTranslation(l.name, path, args)
}

/*
Exists reports whether the locale is present in the Store right now.
*/
func (l *Locale) Exists() bool {
	return l.isValid() && l.owner.HasLocale(l.name)
}

/*
Name returns the current Locale's name.

Nil safe.
If this method is called on nil object, the empty string is returned.
*/
func (l *Locale) Name() string {
	if !l.isValid() {
		return ""
	}
	return l.name
}
