// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"sort"
	"sync"

	"github.com/qioalice/ekago/v2/ekaerr"

	"go.uber.org/zap"
)

type (
	/*
	Store is an in-memory storage of translation trees, one tree per locale.

	Each locale's tree is rooted at a Branch Node and is addressed
	by a dotted path: "menu.file.open".

	Store is safe for concurrent use. The whole store is guarded by
	a single reader-writer lock: getters may run in parallel,
	any mutation is exclusive. There is no per-locale locking.

	Create it once using New() and pass it to the places it's needed.
	Zero Store is not usable.

	If a panic happens while the store is being mutated, the store is poisoned:
	every fallible method returns ErrStorePoisoned since that,
	boolean methods report false, listings are empty.
	The panic itself is not recovered.
	*/
	Store struct {
		mu       sync.RWMutex
		locales  map[string]Node
		log      *zap.Logger
		poisoned uint32
	}
)

/*
New creates a new empty Store.
*/
func New(opts ...Option) *Store {
	s := &Store{
		locales: make(map[string]Node),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

/*
SetTranslations adds an already parsed external payload to the locale.
Each value of tree must be either a string or a nested map of the same kind.

If there is no such locale yet, it's created.
Otherwise the tree is deeply merged into the existing one:
subtrees are merged key by key, keys the new tree doesn't mention are kept,
and if a phrase meets a subtree (or another phrase) the new value wins.

Returns ErrParse if tree is malformed (unexpected value types,
empty keys, keys with PathDelimiter). The store is not changed in that case.
*/
func (s *Store) SetTranslations(locale string, tree map[string]interface{}) *ekaerr.Error {
	incoming, legacyErr := nodeOf(tree, "")
	if legacyErr != nil {
		return ErrParse.
			Wrap(legacyErr, "Failed to set translations. Malformed tree.").
			AddFields("trstore_locale", locale).
			Throw()
	}
	return s.apply(locale, incoming, applyMerge, "set")
}

/*
SetTranslationsNode is the same as SetTranslations but takes a Node.
tree must be a Branch.
*/
func (s *Store) SetTranslationsNode(locale string, tree Node) *ekaerr.Error {
	const str = "Failed to set translations. "
	incoming, err := ownedBranch(tree)
	if err.IsNotNil() {
		return err.
			AddMessage(str).
			AddFields("trstore_locale", locale).
			Throw()
	}
	return s.apply(locale, incoming, applyMerge, "set")
}

/*
AddTranslations is like SetTranslationsNode but never overwrites:
if any phrase of tree already exists in the locale
(or a phrase and a subtree meet at the same key),
ErrKeyAlreadyExist is returned and nothing is changed.
*/
func (s *Store) AddTranslations(locale string, tree Node) *ekaerr.Error {
	const str = "Failed to add translations. "
	incoming, err := ownedBranch(tree)
	if err.IsNotNil() {
		return err.
			AddMessage(str).
			AddFields("trstore_locale", locale).
			Throw()
	}
	return s.apply(locale, incoming, applyStrict, "add")
}

/*
ReplaceTranslations drops the locale's tree (if any) and saves tree instead.
*/
func (s *Store) ReplaceTranslations(locale string, tree Node) *ekaerr.Error {
	const str = "Failed to replace translations. "
	incoming, err := ownedBranch(tree)
	if err.IsNotNil() {
		return err.
			AddMessage(str).
			AddFields("trstore_locale", locale).
			Throw()
	}
	return s.apply(locale, incoming, applyReplace, "replace")
}

/*
GetTranslation returns a copy of the Node (phrase or subtree)
the path addresses in the locale.

Errors: ErrLocaleNotFound, ErrKeyNotFound, ErrTypeMismatch, ErrInvalidPath.
*/
func (s *Store) GetTranslation(locale, path string) (Node, *ekaerr.Error) {
	var node Node
	err := s.read("get", func() *ekaerr.Error {
		found, err := s.lookup(locale, path)
		if err.IsNil() {
			node = found.Clone()
		}
		return err
	})
	if err.IsNotNil() {
		return Node{}, err.
			AddMessage("Failed to get translation.").
			Throw()
	}
	return node, nil
}

/*
HasTranslation reports whether GetTranslation would succeed.
*/
func (s *Store) HasTranslation(locale, path string) bool {
	err := s.read("has", func() *ekaerr.Error {
		_, err := s.lookup(locale, path)
		return err
	})
	return err.IsNil()
}

/*
UpdateTranslation saves value by path in the locale,
overwriting whatever is there (no merging).
Absent intermediate subtrees are created.

The locale must exist.
Returns ErrTypeMismatch if the path goes through a phrase.
The store is not changed if an error is returned.
*/
func (s *Store) UpdateTranslation(locale, path string, value Node) *ekaerr.Error {
	const str = "Failed to update translation. "

	if legacyErr := validateKeys(value, path); legacyErr != nil {
		return ErrParse.
			Wrap(legacyErr, str+"Malformed value.").
			AddFields("trstore_locale", locale, "trstore_path", path).
			Throw()
	}
	value = value.Clone()

	err := s.write("update", func() *ekaerr.Error {
		root, segs, err := s.target(locale, path)
		if err.IsNotNil() {
			return err
		}
		parent, err := resolveOrCreate(root, segs)
		if err.IsNotNil() {
			return err
		}
		parent.children[segs[len(segs)-1]] = value
		return nil
	})

	if err.IsNotNil() {
		return err.
			AddMessage(str).
			AddFields("trstore_locale", locale, "trstore_path", path).
			Throw()
	}

	s.log.Debug("Translation updated.",
		zap.String("trstore_locale", locale), zap.String("trstore_path", path))
	return nil
}

/*
DeleteTranslation removes the phrase or subtree by path from the locale.

The locale must exist, but it's not an error if there is nothing by path.
Subtrees that become empty are kept.
*/
func (s *Store) DeleteTranslation(locale, path string) *ekaerr.Error {
	err := s.write("delete", func() *ekaerr.Error {
		root, segs, err := s.target(locale, path)
		if err.IsNotNil() {
			return err
		}
		remove(root, segs)
		return nil
	})

	if err.IsNotNil() {
		return err.
			AddMessage("Failed to delete translation.").
			AddFields("trstore_locale", locale, "trstore_path", path).
			Throw()
	}

	s.log.Debug("Translation deleted.",
		zap.String("trstore_locale", locale), zap.String("trstore_path", path))
	return nil
}

/*
DeleteLocale removes the locale with its whole tree.
It's not an error if there is no such locale.
*/
func (s *Store) DeleteLocale(locale string) {
	err := s.write("delete_locale", func() *ekaerr.Error {
		delete(s.locales, locale)
		return nil
	})
	if err.IsNil() {
		s.log.Debug("Locale deleted.", zap.String("trstore_locale", locale))
	}
}

func (s *Store) HasLocale(locale string) bool {
	found := false
	_ = s.read("has_locale", func() *ekaerr.Error {
		_, found = s.locales[locale]
		return nil
	})
	return found
}

/*
ListLocales returns sorted names of all locales at the moment of call.
*/
func (s *Store) ListLocales() []string {
	var names []string
	_ = s.read("list", func() *ekaerr.Error {
		names = make([]string, 0, len(s.locales))
		for name := range s.locales {
			names = append(names, name)
		}
		return nil
	})
	sort.Strings(names)
	return names
}

/*
ClearAll removes all locales.
*/
func (s *Store) ClearAll() {
	err := s.write("clear", func() *ekaerr.Error {
		s.locales = make(map[string]Node)
		return nil
	})
	if err.IsNil() {
		s.log.Debug("All locales deleted.")
	}
}

/*
FormatTranslation gets the phrase by path from the locale
and substitutes its "{name}" placeholders by args in a single pass.
Placeholders without an argument remain as is.

Errors: ErrLocaleNotFound, ErrKeyNotFound, ErrTypeMismatch, ErrInvalidPath,
ErrFormatTargetNotString (path addresses a subtree).
*/
func (s *Store) FormatTranslation(locale, path string, args Args) (string, *ekaerr.Error) {
	var phrase string
	err := s.read("format", func() *ekaerr.Error {
		node, err := s.lookup(locale, path)
		switch {
		case err.IsNotNil():
			return err
		case node.IsBranch():
			return ErrFormatTargetNotString.
				New("Translation is a subtree, not a phrase.").
				AddFields("trstore_locale", locale, "trstore_path", path).
				Throw()
		}
		phrase = node.value
		return nil
	})

	if err.IsNotNil() {
		return "", err.
			AddMessage("Failed to format translation.").
			Throw()
	}

	// Phrase is a string copy, no need to hold the lock while formatting.
	return format(phrase, args), nil
}

/*
Translations returns a copy of the whole tree of the locale.
*/
func (s *Store) Translations(locale string) (Node, *ekaerr.Error) {
	var tree Node
	err := s.read("translations", func() *ekaerr.Error {
		root, err := s.root(locale)
		if err.IsNil() {
			tree = root.Clone()
		}
		return err
	})
	if err.IsNotNil() {
		return Node{}, err.
			AddMessage("Failed to get translations.").
			Throw()
	}
	return tree, nil
}

/*
Snapshot returns a copy of trees of all locales.
*/
func (s *Store) Snapshot() map[string]Node {
	snapshot := make(map[string]Node)
	_ = s.read("snapshot", func() *ekaerr.Error {
		for name, root := range s.locales {
			snapshot[name] = root.Clone()
		}
		return nil
	})
	return snapshot
}

/*
LC returns a handle of the locale with the given name.
The handle doesn't check whether locale exists, it's checked at each call.
*/
func (s *Store) LC(name string) *Locale {
	if s == nil {
		return nil
	}
	return &Locale{
		owner: s,
		name:  name,
	}
}
