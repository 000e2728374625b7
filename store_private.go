// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/qioalice/ekago/v2/ekaerr"

	"go.uber.org/zap"
)

type (
	/*
	applyMode is a way a new tree is combined with the locale's existing one.
	*/
	applyMode uint8
)

const (
	applyMerge   applyMode = iota // deep merge, new values win
	applyStrict                   // deep merge, any overwrite is an error
	applyReplace                  // drop existing tree
)

func (s *Store) isPoisoned() bool {
	return atomic.LoadUint32(&s.poisoned) == 1
}

func errPoisoned(op string) *ekaerr.Error {
	return ErrStorePoisoned.
		New("Store is poisoned by a panic during previous mutation.").
		AddFields("trstore_op", op).
		Throw()
}

/*
read calls cb under the read lock.
cb must not call any locking method of Store.
*/
func (s *Store) read(op string, cb func() *ekaerr.Error) *ekaerr.Error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.isPoisoned() {
		return errPoisoned(op)
	}
	return cb()
}

/*
write calls cb under the write lock.
cb must not call any locking method of Store.

If cb panics, the store is marked as poisoned before the lock is released.
The panic goes on.
*/
func (s *Store) write(op string, cb func() *ekaerr.Error) *ekaerr.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isPoisoned() {
		return errPoisoned(op)
	}

	completed := false
	defer func() {
		if !completed {
			atomic.StoreUint32(&s.poisoned, 1)
			s.log.Error("Store is poisoned by a panic during mutation.",
				zap.String("trstore_op", op))
		}
	}()

	err := cb()
	completed = true
	return err
}

/*
root returns the locale's tree. Lock must be held.
*/
func (s *Store) root(locale string) (Node, *ekaerr.Error) {
	root, found := s.locales[locale]
	if !found {
		return Node{}, ErrLocaleNotFound.
			New("Locale not found.").
			AddFields("trstore_locale", locale).
			Throw()
	}
	return root, nil
}

/*
target returns the locale's tree and split path. Lock must be held.
*/
func (s *Store) target(locale, path string) (Node, []string, *ekaerr.Error) {
	root, err := s.root(locale)
	if err.IsNotNil() {
		return Node{}, nil, err.Throw()
	}

	segs := splitPath(path)
	if segs == nil {
		return Node{}, nil, ErrInvalidPath.
			New("Path is empty or has an empty segment.").
			AddFields("trstore_locale", locale, "trstore_path", path).
			Throw()
	}

	return root, segs, nil
}

/*
lookup returns the Node by path in the locale (not a copy). Lock must be held.
*/
func (s *Store) lookup(locale, path string) (Node, *ekaerr.Error) {
	root, segs, err := s.target(locale, path)
	if err.IsNotNil() {
		return Node{}, err.Throw()
	}

	node, err := resolve(root, segs)
	if err.IsNotNil() {
		return Node{}, err.
			AddFields("trstore_locale", locale, "trstore_path", path).
			Throw()
	}

	return node, nil
}

/*
ownedBranch validates tree as a locale's tree and returns its deep copy.
*/
func ownedBranch(tree Node) (Node, *ekaerr.Error) {
	if tree.IsLeaf() {
		return Node{}, ErrParse.
			New("Tree must be a subtree, not a phrase.").
			Throw()
	}
	if legacyErr := validateKeys(tree, ""); legacyErr != nil {
		return Node{}, ErrParse.
			Wrap(legacyErr, "Malformed tree.").
			Throw()
	}
	return tree.Clone(), nil
}

/*
apply combines incoming (owned Branch) with the locale's tree
according to mode.
*/
func (s *Store) apply(locale string, incoming Node, mode applyMode, op string) *ekaerr.Error {
	err := s.write(op, func() *ekaerr.Error {
		if err := s.checkBatch(map[string]Node{locale: incoming}, mode); err.IsNotNil() {
			return err
		}
		s.applyLocked(locale, incoming, mode)
		return nil
	})

	if err.IsNotNil() {
		return err.Throw()
	}

	s.log.Debug("Translations applied.",
		zap.String("trstore_op", op),
		zap.String("trstore_locale", locale),
		zap.Int("trstore_top_keys", incoming.Len()))
	return nil
}

/*
applyBatch is apply() for many locales at once, under one lock.
Either all trees are applied or none.
*/
func (s *Store) applyBatch(batch map[string]Node, mode applyMode) *ekaerr.Error {
	return s.write("batch", func() *ekaerr.Error {
		if err := s.checkBatch(batch, mode); err.IsNotNil() {
			return err
		}
		for locale, incoming := range batch {
			s.applyLocked(locale, incoming, mode)
		}
		return nil
	})
}

/*
checkBatch returns ErrKeyAlreadyExist if mode is applyStrict
and any tree from batch overwrites existing phrases. Lock must be held.
*/
func (s *Store) checkBatch(batch map[string]Node, mode applyMode) *ekaerr.Error {
	if mode != applyStrict {
		return nil
	}

	locales := make([]string, 0, len(batch))
	for locale := range batch {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		existing, found := s.locales[locale]
		if !found {
			continue
		}
		if keys := conflicts(existing, batch[locale], ""); len(keys) > 0 {
			return ErrKeyAlreadyExist.
				New("Translations already exist.").
				AddFields(
					"trstore_locale", locale,
					"trstore_keys", strings.Join(keys, ", ")).
				Throw()
		}
	}

	return nil
}

/*
applyLocked saves incoming to the locale. Lock must be held.
*/
func (s *Store) applyLocked(locale string, incoming Node, mode applyMode) {
	existing, found := s.locales[locale]
	if !found || mode == applyReplace {
		s.locales[locale] = incoming
		return
	}
	s.locales[locale] = merge(existing, incoming)
}
