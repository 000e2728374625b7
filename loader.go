// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"bytes"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/qioalice/ekago/v2/ekaerr"
	"github.com/qioalice/ekago/v2/ekaunsafe"

	"github.com/modern-go/reflect2"
	"go.uber.org/zap"
)

type (
	/*
	Loader reads locale files (or RAW contents) and puts them to the Store.

	Use Source() to register one or many sources, then Load() to parse them all
	and apply to the Store at once. Either all sources are applied or none.

	By default a Loader never overwrites a phrase that already exists
	in the Store or in another source of the same Load() call,
	it's an error (ErrKeyAlreadyExist). Call SetOverwrite(true)
	to merge sources the same way Store.SetTranslations() does.

	Loader is not intended to be used from many goroutines:
	concurrent Source() and Load() calls fail fast with IllegalState error.
	*/
	Loader struct {

		/*
		state is a current state of the Loader.
		Source() and Load() take it as a "lock" using CAS.
		*/
		state uint32

		config struct {

			// C-like bool variables. 1 - true, 0 - false.
			// Protected by atomic operations.

			OverwriteExistingKey uint32
		}

		owner *Store

		sourcesTmp []SourceItem

		buf bytes.Buffer
	}
)

/*
NewLoader returns a Loader that puts locales to the Store s.
*/
func (s *Store) NewLoader() *Loader {
	return &Loader{owner: s}
}

/*
SetOverwrite allows (or prohibits) sources to overwrite existing phrases.
*/
func (l *Loader) SetOverwrite(overwrite bool) {
	var v uint32
	if overwrite {
		v = 1
	}
	atomic.StoreUint32(&l.config.OverwriteExistingKey, v)
}

/*
Source allows you to add locale content or path to it.
Multiple calls are allowed or you can pass all arguments into one call.

        Source(<content1>)                                   // (1)
        Source(<content2>)                                   // (2)

is the same as

        Source(<content1>, <content2>)                       // (3)

Argument's types and their meanings:

 - string (treated as path to either locale's directory or locale's one file),
 - []byte (treated as the content of locale's file),
 - []string (treated as the array of either locale's directories, files or even mixed),
 - [][]byte (treated as the array of locale's files content).

All other types are prohibited.

Paths are analyzed during this call (thus you will get an error
if path does not exist, access denied or something else),
files are read, but the content is not parsed until Load() call.

Directories are scanned recursively. Files with extensions other than
.yaml, .yml, .toml and .json are ignored.

RAW contents must have a "__metadata__" section with the locale name.
*/
func (l *Loader) Source(args ...interface{}) *ekaerr.Error {
	const s = "Failed to count one or many locale sources. "
	switch {

	case !l.isValid():
		return ekaerr.IllegalState.
			New(s + "Loader is not valid.").
			Throw()

	case len(args) == 0:
		return ekaerr.IllegalArgument.
			New(s + "There are no sources.").
			Throw()

	case !l.changeState(_LLS_STANDBY, _LLS_SOURCE_PENDING):
		return ekaerr.IllegalState.
			New(s + "Another Source() or Load() called.").
			AddFields("trstore_allowed_states", strState(_LLS_STANDBY)).
			Throw()
	}

	defer l.changeStateForce(_LLS_STANDBY)

	var (
		sources = make([]SourceItem, 0, len(args))
		err     *ekaerr.Error
	)

	//goland:noinspection GoNilness
	for _, arg := range args {

		if arg == nil {
			return ekaerr.IllegalArgument.
				New(s + "Source is nil.").
				Throw()
		}

		switch argType := reflect2.TypeOf(arg); argType.RType() {

		case ekaunsafe.RTypeString():
			err = l.sourceString(&sources, arg.(string), 0)

		case ekaunsafe.RTypeStringArray():
			arr := arg.([]string)
			for i, n := 0, len(arr); i < n && err.IsNil(); i++ {
				err = l.sourceString(&sources, arr[i], 0)
			}

		case ekaunsafe.RTypeBytes():
			err = l.sourceBytes(&sources, arg.([]byte))

		case ekaunsafe.RTypeBytesArray():
			arr := arg.([][]byte)
			for i, n := 0, len(arr); i < n && err.IsNil(); i++ {
				err = l.sourceBytes(&sources, arr[i])
			}

		default:
			return ekaerr.IllegalArgument.
				New(s + "Unexpected type of source.").
				AddFields("trstore_source_type", argType.String()).
				Throw()
		}

		if err.IsNotNil() {
			return err.
				AddMessage(s).
				Throw()
		}
	}

	if len(sources) == 0 {
		return ekaerr.IllegalArgument.
			New(s + "There are no valid sources.").
			Throw()
	}

	// Sources of the same locale with the same content are most likely
	// the same file passed twice (or a copy of it).
	// Different locales may share content ("en_US" and "en_GB").

	seen := make(map[string]string, len(sources)+len(l.sourcesTmp))
	for _, source := range l.sourcesTmp {
		seen[source.dedupeKey()] = source.Path
	}
	for _, source := range sources {
		key := source.dedupeKey()
		if path, dup := seen[key]; dup {
			return ekaerr.IllegalArgument.
				New(s + "Two sources of the same locale with the same content detected.").
				AddFields(
					"trstore_locale", source.LocaleName,
					"trstore_source_1", path,
					"trstore_source_2", source.Path).
				Throw()
		}
		seen[key] = source.Path
	}

	l.sourcesTmp = append(l.sourcesTmp, sources...)
	return nil
}

/*
Load parses all registered sources and applies them to the Store.
Registered sources are flushed whether Load() succeeded or not.
*/
func (l *Loader) Load() *ekaerr.Error {
	const s = "Failed to load sourced locales. "
	switch {

	case !l.isValid():
		return ekaerr.IllegalState.
			New(s + "Loader is not valid.").
			Throw()

	case !l.changeState(_LLS_STANDBY, _LLS_LOAD_PENDING):
		return ekaerr.IllegalState.
			New(s + "Another Source() or Load() called.").
			AddFields("trstore_allowed_states", strState(_LLS_STANDBY)).
			Throw()
	}

	defer l.changeStateForce(_LLS_STANDBY)

	sources := l.sourcesTmp
	l.sourcesTmp = nil

	if len(sources) == 0 {
		return ekaerr.IllegalState.
			New(s + "There is no valid sources counted yet.").
			Throw()
	}

	overwrite := atomic.LoadUint32(&l.config.OverwriteExistingKey) == 1

	batch, err := l.parseAll(sources, overwrite)
	if err.IsNotNil() {
		return err.
			AddMessage(s).
			Throw()
	}

	mode := applyStrict
	if overwrite {
		mode = applyMerge
	}

	if err = l.owner.applyBatch(batch, mode); err.IsNotNil() {
		return err.
			AddMessage(s).
			Throw()
	}

	locales := make([]string, 0, len(batch))
	for locale := range batch {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	l.owner.log.Info("Locale sources loaded.",
		zap.Int("trstore_sources", len(sources)),
		zap.String("trstore_locales", strings.Join(locales, ", ")),
		zap.Bool("trstore_overwrite", overwrite))

	return nil
}
