// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"github.com/qioalice/ekago/v2/ekaerr"
)

/*
Error classes of the package.

Each fallible operation returns *ekaerr.Error that is nil on success.
If it's not nil, it belongs to exactly one of classes below,
so the caller may check it using (*ekaerr.Error).Is():

        if err := store.UpdateTranslation("en", "a.b", trstore.Leaf("x")); err.IsNotNil() {
                if err.Is(trstore.ErrTypeMismatch) {
                        ...
                }
        }

Fields attached to the error are prefixed by "trstore_".
*/
var (
	// Requested locale has never been written to or was deleted.
	ErrLocaleNotFound = ekaerr.NotFound.NewSubClass("LocaleNotFound")

	// One of the path's segments is absent.
	ErrKeyNotFound = ekaerr.NotFound.NewSubClass("KeyNotFound")

	// Path goes through a Leaf where a Branch is required.
	ErrTypeMismatch = ekaerr.IllegalState.NewSubClass("TypeMismatch")

	// Formatting is requested for a Branch node.
	ErrFormatTargetNotString = ekaerr.IllegalArgument.NewSubClass("FormatTargetNotString")

	// Path is empty or has an empty segment ("a..b", ".a", "a.").
	ErrInvalidPath = ekaerr.IllegalArgument.NewSubClass("InvalidPath")

	// Incoming tree or document is malformed.
	ErrParse = ekaerr.IllegalFormat.NewSubClass("ParseError")

	// Strict bulk insert would overwrite an existing key.
	ErrKeyAlreadyExist = ekaerr.AlreadyExist.NewSubClass("KeyAlreadyExist")

	// A panic happened while the store was being mutated.
	// The store is unusable after that.
	ErrStorePoisoned = ekaerr.IllegalState.NewSubClass("StorePoisoned")
)
