// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"go.uber.org/zap"
)

type (
	/*
	Option configures a Store at New() call.
	*/
	Option func(s *Store)
)

/*
WithLogger makes Store (and Loaders created by it) log to the passed logger.
Mutations are logged at debug level, loaded batches at info level.
Nil logger is ignored. By default nothing is logged.
*/
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.log = logger.Named("trstore")
		}
	}
}
