// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"sync/atomic"
)

//goland:noinspection GoSnakeCaseUsage
const (
	_LLS_STANDBY        uint32 = 0
	_LLS_SOURCE_PENDING uint32 = 1
	_LLS_LOAD_PENDING   uint32 = 2
)

func (l *Loader) isValid() bool {
	return l != nil && l.owner != nil
}

func (l *Loader) changeState(from, to uint32) bool {
	return atomic.CompareAndSwapUint32(&l.state, from, to)
}

func (l *Loader) changeStateForce(to uint32) {
	atomic.StoreUint32(&l.state, to)
}

func strState(v uint32) string {
	switch v {
	case _LLS_STANDBY:
		return "<standby mode>"
	case _LLS_SOURCE_PENDING:
		return "<analyzing locale sources>"
	case _LLS_LOAD_PENDING:
		return "<loading locales>"
	default:
		return "<unknown>"
	}
}
