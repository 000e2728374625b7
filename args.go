// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

type (
	/*
	Args represents map of arguments
	that are used for interpolating translated phrase.
	Key is a placeholder's name without braces.
	*/
	Args map[string]string
)
