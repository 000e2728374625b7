// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"github.com/qioalice/ekago/v2/ekastr"
)

/*
isValidLocaleName reports whether passed s is a valid locale name
that is in one of the following formats "xx", "xx_YY" or "xx-YY", where:
 - xx is a lower case chars of language name ("en", "ru", "jp"),
 - YY is a upper case chars of country name ("US", "GB", "RU").

Store itself accepts any locale name,
it's used only by Loader to find locale names in the file paths.
*/
func isValidLocaleName(s string) bool {
	switch len(s) {
	case 2:
		return ekastr.CharIsLowerCaseLetter(s[0]) &&
			ekastr.CharIsLowerCaseLetter(s[1])
	case 5:
		return ekastr.CharIsLowerCaseLetter(s[0]) &&
			ekastr.CharIsLowerCaseLetter(s[1]) &&
			ekastr.CharIsUpperCaseLetter(s[3]) &&
			ekastr.CharIsUpperCaseLetter(s[4]) &&
			(s[2] == '_' || s[2] == '-')
	default:
		return false
	}
}
