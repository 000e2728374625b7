// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type (
	/*
	interpolator is a helper tool to interpolate a string.
	It's a worker that takes a values from args by their keys and substitutes
	them to the phrase instead of the same name placeholders
	using strings.Builder to accumulate result.

	The phrase is scanned once, from left to right.
	Substituted values are written to the builder and never scanned again,
	so a value that looks like a placeholder ("{name}") stays as is.
	*/
	interpolator struct {
		args    Args
		builder strings.Builder
		rem     string
	}
)

/*
isIdentRune reports whether r may be a part of placeholder's name.
Letters, digits, marks, connector punctuation ('_' included).
*/
func isIdentRune(r rune) bool {
	return r == '_' ||
		unicode.IsLetter(r) ||
		unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}

/*
placeholderLen returns the length in bytes of the placeholder
the s starts with (braces included), or 0 if s doesn't start with it.
*/
func placeholderLen(s string) int {
	if len(s) < 3 || s[0] != '{' {
		return 0
	}
	for i := 1; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == '}' && i > 1:
			return i + 1
		case !isIdentRune(r):
			return 0
		}
		i += size
	}
	return 0
}

/*
cbFoundVerb writes corresponding argument from args if it exists,
or keeps placeholder untouched and writes it as just text.
*/
func (ir *interpolator) cbFoundVerb(p string) {
	if arg, found := ir.args[p[1:len(p)-1]]; found {
		_, _ = ir.builder.WriteString(arg)
	} else {
		_, _ = ir.builder.WriteString(p)
	}
}

func (ir *interpolator) cbFoundText(p string) {
	_, _ = ir.builder.WriteString(p)
}

/*
interpolate does interpolation of translation phrase and its provided arguments.
*/
func (ir *interpolator) interpolate() string {
	for ir.rem != "" {
		idx := strings.IndexByte(ir.rem, '{')
		if idx == -1 {
			ir.cbFoundText(ir.rem)
			break
		}

		ir.cbFoundText(ir.rem[:idx])
		ir.rem = ir.rem[idx:]

		if n := placeholderLen(ir.rem); n != 0 {
			ir.cbFoundVerb(ir.rem[:n])
			ir.rem = ir.rem[n:]
		} else {
			ir.cbFoundText(ir.rem[:1])
			ir.rem = ir.rem[1:]
		}
	}
	return ir.builder.String()
}

func newInterpolator(phrase string, args Args) *interpolator {
	i := &interpolator{
		args: args,
		rem:  phrase,
	}
	i.builder.Grow(len(phrase) + 128)
	return i
}

/*
format substitutes "{name}" placeholders of phrase by args.
Unknown placeholders remain as is.
Returns phrase itself if there are no args.
*/
func format(phrase string, args Args) string {
	if len(args) == 0 || strings.IndexByte(phrase, '{') == -1 {
		return phrase
	}
	return newInterpolator(phrase, args).interpolate()
}
