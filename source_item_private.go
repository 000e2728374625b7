// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"path/filepath"
	"strings"

	"github.com/qioalice/ekago/v2/ekaerr"
	"github.com/qioalice/ekago/v2/ekaunsafe"

	"github.com/modern-go/reflect2"
)

var (
	rtypeArrInterface          = reflect2.RTypeOf([]interface{}(nil))
	rtypeArrMapStringInterface = reflect2.RTypeOf([]map[string]interface{}(nil))
)

/*
loadMetaData tries to find and remove a "__metadata__" section of root
(the key is case insensitive) and to extract the locale name from it.

Metadata is optional if the locale name is already known from the filepath.
If both are present, they must be the same.
*/
func (si *SourceItem) loadMetaData(root map[string]interface{}) *ekaerr.Error {
	const s = "Failed to find or parse metadata of content. "

	var (
		metaDataOriginalKey string
		metaData            interface{}
		metaDataMap         map[string]interface{}
	)

	for key, value := range root {

		// May happen more than one times because of strings.ToLower().
		// So, if root has "__MeTaDaTa__" and "__Metadata__" nodes,
		// this iteration will work for both of them.

		switch proceed := strings.ToLower(key) == "__metadata__"; {

		case proceed && metaData == nil:
			metaDataOriginalKey = key
			metaData = value

		case proceed && metaData != nil:
			return ErrParse.
				New(s + "Metadata found but is ambiguous. Found two or more sections.").
				AddFields(
					"trstore_metadata_key_1", metaDataOriginalKey,
					"trstore_metadata_key_2", key).
				Throw()
		}
	}

	if metaData == nil {
		if si.LocaleName == "" {
			return ErrParse.
				New(s + "Locale name is not found neither in filepath nor in metadata.").
				Throw()
		}
		return nil
	}

	delete(root, metaDataOriginalKey)

	// Value must be an object or an array with one object.
	switch t := reflect2.TypeOf(metaData); t.RType() {

	case ekaunsafe.RTypeMapStringInterface():
		metaDataMap = metaData.(map[string]interface{})

	case rtypeArrMapStringInterface:
		arr := metaData.([]map[string]interface{})
		if len(arr) != 1 {
			return ErrParse.
				New(s + "Metadata found but is ambiguous. Found two or more objects.").
				AddFields("trstore_metadata_key", metaDataOriginalKey).
				Throw()
		}
		metaDataMap = arr[0]

	case rtypeArrInterface:
		arr := metaData.([]interface{})
		if len(arr) == 1 {
			metaDataMap, _ = arr[0].(map[string]interface{})
		}
		if metaDataMap == nil {
			return ErrParse.
				New(s + "Metadata found but is ambiguous. Should be one object.").
				AddFields("trstore_metadata_key", metaDataOriginalKey).
				Throw()
		}

	default:
		return ErrParse.
			New(s + "Metadata tag found but has an incorrect type. Should be an object.").
			AddFields(
				"trstore_metadata_key", metaDataOriginalKey,
				"trstore_metadata_type", t.String()).
			Throw()
	}

	var localeName string

	for key, value := range metaDataMap {
		switch strings.ToLower(key) {

		case "locale_name", "localename", "locale", "name":
			name, ok := value.(string)
			switch {
			case !ok && value == nil:
				return ErrParse.
					New(s + "Metadata found, but locale name is null.").
					AddFields("trstore_metadata_key", metaDataOriginalKey).
					Throw()

			case !ok:
				return ErrParse.
					New(s + "Metadata found, but locale name has an incorrect type.").
					AddFields(
						"trstore_metadata_key", metaDataOriginalKey,
						"trstore_metadata_locale_name_type", reflect2.TypeOf(value).String()).
					Throw()

			case localeName != "" && localeName != name:
				return ErrParse.
					New(s + "Metadata found, but locale name is ambiguous. " +
						"Found two or more locale names.").
					AddFields("trstore_metadata_key", metaDataOriginalKey).
					Throw()
			}
			localeName = name
		}
	}

	switch {

	case localeName == "" && si.LocaleName == "":
		return ErrParse.
			New(s + "Metadata found, but locale name is not provided or empty.").
			AddFields("trstore_metadata_key", metaDataOriginalKey).
			Throw()

	case localeName == "":
		return nil

	case !isValidLocaleName(localeName):
		return ErrParse.
			New(s + "Metadata found but locale name has an incorrect format. " +
				"Should be: xx, xx_YY or xx-YY.").
			AddFields(
				"trstore_metadata_key", metaDataOriginalKey,
				"trstore_locale", localeName).
			Throw()

	case si.LocaleName != "" && si.LocaleName != localeName:
		return ErrParse.
			New(s + "Locale name from metadata differs from the one from filepath.").
			AddFields(
				"trstore_locale_filepath", si.LocaleName,
				"trstore_locale_metadata", localeName).
			Throw()
	}

	si.LocaleName = localeName
	return nil
}

/*
findLocaleInFilepath tries to find a locale name in the file name
and, if there is none, in the name of its directory.
Names are split by '.' and ' ', so "en.yaml", "messages.en_US.toml",
"de-DE/common.json" are all recognized.

The token closest to the file extension wins: "ui.en.yaml" is "en",
"assets/js/en.json" is "en", "de/fr.yaml" is "fr".
LocaleName stays empty if filepath doesn't have a locale name.
*/
func (si *SourceItem) findLocaleInFilepath() {

	const SEPARATORS = ". "

	var (
		fileName = filepath.Base(si.Path)
		dirName  = filepath.Base(filepath.Dir(si.Path))
	)

	fileName = strings.TrimSuffix(fileName, filepath.Ext(fileName))

	for _, part := range []string{fileName, dirName} {
		tokens := strings.FieldsFunc(part, func(r rune) bool {
			return strings.ContainsRune(SEPARATORS, r)
		})
		for i := len(tokens) - 1; i >= 0; i-- {
			if isValidLocaleName(tokens[i]) {
				si.LocaleName = tokens[i]
				return
			}
		}
	}
}

/*
dedupeKey identifies the source's locale and content.
RAW contents have no locale name until Load(), so for them it's the content only.
*/
func (si *SourceItem) dedupeKey() string {
	return si.LocaleName + "\x00" + si.md5
}
