// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"strings"

	"github.com/qioalice/ekago/v2/ekaerr"

	"gopkg.in/yaml.v3"
)

var (
	/*
	loadContentUnknownResolvers are tried one by one for RAW contents
	until one of them decodes it successfully.
	JSON goes first, since a JSON document is a valid YAML one too.
	*/
	loadContentUnknownResolvers = []struct {
		Unmarshaler    func(d []byte, v interface{}) error
		AssociatedType SourceItemType
	}{
		{
			Unmarshaler:    jsonAPI.Unmarshal,
			AssociatedType: SOURCE_ITEM_TYPE_CONTENT_JSON,
		},
		{
			Unmarshaler:    yaml.Unmarshal,
			AssociatedType: SOURCE_ITEM_TYPE_CONTENT_YAML,
		},
		{
			Unmarshaler:    tomlUnmarshal,
			AssociatedType: SOURCE_ITEM_TYPE_CONTENT_TOML,
		},
	}
)

/*
parseAll parses each source and groups their trees by locale name.
If overwrite is false, two sources that define the same phrase
of the same locale is an error.
*/
func (l *Loader) parseAll(sources []SourceItem, overwrite bool) (map[string]Node, *ekaerr.Error) {

	var (
		batch   = make(map[string]Node)
		origins = make(map[string]string) // locale -> paths of sources, for errors
	)

	for i := range sources {
		tree, err := l.parse(&sources[i])
		if err.IsNotNil() {
			return nil, err.
				AddFields("trstore_source", sources[i].Path).
				Throw()
		}

		locale := sources[i].LocaleName
		existing, found := batch[locale]

		switch {
		case !found:
			batch[locale] = tree
			origins[locale] = sources[i].Path
			continue

		case !overwrite:
			if keys := conflicts(existing, tree, ""); len(keys) > 0 {
				return nil, ErrKeyAlreadyExist.
					New("Two sources define the same translations.").
					AddFields(
						"trstore_locale", locale,
						"trstore_keys", strings.Join(keys, ", "),
						"trstore_source_applied", origins[locale],
						"trstore_source", sources[i].Path).
					Throw()
			}
		}

		batch[locale] = merge(existing, tree)
		origins[locale] += ", " + sources[i].Path
	}

	return batch, nil
}

/*
parse decodes the content of SourceItem, extracts its metadata
and converts the rest to a Branch Node.
*/
func (l *Loader) parse(sourceItem *SourceItem) (Node, *ekaerr.Error) {
	const s = "Failed to load sourced locale. "

	var (
		err       *ekaerr.Error
		legacyErr error
		rootMap   = make(map[string]interface{})
	)

	switch sourceItem.Type {

	case SOURCE_ITEM_TYPE_FILE_YAML:
		legacyErr = yaml.Unmarshal(sourceItem.content, &rootMap)

	case SOURCE_ITEM_TYPE_FILE_TOML:
		legacyErr = tomlUnmarshal(sourceItem.content, &rootMap)

	case SOURCE_ITEM_TYPE_FILE_JSON:
		legacyErr = jsonAPI.Unmarshal(sourceItem.content, &rootMap)

	case SOURCE_ITEM_TYPE_CONTENT_UNKNOWN:
		for _, contentResolver := range loadContentUnknownResolvers {
			rootMap = make(map[string]interface{})
			legacyErr = contentResolver.Unmarshaler(sourceItem.content, &rootMap)
			if legacyErr == nil {
				sourceItem.Type = contentResolver.AssociatedType
				break
			}
		}

	default:
		// You should never see this error, because otherwise it's a bug.
		return Node{}, ekaerr.InternalError.
			New(s + "Unexpected type of SourceItem. This is a bug.").
			Throw()
	}

	if legacyErr != nil {
		return Node{}, ErrParse.
			Wrap(legacyErr, s+"Failed to decode content.").
			Throw()
	}

	if len(rootMap) == 0 {
		return Node{}, ErrParse.
			New(s + "Content has a valid format but it's empty.").
			Throw()
	}

	if err = sourceItem.loadMetaData(rootMap); err.IsNotNil() {
		return Node{}, err.
			AddMessage(s).
			Throw()
	}

	tree, legacyErr := nodeOf(rootMap, "")
	if legacyErr != nil {
		return Node{}, ErrParse.
			Wrap(legacyErr, s+"Unexpected content structure.").
			AddFields("trstore_locale", sourceItem.LocaleName).
			Throw()
	}

	return tree, nil
}
