// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

type (
	/*
	SourceItem is a type that represents one thing that will be used as a source
	locale data will be load from by a Loader.

	It may represent a file or a RAW data (content)
	in YAML, TOML or JSON format.

	If SourceItem represents a file, Path contains an absolute filepath to that.
	If SourceItem represents a some locale content, Path contains
	the Go source file and line that calls Loader.Source().

	LocaleName is taken from the file name or its parent directory
	(e.g. "locales/en.yaml", "locales/de_DE/messages.toml")
	or from the "__metadata__" section of the content:

	        __metadata__:
	          locale: en

	SourceItem doesn't mean that source it holds is valid.
	*/
	SourceItem struct {
		Type       SourceItemType
		Path       string
		LocaleName string
		content    []byte
		md5        string
	}

	/*
	SourceItemType allows you to know which data SourceItem holds:
	A file? A RAW data? Which format?
	*/
	SourceItemType uint8
)

//goland:noinspection GoSnakeCaseUsage
const (
	SOURCE_ITEM_TYPE_FILE_YAML       SourceItemType = 100
	SOURCE_ITEM_TYPE_FILE_TOML       SourceItemType = 101
	SOURCE_ITEM_TYPE_FILE_JSON       SourceItemType = 102
	SOURCE_ITEM_TYPE_CONTENT_UNKNOWN SourceItemType = 150
	SOURCE_ITEM_TYPE_CONTENT_YAML    SourceItemType = 151
	SOURCE_ITEM_TYPE_CONTENT_TOML    SourceItemType = 152
	SOURCE_ITEM_TYPE_CONTENT_JSON    SourceItemType = 153
)
