// Copyright © 2020. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package trstore

import (
	"crypto/md5"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/qioalice/ekago/v2/ekaerr"
)

//goland:noinspection GoSnakeCaseUsage
const (
	/*
	Source() may scan a directory you specify recursively,
	meaning that if an original directory has a subdirectory(ies),
	it will be scanned also and so on.
	Up to this value.
	*/
	_SOURCE_MAX_RECURSIVELY_DIRECTORY_SCAN = 16
)

/*
sourceString tries to treat source as a path to file or directory.

File.
If it has a supported extension, it's read, its MD5 is calculated,
locale name is looked for in its path and a new SourceItem is placed into dest.
Files with other extensions are skipped.

Directory.
sourceString() is called recursively for each item of directory
with increased deep, until _SOURCE_MAX_RECURSIVELY_DIRECTORY_SCAN.
Caller must call sourceString() with deep == 0.

There is no check or any validation of file's content.
It will be validated at the Load() call.
*/
func (l *Loader) sourceString(dest *[]SourceItem, source string, deep int) *ekaerr.Error {
	const s = "Failed to analyse provided path as a locale source. "

	if source = strings.TrimSpace(source); source == "" {
		return ekaerr.IllegalArgument.
			New(s + "Path is empty.").
			Throw()
	}

	if deep == 0 {
		absSource, legacyErr := filepath.Abs(source)
		if legacyErr != nil {
			return ekaerr.InternalError.
				Wrap(legacyErr, s+"Got relative path, failed to get work directory.").
				AddFields("trstore_source_rel_path", source).
				Throw()
		}
		source = absSource
	}

	fi, legacyErr := os.Stat(source)
	if legacyErr != nil {
		return ekaerr.DataUnavailable.
			Wrap(legacyErr, s+"Failed to get stat of provided path.").
			AddFields("trstore_source_path", source).
			Throw()
	}

	if !fi.IsDir() {
		return l.sourceFile(dest, source)
	}

	// Ok, it's directory.

	if deep == _SOURCE_MAX_RECURSIVELY_DIRECTORY_SCAN {
		return ekaerr.DataUnavailable.
			New(s + "Provided path contains too much nested directories.").
			AddFields("trstore_source_path", source).
			Throw()
	}

	entries, legacyErr := os.ReadDir(source)
	if legacyErr != nil {
		return ekaerr.DataUnavailable.
			Wrap(legacyErr, s+"Failed to scan a directory.").
			AddFields("trstore_source_path", source).
			Throw()
	}

	for _, entry := range entries {
		if err := l.sourceString(dest, filepath.Join(source, entry.Name()), deep+1); err.IsNotNil() {
			return err.
				Throw()
		}
	}

	return nil
}

/*
sourceFile reads the file by source path (absolute)
and places a new SourceItem into dest if the file has a supported extension.
*/
func (l *Loader) sourceFile(dest *[]SourceItem, source string) *ekaerr.Error {
	const s = "Failed to analyse provided file as a locale source. "

	var typ SourceItemType

	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(source), ".")) {
	case "yml", "yaml":
		typ = SOURCE_ITEM_TYPE_FILE_YAML
	case "toml":
		typ = SOURCE_ITEM_TYPE_FILE_TOML
	case "json":
		typ = SOURCE_ITEM_TYPE_FILE_JSON
	default:
		return nil
	}

	f, legacyErr := os.Open(source)
	if legacyErr != nil {
		return ekaerr.DataUnavailable.
			Wrap(legacyErr, s+"Failed to open provided path.").
			AddFields("trstore_source_path", source).
			Throw()
	}

	//goland:noinspection GoUnhandledErrorResult
	defer f.Close()

	h := md5.New()
	l.buf.Reset()

	// We will:
	//  - read file storing its data to the RAM
	//  - calculate MD5 hash sum
	// at the one iteration, chunk by chunk.
	mw := io.MultiWriter(h, &l.buf)

	if _, legacyErr = io.Copy(mw, f); legacyErr != nil {
		return ekaerr.DataUnavailable.
			Wrap(legacyErr, s+"Failed to read file and calculate its MD5 hash sum.").
			AddFields("trstore_source_path", source).
			Throw()
	}

	item := SourceItem{
		Type:    typ,
		Path:    source,
		content: append([]byte(nil), l.buf.Bytes()...),
		md5:     string(h.Sum(nil)),
	}

	item.findLocaleInFilepath()
	*dest = append(*dest, item)
	return nil
}

/*
sourceBytes creates a new SourceItem for passed bytearray if it's not empty
and places it into dest.
There is no check or any validation of the byte content.
It will be validated at the Load() call.
*/
func (l *Loader) sourceBytes(dest *[]SourceItem, b []byte) *ekaerr.Error {
	const s = "Failed to analyse provided RAW data as a locale source. "

	_, file, lineNumber, ok := runtime.Caller(2)
	if ok && file != "" {
		file += ":" + strconv.Itoa(lineNumber)
	} else {
		file = "Source undefined. Failed to extract caller information."
	}

	if len(b) == 0 {
		return ekaerr.IllegalFormat.
			New(s + "Empty RAW data.").
			AddFields("trstore_source_path", file).
			Throw()
	}

	sum := md5.Sum(b)

	*dest = append(*dest, SourceItem{
		Type:    SOURCE_ITEM_TYPE_CONTENT_UNKNOWN,
		Path:    file,
		content: append([]byte(nil), b...),
		md5:     string(sum[:]),
	})
	return nil
}
