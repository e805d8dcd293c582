// Package validate checks the command line inputs before anything touches the network.
package validate

import (
	"errors"
	"path/filepath"
	"strings"
)

const (
	LinkPrefix     = "https://www.volby.cz/pls/ps2017nss/ps32"
	FilenamePrefix = "results_"
	FilenameSuffix = ".csv"
)

var (
	ErrInvalidLink = errors.New(
		"Incorrect URL. Your link should start with: " + LinkPrefix,
	)
	ErrInvalidFilename = errors.New(
		"Incorrect format of the file. Your file should be in the following format: 'results_region.csv'",
	)
)

// CheckLink returns ErrInvalidLink unless `link` starts with `prefix`.
func CheckLink(link, prefix string) error {
	if prefix == "" {
		prefix = LinkPrefix
	}
	if !strings.HasPrefix(link, prefix) {
		return ErrInvalidLink
	}
	return nil
}

// CheckFilename returns ErrInvalidFilename unless the base name of `path`
// looks like results_*.csv. `path` itself has to end with .csv, filepath.Base
// would drop a trailing separator.
func CheckFilename(path string) error {
	name := filepath.Base(path)
	if !strings.HasSuffix(path, FilenameSuffix) ||
		!strings.HasPrefix(name, FilenamePrefix) ||
		!strings.HasSuffix(name, FilenameSuffix) {
		return ErrInvalidFilename
	}
	return nil
}
