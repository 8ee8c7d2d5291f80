// Package archive walks zip archives, the container format page sets are
// shipped and distributed in.
package archive

import (
	"archive/zip"
	"errors"
	"path"
	"strings"
)

// WalkFunc is called by Walk for every matching entry. The archive argument
// is the path of the archive being walked and file is the matching entry.
// Returning an error stops the walk and surfaces that error to the caller.
type WalkFunc func(archive string, file *zip.File) error

// Walk calls walkFn for every regular file in the archive whose name starts
// with prefix. Entries with unsafe names, absolute or escaping the archive
// root through "..", are skipped: they cannot name a page source and would
// invite Zip Slip on extraction.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) || f.FileInfo().IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// isSafePath rejects absolute entry names and names with ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
