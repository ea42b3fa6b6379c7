//go:build unix

package app

import (
	"errors"
	"io/fs"
	"syscall"
)

// isNotFound reports whether a stat error means there is no file to read at
// the path. A path through a regular file (ENOTDIR) or a symlink loop (ELOOP)
// resolves to nothing, so both count as missing.
func isNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ELOOP)
}
