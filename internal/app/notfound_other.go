//go:build !unix

package app

import (
	"errors"
	"io/fs"
)

func isNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
