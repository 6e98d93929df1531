//go:build !windows

package workbook

import (
	"errors"
	"io/fs"
	"syscall"
)

// isLockError reports whether err means another process is holding the file.
// On unix an exclusive writer shows up as a permission or would-block error.
func isLockError(err error) bool {
	return errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EBUSY) ||
		errors.Is(err, ErrFileLocked)
}
