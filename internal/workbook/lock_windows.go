//go:build windows

package workbook

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/windows"
)

// isLockError reports whether err means another process is holding the file.
// Excel keeps an open workbook under a sharing or lock violation.
func isLockError(err error) bool {
	return errors.Is(err, windows.ERROR_SHARING_VIOLATION) ||
		errors.Is(err, windows.ERROR_LOCK_VIOLATION) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, ErrFileLocked)
}
