package workbook

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrFileLocked indicates the workbook stayed locked by another process
	// for every read attempt.
	ErrFileLocked = errors.New("workbook file is locked")

	// ErrSheetNotFound indicates the workbook has no sheet with the configured name.
	ErrSheetNotFound = errors.New("sheet not found")
)

// AcquireError is returned when the workbook could not be read. It names the
// resolved path and the last underlying error code.
type AcquireError struct {
	Path     string
	Attempts int
	Code     string
	Err      error
}

func (e *AcquireError) Error() string {
	return fmt.Sprintf("reading workbook %q failed after %d attempt(s) (code %s): %v", e.Path, e.Attempts, e.Code, e.Err)
}

func (e *AcquireError) Unwrap() error { return e.Err }

// errorCode extracts a short code for err: the errno when one is present,
// otherwise a coarse class name.
func errorCode(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return fmt.Sprintf("errno %d", uintptr(errno))
	}
	switch {
	case errors.Is(err, ErrFileLocked):
		return "locked"
	case isNotExist(err):
		return "not_found"
	default:
		return "io"
	}
}
