package workbook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/prodsched/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	DefaultAttempts = 3
	DefaultBackoff  = 250 * time.Millisecond
)

// Acquirer reads the schedule workbook while another process (usually Excel)
// may be holding it open. The function fields are seams for tests; nil fields
// fall back to the os package.
type Acquirer struct {
	Attempts int
	Backoff  time.Duration
	Logger   *slog.Logger

	ReadFile    func(path string) ([]byte, error)
	CopyToTemp  func(path string) (string, error)
	Remove      func(path string) error
	Sleep       func(ctx context.Context, d time.Duration) error
	InstallRoot func() (string, error)
}

// NewAcquirer creates an Acquirer with the given retry policy.
func NewAcquirer(attempts int, backoff time.Duration, logger *slog.Logger) *Acquirer {
	if attempts < 1 {
		attempts = DefaultAttempts
	}
	if backoff < 0 {
		backoff = DefaultBackoff
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Acquirer{Attempts: attempts, Backoff: backoff, Logger: logger}
}

// Resolve picks the path to read: primary when it exists, else fallback
// joined to the installation root when that exists, else primary so the
// eventual error names a meaningful path.
func (a *Acquirer) Resolve(primary, fallback string) string {
	if exists(primary) {
		return primary
	}
	if fallback != "" {
		root, err := a.installRoot()
		if err == nil {
			candidate := fallback
			if !filepath.IsAbs(candidate) {
				candidate = filepath.Join(root, fallback)
			}
			if exists(candidate) {
				return candidate
			}
		}
	}
	return primary
}

// Acquire resolves, reads, and opens the workbook. The returned AcquireInfo
// is populated on failure as well as success. No partial workbook is ever
// returned.
func (a *Acquirer) Acquire(ctx context.Context, primary, fallback string) (*excelize.File, domain.AcquireInfo, error) {
	path := a.Resolve(primary, fallback)
	info := domain.AcquireInfo{ResolvedPath: path}

	attempts := a.Attempts
	if attempts < 1 {
		attempts = DefaultAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		info.Attempts = attempt
		data, usedCopy, err := a.readOnce(path)
		info.UsedTempCopy = usedCopy
		if err == nil {
			f, openErr := excelize.OpenReader(bytes.NewReader(data))
			if openErr != nil {
				err := fmt.Errorf("opening workbook %q: %w", path, openErr)
				info.Error = err.Error()
				return nil, info, err
			}
			return f, info, nil
		}

		lastErr = err
		if !isLockError(err) {
			break
		}
		if attempt < attempts {
			a.logger().Warn("workbook locked, retrying",
				"path", path, "attempt", attempt, "backoff_ms", a.Backoff.Milliseconds(), "error", err.Error())
			if sleepErr := a.sleep(ctx, a.Backoff); sleepErr != nil {
				lastErr = sleepErr
				break
			}
		}
	}

	code := errorCode(lastErr)
	if isLockError(lastErr) {
		lastErr = fmt.Errorf("%w: %w", ErrFileLocked, lastErr)
	}
	acqErr := &AcquireError{Path: path, Attempts: info.Attempts, Code: code, Err: lastErr}
	info.Error = acqErr.Error()
	return nil, info, acqErr
}

// readOnce reads path into memory, falling back to a private temp copy when
// the direct read hits a lock. usedCopy is true only when the copy was read.
// The temp copy is removed best-effort.
func (a *Acquirer) readOnce(path string) ([]byte, bool, error) {
	read := a.ReadFile
	if read == nil {
		read = os.ReadFile
	}

	data, err := read(path)
	if err == nil {
		return data, false, nil
	}
	if !isLockError(err) {
		return nil, false, err
	}

	copyFn := a.CopyToTemp
	if copyFn == nil {
		copyFn = copyToTemp
	}
	tmp, err := copyFn(path)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		remove := a.Remove
		if remove == nil {
			remove = os.Remove
		}
		if rmErr := remove(tmp); rmErr != nil {
			a.logger().Debug("temp copy not removed", "path", tmp, "error", rmErr.Error())
		}
	}()

	data, err = read(tmp)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (a *Acquirer) installRoot() (string, error) {
	if a.InstallRoot != nil {
		return a.InstallRoot()
	}
	return ExeDir()
}

// ExeDir returns the directory of the running executable.
func ExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

func (a *Acquirer) sleep(ctx context.Context, d time.Duration) error {
	if a.Sleep != nil {
		return a.Sleep(ctx, d)
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (a *Acquirer) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.Logger
}

func copyToTemp(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "prodsched-*"+filepath.Ext(path))
	if err != nil {
		return "", fmt.Errorf("creating temp copy: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("copying to temp: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("closing temp copy: %w", err)
	}
	return dst.Name(), nil
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
