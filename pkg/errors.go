package dirdupes

import (
	"errors"
	"fmt"
)

// FileReadError reports a regular file that was classified for hashing but could
// not be opened or read to completion. It aborts the scan of the current root.
type FileReadError struct {
	Path string
	Op   string // "open", "stat" or "read"
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to %s file %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// IsFileReadError returns true if err is or wraps a FileReadError
func IsFileReadError(err error) bool {
	var fre *FileReadError
	return errors.As(err, &fre)
}
