package store

import (
	"fmt"

	"github.com/mesh-intelligence/taskman/pkg/types"
)

// DecodeError reports a persisted line that could not be turned into a
// task. It matches types.ErrMalformedRecord under errors.Is.
type DecodeError struct {
	Path string // file being read
	Line int    // 1-based line number
	Err  error  // underlying parse or schema failure
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %v", e.Path, e.Line, types.ErrMalformedRecord, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{types.ErrMalformedRecord, e.Err}
}

// ioError wraps a filesystem failure so it matches types.ErrStorageIO.
func ioError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", types.ErrStorageIO, op, path, err)
}
