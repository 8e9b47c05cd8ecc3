package xstrings

import (
	"github.com/pkg/errors"

	"strext/xlog"
)

// WriteFailure is the panic value raised when an append could not reach
// the buffer.
type WriteFailure struct {
	Err error
}

func (f *WriteFailure) Error() string {
	return "xstrings: " + f.Err.Error()
}

func (f *WriteFailure) Unwrap() error { return f.Err }

// Cause returns the error reported by the buffer.
func (f *WriteFailure) Cause() error { return errors.Cause(f.Err) }

func fail(err error) {
	err = errors.Wrap(err, "failed to push to string")
	xlog.Error().Err(err).Msg("append aborted")
	panic(&WriteFailure{Err: err})
}
