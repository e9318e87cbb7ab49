package sample

import "errors"

// IsNoMatchingSample reports whether err indicates an empty demographic bucket.
func IsNoMatchingSample(err error) bool {
	var e NoMatchingSampleError
	return errors.As(err, &e)
}
