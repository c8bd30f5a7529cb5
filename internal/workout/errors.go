package workout

import "errors"

var (
	ErrProgramNotFound        = errors.New("program not found")
	ErrEmptyDocument          = errors.New("program has no weeks")
	ErrInvalidInput           = errors.New("invalid input")
	ErrTargetNotFound         = errors.New("target not found")
	ErrMissingTarget          = errors.New("missing exercise target")
	ErrConcurrentModification = errors.New("program modified concurrently")
)
