package nutrition

import "errors"

var (
	ErrPlanNotFound           = errors.New("nutrition plan not found")
	ErrEmptyDocument          = errors.New("nutrition plan has no weeks")
	ErrInvalidInput           = errors.New("invalid input")
	ErrTargetNotFound         = errors.New("target not found")
	ErrMissingTarget          = errors.New("missing meal or food target")
	ErrConcurrentModification = errors.New("nutrition plan modified concurrently")
)
