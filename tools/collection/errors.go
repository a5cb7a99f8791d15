package collection

import "errors"

var (
	ValueTooLargeErr    = errors.New("string size exceeds the maximum limit")
	CapacityExceededErr = errors.New("stack capacity reached the maximum limit")
	EmptyStackErr       = errors.New("stack is empty")
)
