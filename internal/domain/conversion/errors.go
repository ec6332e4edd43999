package conversion

import "errors"

var (
	ErrConversionNotFound = errors.New("conversion not found")
	ErrRewriteFailed      = errors.New("cv rewrite failed")
)
