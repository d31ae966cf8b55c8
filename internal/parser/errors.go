package parser

import "errors"

var (
	ErrMissingColumn = errors.New("required csv column is missing")
	ErrEmptyInput    = errors.New("csv input has no header")
)
