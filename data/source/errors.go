package source

import "errors"

var (
	ErrDuplicateBookID = errors.New("duplicate book id")
	ErrEmptyBookID     = errors.New("empty book id")
)
