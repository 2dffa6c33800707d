package repository

import "errors"

var ErrEmptyCatalog = errors.New("catalog is empty")
