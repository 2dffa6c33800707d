package service

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrStaleSearch = errors.New("search was replaced by a newer one")
	ErrNoMorePages = errors.New("no more pages")
)
