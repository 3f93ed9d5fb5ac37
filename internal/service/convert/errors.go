package convert

import "errors"

var (
	ErrFileNotFound = errors.New("file not found")
	ErrNoOperation  = errors.New("no operation selected")
)
