package portfolio

import "errors"

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrInvalidDataset  = errors.New("invalid portfolio dataset")
)
