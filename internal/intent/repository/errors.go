package repository

import "errors"

var (
	ErrInvalidTimeRange = errors.New("event end is before start")
	ErrEmptyTitle       = errors.New("title is empty")
)
