package repository

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrPartialInsert = errors.New("question insert count mismatch")
)
