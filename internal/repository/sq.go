package repository

import (
	"errors"

	"github.com/Masterminds/squirrel"
)

var SqBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var ErrBadQuery = errors.New("bad query")

// Nullable maps "" to SQL NULL.
func Nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref maps SQL NULL to "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
