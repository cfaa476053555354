package apperr

import (
	"errors"
	"fmt"
)

// ชนิด error ที่ controller ต้องแยก map เป็น HTTP status
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)

func NotFound(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func Conflict(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

func InvalidState(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidState)...)
}
