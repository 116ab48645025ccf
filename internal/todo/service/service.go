package service

import (
	"fmt"

	"github.com/todolists/todolists/internal/todo"
)

// storeErr wraps a repository failure so callers can match it with
// errors.Is(err, todo.ErrStoreUnavailable) without seeing driver types.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, todo.ErrStoreUnavailable, err)
}
