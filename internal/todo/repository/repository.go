package repository

import (
	"context"
	"errors"

	"github.com/todolists/todolists/internal/todo"
)

// ErrDuplicate is returned by ListRepository.Insert when a list with the same
// name already exists.
var ErrDuplicate = errors.New("list name already exists")

// ItemRepository persists the flat collection backing the default list.
// Items without an id get one assigned on insert.
type ItemRepository interface {
	List(ctx context.Context) ([]todo.Item, error)
	// SeedIfEmpty inserts items as one batch only if the collection is empty,
	// and reports whether it did. Concurrent callers seed at most once.
	SeedIfEmpty(ctx context.Context, items []todo.Item) (bool, error)
	Insert(ctx context.Context, item todo.Item) (todo.Item, error)
	// Delete removes the item with the given id. A missing id is not an error.
	Delete(ctx context.Context, id string) error
}

// ListRepository persists custom lists, one document per name with the items
// embedded. FindByName, PushItem and PullItem return (nil, nil) when no list
// has that name.
type ListRepository interface {
	FindByName(ctx context.Context, name string) (*todo.List, error)
	Insert(ctx context.Context, l todo.List) (*todo.List, error)
	PushItem(ctx context.Context, name string, item todo.Item) (*todo.List, error)
	PullItem(ctx context.Context, name, itemID string) (*todo.List, error)
}
