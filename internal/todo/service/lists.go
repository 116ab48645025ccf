package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/todolists/todolists/internal/todo"
	"github.com/todolists/todolists/internal/todo/repository"
	"github.com/todolists/todolists/pkg/logger"
	"github.com/todolists/todolists/pkg/metrics"
)

// ListService implements custom lists: lookup-or-create and item membership.
// Names are normalized before every lookup or insert.
type ListService struct {
	repo repository.ListRepository
}

func NewListService(r repository.ListRepository) *ListService {
	return &ListService{repo: r}
}

// validListName normalizes a custom list name. The default list lives in the
// item collection and never gets a list document.
func validListName(name string) (string, error) {
	n := todo.NormalizeName(name)
	if n == "" {
		return "", fmt.Errorf("%w: list name is required", todo.ErrValidation)
	}
	if n == todo.DefaultListName {
		return "", fmt.Errorf("%w: %q is the default list", todo.ErrValidation, n)
	}
	return n, nil
}

// GetOrCreate returns the list with the given name, creating it with fresh
// seed items when it does not exist. An existing list is returned untouched,
// even when it has been emptied.
func (s *ListService) GetOrCreate(ctx context.Context, name string) (todo.List, error) {
	n, err := validListName(name)
	if err != nil {
		return todo.List{}, err
	}
	l, err := s.repo.FindByName(ctx, n)
	if err != nil {
		return todo.List{}, storeErr("find list", err)
	}
	if l != nil {
		return *l, nil
	}

	created, err := s.repo.Insert(ctx, todo.List{Name: n, Items: todo.NewSeedItems()})
	if errors.Is(err, repository.ErrDuplicate) {
		metrics.DuplicateListRetries.Inc()
		logger.Debugf("list %q created concurrently, reading winner", n)
		return s.lookupExisting(ctx, n)
	}
	if err != nil {
		return todo.List{}, storeErr("create list", err)
	}
	metrics.ListsCreated.WithLabelValues("get").Inc()
	metrics.SeedsPerformed.WithLabelValues("custom").Inc()
	logger.Infof("created list %q with seed items", n)
	return *created, nil
}

// AppendItem adds item to the end of the named list. A missing list is
// created holding only this item; seed items are not added on this path.
func (s *ListService) AppendItem(ctx context.Context, listName string, item todo.Item) (todo.List, error) {
	n, err := validListName(listName)
	if err != nil {
		return todo.List{}, err
	}
	if item.Name, err = todo.ValidateItemName(item.Name); err != nil {
		return todo.List{}, err
	}
	l, err := s.repo.FindByName(ctx, n)
	if err != nil {
		return todo.List{}, storeErr("find list", err)
	}
	if l == nil {
		created, err := s.repo.Insert(ctx, todo.List{Name: n, Items: []todo.Item{item}})
		if err == nil {
			metrics.ListsCreated.WithLabelValues("append").Inc()
			logger.Infof("created list %q on first append", n)
			return *created, nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return todo.List{}, storeErr("create list", err)
		}
		metrics.DuplicateListRetries.Inc()
		logger.Debugf("list %q created concurrently, appending to winner", n)
	}

	updated, err := s.repo.PushItem(ctx, n, item)
	if err != nil {
		return todo.List{}, storeErr("append item", err)
	}
	if updated == nil {
		// lists are never deleted, so a vanished list means the store lost it
		return todo.List{}, storeErr("append item", fmt.Errorf("list %q: %w", n, todo.ErrNotFound))
	}
	return *updated, nil
}

// RemoveItem deletes the item with itemID from the named list. A missing list
// or item is a no-op; a missing list is not created.
func (s *ListService) RemoveItem(ctx context.Context, listName, itemID string) (todo.List, error) {
	n, err := validListName(listName)
	if err != nil {
		return todo.List{}, err
	}
	updated, err := s.repo.PullItem(ctx, n, itemID)
	if err != nil {
		return todo.List{}, storeErr("remove item", err)
	}
	if updated == nil {
		return todo.List{Name: n, Items: []todo.Item{}}, nil
	}
	return *updated, nil
}

func (s *ListService) lookupExisting(ctx context.Context, name string) (todo.List, error) {
	l, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return todo.List{}, storeErr("find list", err)
	}
	if l == nil {
		return todo.List{}, storeErr("find list", fmt.Errorf("list %q: %w", name, todo.ErrNotFound))
	}
	return *l, nil
}
