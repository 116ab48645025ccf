package service

import (
	"context"

	"github.com/todolists/todolists/internal/todo"
	"github.com/todolists/todolists/internal/todo/repository"
	"github.com/todolists/todolists/pkg/logger"
	"github.com/todolists/todolists/pkg/metrics"
)

// ItemService implements the default list on top of the flat item collection.
type ItemService struct {
	repo repository.ItemRepository
}

func NewItemService(r repository.ItemRepository) *ItemService {
	return &ItemService{repo: r}
}

// ListDefaultItems returns every default item in insertion order.
func (s *ItemService) ListDefaultItems(ctx context.Context) ([]todo.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeErr("list default items", err)
	}
	return items, nil
}

// SeedDefaultIfEmpty inserts the seed items as one batch when the default
// collection is empty. It runs on every default-list read, so an emptied
// default list is seeded again; concurrent first reads seed once.
func (s *ItemService) SeedDefaultIfEmpty(ctx context.Context) (todo.SeedResult, error) {
	seeded, err := s.repo.SeedIfEmpty(ctx, todo.NewSeedItems())
	if err != nil {
		return todo.AlreadyPopulated, storeErr("seed default items", err)
	}
	if !seeded {
		return todo.AlreadyPopulated, nil
	}
	metrics.SeedsPerformed.WithLabelValues("default").Inc()
	logger.Infof("seeded default list %q", todo.DefaultListName)
	return todo.Seeded, nil
}

// AddDefaultItem appends a new item to the default list.
func (s *ItemService) AddDefaultItem(ctx context.Context, name string) (todo.Item, error) {
	n, err := todo.ValidateItemName(name)
	if err != nil {
		return todo.Item{}, err
	}
	it, err := s.repo.Insert(ctx, todo.Item{Name: n})
	if err != nil {
		return todo.Item{}, storeErr("add default item", err)
	}
	return it, nil
}

// DeleteDefaultItem removes an item from the default list. Unknown ids succeed.
func (s *ItemService) DeleteDefaultItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeErr("delete default item", err)
	}
	return nil
}

// DefaultList seeds the default collection if needed and returns it shaped
// like a custom list.
func (s *ItemService) DefaultList(ctx context.Context) (todo.List, error) {
	if _, err := s.SeedDefaultIfEmpty(ctx); err != nil {
		return todo.List{}, err
	}
	items, err := s.ListDefaultItems(ctx)
	if err != nil {
		return todo.List{}, err
	}
	return todo.List{Name: todo.DefaultListName, Items: items}, nil
}
