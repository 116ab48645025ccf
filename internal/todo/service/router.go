package service

import (
	"context"

	"github.com/todolists/todolists/internal/todo"
)

// Router sends the default list to the flat item collection and every other
// name to the list documents. Mutations of the default list return the
// refreshed default list.
type Router struct {
	Items *ItemService
	Lists *ListService
}

func NewRouter(items *ItemService, lists *ListService) *Router {
	return &Router{Items: items, Lists: lists}
}

func (r *Router) Load(ctx context.Context, name string) (todo.List, error) {
	if todo.IsDefault(name) {
		return r.Items.DefaultList(ctx)
	}
	return r.Lists.GetOrCreate(ctx, name)
}

func (r *Router) Add(ctx context.Context, listName, itemName string) (todo.List, error) {
	if todo.IsDefault(listName) {
		if _, err := r.Items.AddDefaultItem(ctx, itemName); err != nil {
			return todo.List{}, err
		}
		return r.Items.DefaultList(ctx)
	}
	return r.Lists.AppendItem(ctx, listName, todo.Item{Name: itemName})
}

func (r *Router) Remove(ctx context.Context, listName, itemID string) (todo.List, error) {
	if todo.IsDefault(listName) {
		if err := r.Items.DeleteDefaultItem(ctx, itemID); err != nil {
			return todo.List{}, err
		}
		return r.Items.DefaultList(ctx)
	}
	return r.Lists.RemoveItem(ctx, listName, itemID)
}
