package store

import (
	"context"
	"fmt"
	"net/url"

	"go-resto-manager/internal/models"
)

// Collection gives typed CRUD access to one named collection.
type Collection[T any] struct {
	client *Client
	name   string
}

func NewCollection[T any](c *Client, name string) Collection[T] {
	return Collection[T]{client: c, name: name}
}

type queryRequest struct {
	Query map[string]any `json:"query,omitempty"`
}

type queryResponse[T any] struct {
	Items []T `json:"items"`
}

type createRequest[T any] struct {
	Item T `json:"item"`
}

type patchRequest struct {
	Set map[string]any `json:"set"`
}

// List fetches every record in the collection. An empty slice with a nil
// error genuinely means the collection is empty; transport and server
// failures come back as errors, never as empty data.
func (col Collection[T]) List(ctx context.Context) ([]T, error) {
	var resp queryResponse[T]
	if err := col.client.do(ctx, "POST", "/"+col.name+"/query", queryRequest{}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// ListBy fetches records matching an equality filter on a single field.
func (col Collection[T]) ListBy(ctx context.Context, field string, value any) ([]T, error) {
	var resp queryResponse[T]
	req := queryRequest{Query: map[string]any{field: value}}
	if err := col.client.do(ctx, "POST", "/"+col.name+"/query", req, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Create persists a new record. The store assigns the key when the item
// carries none; the returned value includes it.
func (col Collection[T]) Create(ctx context.Context, item T) (T, error) {
	var created T
	if err := col.client.do(ctx, "POST", "/"+col.name+"/items", createRequest[T]{Item: item}, &created); err != nil {
		return created, err
	}
	return created, nil
}

// Update applies a partial field replace to the record under key.
func (col Collection[T]) Update(ctx context.Context, key string, patch map[string]any) error {
	if key == "" {
		return fmt.Errorf("store: update %s: empty key", col.name)
	}
	return col.client.do(ctx, "PATCH", "/"+col.name+"/items/"+url.PathEscape(key), patchRequest{Set: patch}, nil)
}

// Delete removes the record under key.
func (col Collection[T]) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("store: delete %s: empty key", col.name)
	}
	return col.client.do(ctx, "DELETE", "/"+col.name+"/items/"+url.PathEscape(key), nil, nil)
}

// Store bundles the typed collections the dashboard works with.
type Store struct {
	Menu     Collection[models.MenuItem]
	Orders   Collection[models.Order]
	Expenses Collection[models.Expense]
	Debts    Collection[models.Debt]
	Notes    Collection[models.Note]
	Users    Collection[models.User]
	AILogs   Collection[models.AILog]
}

func New(c *Client) *Store {
	return &Store{
		Menu:     NewCollection[models.MenuItem](c, "menu"),
		Orders:   NewCollection[models.Order](c, "orders"),
		Expenses: NewCollection[models.Expense](c, "expenses"),
		Debts:    NewCollection[models.Debt](c, "debts"),
		Notes:    NewCollection[models.Note](c, "notes"),
		Users:    NewCollection[models.User](c, "users"),
		AILogs:   NewCollection[models.AILog](c, "ai_logs"),
	}
}
