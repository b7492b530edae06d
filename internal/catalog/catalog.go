package catalog

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("item not found")
	ErrAlreadyExists = errors.New("item already exists")
)

// DataSource is the read side consumed by gallery hosts. It always returns
// the full collection; publication filtering is left to the caller.
type DataSource interface {
	FetchItems(ctx context.Context) ([]Item, error)
	FetchRoles(ctx context.Context) ([]Role, error)
}

type Catalog interface {
	DataSource

	Add(it Item) error
	Get(id string) (Item, error)
	Update(it Item) error
	Remove(id string) error
	List() []Item
	Search(query string) []Item
	Count() int

	Roles() []Role
	AddRole(r Role) error
	RemoveRole(name string) error

	Save() error
	Load() error
}
