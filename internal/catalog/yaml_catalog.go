package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Version int    `yaml:"version"`
	Roles   []Role `yaml:"roles,omitempty"`
	Items   []Item `yaml:"items"`
}

type YAMLCatalog struct {
	path  string
	items map[string]Item
	roles []Role
	mu    sync.RWMutex
}

var _ Catalog = (*YAMLCatalog)(nil)

func NewYAMLCatalog(path string) (*YAMLCatalog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	return &YAMLCatalog{
		path:  path,
		items: make(map[string]Item),
	}, nil
}

func (c *YAMLCatalog) Path() string {
	return c.path
}

func (c *YAMLCatalog) Add(it Item) error {
	if err := it.ValidateAndNormalize(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[it.ID]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, it.ID)
	}

	c.items[it.ID] = it
	return nil
}

func (c *YAMLCatalog) Get(id string) (Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, ok := c.items[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return it, nil
}

func (c *YAMLCatalog) Update(it Item) error {
	if err := it.ValidateAndNormalize(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[it.ID]; !ok {
		return ErrNotFound
	}

	it.Touch()
	c.items[it.ID] = it
	return nil
}

func (c *YAMLCatalog) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return ErrNotFound
	}

	delete(c.items, id)
	return nil
}

// List returns every item ordered by DisplayOrder, ties broken by ID.
func (c *YAMLCatalog) List() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.listUnlocked()
}

func (c *YAMLCatalog) listUnlocked() []Item {
	items := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		items = append(items, it)
	}
	sortItems(items)
	return items
}

func sortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.DisplayOrder == b.DisplayOrder {
			return a.ID < b.ID
		}
		return a.DisplayOrder < b.DisplayOrder
	})
}

func (c *YAMLCatalog) Search(query string) []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := c.listUnlocked()
	if query == "" {
		return all
	}

	query = strings.ToLower(query)
	var results []Item
	for _, it := range all {
		if matchesQuery(it, query) {
			results = append(results, it)
		}
	}
	return results
}

func matchesQuery(it Item, query string) bool {
	if strings.EqualFold(it.ID, query) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Title), query) {
		return true
	}
	for _, tag := range it.Technologies {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func (c *YAMLCatalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *YAMLCatalog) FetchItems(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.List(), nil
}

func (c *YAMLCatalog) FetchRoles(ctx context.Context) ([]Role, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.Roles(), nil
}

func (c *YAMLCatalog) Roles() []Role {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.roles)
}

func (c *YAMLCatalog) AddRole(r Role) error {
	r, err := NewRole(r.Name, r.Color)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if slices.ContainsFunc(c.roles, func(existing Role) bool { return existing.Name == r.Name }) {
		return fmt.Errorf("%w: %s", ErrRoleExists, r.Name)
	}
	c.roles = append(c.roles, r)
	return nil
}

// RemoveRole drops the role metadata. Items keep the tag; it simply falls
// back to the default chip color.
func (c *YAMLCatalog) RemoveRole(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.roles, func(r Role) bool { return r.Name == name })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrRoleNotFound, name)
	}
	c.roles = slices.Delete(c.roles, idx, idx+1)
	return nil
}

func (c *YAMLCatalog) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	file := catalogFile{
		Version: 1,
		Roles:   c.roles,
		Items:   c.listUnlocked(),
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpPath, c.path)
}

func (c *YAMLCatalog) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse catalog file %q: %w", c.path, err)
	}

	c.items = make(map[string]Item, len(file.Items))
	for _, it := range file.Items {
		c.items[it.ID] = it
	}
	c.roles = file.Roles

	return nil
}
