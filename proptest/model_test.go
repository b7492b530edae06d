package proptest

import (
	"errors"
	"slices"

	"folio/internal/catalog"

	"pgregory.net/rapid"
)

// CatalogModel is the reference the YAML catalog is checked against: a map
// from id to the last accepted item.
type CatalogModel struct {
	items map[string]catalog.Item
	roles []string
}

func newCatalogModel() *CatalogModel {
	return &CatalogModel{items: make(map[string]catalog.Item)}
}

func (m *CatalogModel) Add(it catalog.Item) error {
	if _, exists := m.items[it.ID]; exists {
		return catalog.ErrAlreadyExists
	}
	m.items[it.ID] = it
	return nil
}

func (m *CatalogModel) Remove(id string) error {
	if _, ok := m.items[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *CatalogModel) Update(it catalog.Item) error {
	if _, ok := m.items[it.ID]; !ok {
		return catalog.ErrNotFound
	}
	m.items[it.ID] = it
	return nil
}

func (m *CatalogModel) AddRole(name string) error {
	if slices.Contains(m.roles, name) {
		return catalog.ErrRoleExists
	}
	m.roles = append(m.roles, name)
	return nil
}

func (m *CatalogModel) RemoveRole(name string) error {
	idx := slices.Index(m.roles, name)
	if idx < 0 {
		return catalog.ErrRoleNotFound
	}
	m.roles = slices.Delete(m.roles, idx, idx+1)
	return nil
}

func (m *CatalogModel) Exists(id string) bool {
	_, ok := m.items[id]
	return ok
}

func (m *CatalogModel) IDs() []string {
	ids := make([]string, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (m *CatalogModel) Count() int {
	return len(m.items)
}

type CheckedCatalog struct {
	real  catalog.Catalog
	model *CatalogModel
	t     *rapid.T
}

func NewCheckedCatalog(t *rapid.T, cat catalog.Catalog) *CheckedCatalog {
	return &CheckedCatalog{
		real:  cat,
		model: newCatalogModel(),
		t:     t,
	}
}

func (c *CheckedCatalog) Model() *CatalogModel {
	return c.model
}

func (c *CheckedCatalog) diverged(op string, realErr, modelErr error) {
	if (realErr == nil) != (modelErr == nil) {
		c.t.Fatalf("%s divergence: real=%v model=%v", op, realErr, modelErr)
	}
	if modelErr != nil && !errors.Is(realErr, modelErr) {
		c.t.Fatalf("%s error mismatch: real=%v model=%v", op, realErr, modelErr)
	}
}

func (c *CheckedCatalog) Add(it catalog.Item) error {
	realErr := c.real.Add(it)
	var modelErr error
	if realErr == nil || errors.Is(realErr, catalog.ErrAlreadyExists) {
		stored, _ := c.real.Get(it.ID)
		modelErr = c.model.Add(stored)
	}
	c.diverged("Add", realErr, modelErr)
	verifyStructuralInvariants(c.t, c.real)
	return realErr
}

func (c *CheckedCatalog) Remove(id string) error {
	realErr := c.real.Remove(id)
	modelErr := c.model.Remove(id)
	c.diverged("Remove", realErr, modelErr)
	verifyStructuralInvariants(c.t, c.real)
	return realErr
}

func (c *CheckedCatalog) Get(id string) (catalog.Item, error) {
	got, realErr := c.real.Get(id)
	if (realErr == nil) != c.model.Exists(id) {
		c.t.Fatalf("Get divergence: real err=%v model exists=%v", realErr, c.model.Exists(id))
	}
	if realErr == nil && got.ID != id {
		c.t.Fatalf("Get(%s) returned %s", id, got.ID)
	}
	return got, realErr
}

func (c *CheckedCatalog) Update(it catalog.Item) error {
	realErr := c.real.Update(it)
	var modelErr error
	if realErr == nil || errors.Is(realErr, catalog.ErrNotFound) {
		stored, _ := c.real.Get(it.ID)
		modelErr = c.model.Update(stored)
	}
	c.diverged("Update", realErr, modelErr)
	verifyStructuralInvariants(c.t, c.real)
	return realErr
}

func (c *CheckedCatalog) AddRole(name string) error {
	realErr := c.real.AddRole(catalog.Role{Name: name})
	modelErr := c.model.AddRole(name)
	c.diverged("AddRole", realErr, modelErr)
	return realErr
}

func (c *CheckedCatalog) RemoveRole(name string) error {
	realErr := c.real.RemoveRole(name)
	modelErr := c.model.RemoveRole(name)
	c.diverged("RemoveRole", realErr, modelErr)
	return realErr
}

func (c *CheckedCatalog) List() []catalog.Item {
	list := c.real.List()
	verifyStructuralInvariants(c.t, c.real)

	if len(list) != c.model.Count() {
		c.t.Fatalf("List() has %d items, model has %d", len(list), c.model.Count())
	}
	for _, it := range list {
		want, ok := c.model.items[it.ID]
		if !ok {
			c.t.Fatalf("List() returned %s unknown to the model", it.ID)
		}
		assertItemsEqual(c.t, want, it)
	}
	return list
}

func (c *CheckedCatalog) Search(query string) []catalog.Item {
	results := c.real.Search(query)
	assertSubsequence(c.t, results, c.real.List())
	return results
}
