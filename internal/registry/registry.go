// Package registry holds the upgrade catalog: the read-only set of upgrades
// a game session can offer. A Catalog is built once at startup from the
// loaded configuration and handed explicitly to everything that needs it.
package registry

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-clicker/internal/economy"
)

// ErrDuplicateUpgrade is returned when two upgrades share an id.
var ErrDuplicateUpgrade = errors.New("registry: duplicate upgrade id")

// Catalog is an ordered, immutable collection of upgrades keyed by id.
// It is safe for concurrent reads.
type Catalog struct {
	order      []*economy.Upgrade
	byID       map[string]*economy.Upgrade
	categories []string
	byCategory map[string][]*economy.Upgrade
}

// NewCatalog builds a catalog keeping the given definition order.
// Nil upgrades and duplicate ids are rejected.
func NewCatalog(upgrades ...*economy.Upgrade) (*Catalog, error) {
	c := &Catalog{
		order:      make([]*economy.Upgrade, 0, len(upgrades)),
		byID:       make(map[string]*economy.Upgrade, len(upgrades)),
		byCategory: make(map[string][]*economy.Upgrade),
	}

	for i, u := range upgrades {
		if u == nil {
			return nil, fmt.Errorf("registry: upgrade #%d is nil", i)
		}
		if _, exists := c.byID[u.ID()]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateUpgrade, u.ID())
		}

		c.order = append(c.order, u)
		c.byID[u.ID()] = u

		cat := u.Category()
		if _, seen := c.byCategory[cat]; !seen {
			c.categories = append(c.categories, cat)
		}
		c.byCategory[cat] = append(c.byCategory[cat], u)
	}

	return c, nil
}

// MustCatalog is NewCatalog that panics on error. Intended for tests and
// hardcoded tables.
func MustCatalog(upgrades ...*economy.Upgrade) *Catalog {
	c, err := NewCatalog(upgrades...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get looks up an upgrade by id.
func (c *Catalog) Get(id string) (*economy.Upgrade, bool) {
	u, ok := c.byID[id]
	return u, ok
}

// Exists checks if an upgrade with the given id is in the catalog.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// List returns the upgrades in definition order.
func (c *Catalog) List() []*economy.Upgrade {
	return append([]*economy.Upgrade(nil), c.order...)
}

// At returns the upgrade at index i in definition order.
func (c *Catalog) At(i int) (*economy.Upgrade, bool) {
	if i < 0 || i >= len(c.order) {
		return nil, false
	}
	return c.order[i], true
}

// IDs returns the upgrade ids in definition order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.order))
	for i, u := range c.order {
		ids[i] = u.ID()
	}
	return ids
}

// Len returns the number of upgrades.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Categories returns the distinct category names in first-seen order.
// Uncategorized upgrades are grouped under the empty string.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// ByCategory groups the upgrades by category, each group in definition order.
func (c *Catalog) ByCategory() map[string][]*economy.Upgrade {
	out := make(map[string][]*economy.Upgrade, len(c.byCategory))
	for cat, ups := range c.byCategory {
		out[cat] = append([]*economy.Upgrade(nil), ups...)
	}
	return out
}
