package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/fjod/go_pos/internal/domain"
)

// Common errors returned by the catalog
var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateID     = errors.New("product id already registered")
	ErrInvalidProduct  = errors.New("invalid product definition")
)

// Catalog is the in-memory product store. It owns every Product instance for
// the process lifetime; callers receive shared pointers and the cart mutates
// Stock through them directly, so the catalog never intermediates stock math.
type Catalog struct {
	mu       sync.RWMutex
	products map[int64]*domain.Product
	ids      []int64 // sorted; fixes iteration order for search and display
}

func New() *Catalog {
	return &Catalog{
		products: make(map[int64]*domain.Product),
	}
}

// Add registers a product at initialization time. Products are never deleted
// during a run.
func (c *Catalog) Add(p *domain.Product) error {
	if p == nil || p.ID <= 0 || p.Name == "" || p.Price < 0 || p.Stock < 0 {
		return ErrInvalidProduct
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.products[p.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
	}

	c.products[p.ID] = p
	idx := sort.Search(len(c.ids), func(i int) bool { return c.ids[i] >= p.ID })
	c.ids = append(c.ids, 0)
	copy(c.ids[idx+1:], c.ids[idx:])
	c.ids[idx] = p.ID
	return nil
}

// Find returns the product with the exact id.
func (c *Catalog) Find(id int64) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, exists := c.products[id]
	if !exists {
		return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}
	return p, nil
}

// Search matches the query case-insensitively against product name or
// category. No match yields an empty result, not an error.
func (c *Catalog) Search(query string) []*domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query = strings.ToLower(query)
	var results []*domain.Product
	for _, id := range c.ids {
		p := c.products[id]
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Category), query) {
			results = append(results, p)
		}
	}
	return results
}

// All returns every product in catalog iteration order (ascending id).
func (c *Catalog) All() []*domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*domain.Product, 0, len(c.ids))
	for _, id := range c.ids {
		result = append(result, c.products[id])
	}
	return result
}

// DigitGroup is one display bucket of products sharing the leading digit of
// their id.
type DigitGroup struct {
	Digit    string
	Products []*domain.Product
}

// GroupByLeadingDigit buckets products by the first digit of their id,
// sorted by digit. Pure projection for inventory display; no state changes.
func (c *Catalog) GroupByLeadingDigit() []DigitGroup {
	c.mu.RLock()
	defer c.mu.RUnlock()

	buckets := make(map[string][]*domain.Product)
	for _, id := range c.ids {
		digit := strconv.FormatInt(id, 10)[:1]
		buckets[digit] = append(buckets[digit], c.products[id])
	}

	digits := make([]string, 0, len(buckets))
	for d := range buckets {
		digits = append(digits, d)
	}
	sort.Strings(digits)

	groups := make([]DigitGroup, 0, len(digits))
	for _, d := range digits {
		groups = append(groups, DigitGroup{Digit: d, Products: buckets[d]})
	}
	return groups
}
