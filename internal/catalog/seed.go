package catalog

import "github.com/fjod/go_pos/internal/domain"

// DefaultProducts returns the initial store inventory. The engine treats this
// as an opaque seed; it is neither persisted nor reloaded.
func DefaultProducts() []*domain.Product {
	return []*domain.Product{
		{ID: 40, Name: "Notebook", Price: 500.00, Stock: 8, Category: "General"},
		{ID: 45, Name: "Unmaster Lock Padlock", Price: 400.00, Stock: 5, Category: "General"},
		{ID: 101, Name: "Rice (5lb)", Price: 480.00, Stock: 25, Category: "Groceries"},
		{ID: 102, Name: "Flour (5lb)", Price: 430.00, Stock: 28, Category: "Groceries"},
		{ID: 103, Name: "Bread", Price: 600.00, Stock: 30, Category: "Groceries"},
		{ID: 104, Name: "Milk", Price: 770.00, Stock: 15, Category: "Groceries"},
		{ID: 105, Name: "Eggs (dozen)", Price: 780.00, Stock: 20, Category: "Groceries"},
		{ID: 106, Name: "Sugar (5lb)", Price: 400.00, Stock: 25, Category: "Groceries"},
		{ID: 107, Name: "Pasta", Price: 120.00, Stock: 30, Category: "Groceries"},
		{ID: 108, Name: "Butter", Price: 250.00, Stock: 20, Category: "Groceries"},
		{ID: 109, Name: "Canned Beans (1kg)", Price: 320.00, Stock: 10, Category: "Groceries"},
		{ID: 110, Name: "Honey", Price: 1940.00, Stock: 8, Category: "Groceries"},
		{ID: 201, Name: "Laundry Detergent", Price: 1050.00, Stock: 14, Category: "Household"},
		{ID: 202, Name: "Bleach", Price: 250.00, Stock: 16, Category: "Household"},
		{ID: 203, Name: "Tissue", Price: 160.00, Stock: 36, Category: "Household"},
		{ID: 204, Name: "Olive Oil (1L)", Price: 165.00, Stock: 24, Category: "Household"},
		{ID: 205, Name: "Dishwashing Liquid", Price: 175.00, Stock: 16, Category: "Household"},
		{ID: 206, Name: "Coconut Oil (1L)", Price: 910.00, Stock: 8, Category: "Household"},
		{ID: 207, Name: "Desk Fan", Price: 8500.00, Stock: 12, Category: "Household"},
		{ID: 208, Name: "Frying Pan (med)", Price: 5560.00, Stock: 6, Category: "Household"},
		{ID: 209, Name: "Light Bulb", Price: 700.00, Stock: 18, Category: "Household"},
		{ID: 210, Name: "Fabric Softener", Price: 300.00, Stock: 10, Category: "Household"},
		{ID: 211, Name: "Toothbrush", Price: 630.00, Stock: 12, Category: "Household"},
		{ID: 212, Name: "Broom", Price: 600.00, Stock: 15, Category: "Household"},
		{ID: 213, Name: "Foil Paper", Price: 660.00, Stock: 30, Category: "Household"},
		{ID: 214, Name: "Rum (750ml)", Price: 1700.00, Stock: 24, Category: "Household"},
		{ID: 215, Name: "Baking Powder (500g)", Price: 140.00, Stock: 16, Category: "Household"},
		{ID: 301, Name: "Wireless Mouse", Price: 1550.00, Stock: 11, Category: "Electronics"},
		{ID: 302, Name: "Bluetooth Buds", Price: 3100.00, Stock: 7, Category: "Electronics"},
		{ID: 303, Name: "Apple iPad Pro", Price: 35000.00, Stock: 6, Category: "Electronics"},
		{ID: 304, Name: "Smart Speaker", Price: 4500.00, Stock: 11, Category: "Electronics"},
		{ID: 305, Name: "USB-C Cable", Price: 2000.00, Stock: 20, Category: "Electronics"},
	}
}

// Seed loads the given products into the catalog, failing fast on the first
// invalid entry.
func Seed(c *Catalog, products []*domain.Product) error {
	for _, p := range products {
		if err := c.Add(p); err != nil {
			return err
		}
	}
	return nil
}
