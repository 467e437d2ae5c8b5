package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"smartboutique/internal/services"
)

// Store holds the product, category, and customer lists fetched at startup
// and tracks the selected customer. All methods are meant for a single
// goroutine of event handling; the only internal concurrency is the
// fire-and-await-all fetch inside Load.
type Store struct {
	client Lister

	products   []Product
	categories []Category
	customers  []Customer

	selectedCustomer int64
}

// NewStore creates a store backed by the given catalog client.
func NewStore(client Lister) *Store {
	return &Store{client: client}
}

// Load fetches products, categories, and customers concurrently. The load is
// all-or-nothing: if any request fails, no state changes and the first error
// is returned. On success the first customer becomes the default selection
// if none is selected yet.
func (s *Store) Load(ctx context.Context) error {
	var (
		wg         sync.WaitGroup
		products   []Product
		categories []Category
		customers  []Customer
		errs       [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		products, errs[0] = s.client.ListProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		categories, errs[1] = s.client.ListCategories(ctx)
	}()
	go func() {
		defer wg.Done()
		customers, errs[2] = s.client.ListCustomers(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return services.Wrap(services.ErrTransport, "catalog", "load", "", err)
		}
	}

	s.products = products
	s.categories = categories
	s.customers = customers

	if s.selectedCustomer == 0 && len(customers) > 0 {
		s.selectedCustomer = customers[0].ID
	} else if s.selectedCustomer != 0 {
		if _, ok := s.customerByID(s.selectedCustomer); !ok {
			s.selectedCustomer = 0
			if len(customers) > 0 {
				s.selectedCustomer = customers[0].ID
			}
		}
	}
	return nil
}

// ReloadProducts replaces the product list wholesale, leaving categories,
// customers, and the selection untouched. Used after checkout to observe
// server-side stock decrements.
func (s *Store) ReloadProducts(ctx context.Context) error {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return services.Wrap(services.ErrTransport, "catalog", "reload products", "", err)
	}
	s.products = products
	return nil
}

// Products returns the full product list in catalog order.
func (s *Store) Products() []Product {
	return s.products
}

// Categories returns the loaded category list.
func (s *Store) Categories() []Category {
	return s.categories
}

// Customers returns the loaded customer list.
func (s *Store) Customers() []Customer {
	return s.customers
}

// FilterByCategory returns products whose category id matches, preserving
// catalog order. A zero id means no filter.
func (s *Store) FilterByCategory(categoryID int64) []Product {
	if categoryID == 0 {
		return s.products
	}
	var filtered []Product
	for _, p := range s.products {
		if p.Categoria.ID == categoryID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FindProduct looks a product up by id.
func (s *Store) FindProduct(id int64) (Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FindProductByName returns the first product in catalog order whose name
// contains the fragment, case-insensitively.
func (s *Store) FindProductByName(fragment string) (Product, bool) {
	fragment = strings.ToLower(strings.TrimSpace(fragment))
	if fragment == "" {
		return Product{}, false
	}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Nombre), fragment) {
			return p, true
		}
	}
	return Product{}, false
}

// SelectCustomer changes the selected customer.
func (s *Store) SelectCustomer(id int64) error {
	if _, ok := s.customerByID(id); !ok {
		return services.Wrap(services.ErrNotFound, "catalog", "select customer", fmt.Sprintf("no customer with id %d", id), nil)
	}
	s.selectedCustomer = id
	return nil
}

// SelectedCustomer returns the currently selected customer, if any.
func (s *Store) SelectedCustomer() (Customer, bool) {
	return s.customerByID(s.selectedCustomer)
}

func (s *Store) customerByID(id int64) (Customer, bool) {
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}
