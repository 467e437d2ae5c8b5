package testsupport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"smartboutique/internal/catalog"
)

// Products returns a small catalog fixture in a stable order.
func Products() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Nombre: "Vestido Floral", Precio: 120, Stock: 8, Categoria: catalog.Category{ID: 1, Nombre: "Damas"}},
		{ID: 2, Nombre: "Camisa Azul Casual", Precio: 90, Stock: 15, Categoria: catalog.Category{ID: 2, Nombre: "Caballeros"}},
		{ID: 3, Nombre: "Pantalón Jeans", Precio: 110, Stock: 12, Categoria: catalog.Category{ID: 1, Nombre: "Damas"}},
		{ID: 4, Nombre: "Zapatillas Urbanas", Precio: 150, Stock: 5, Categoria: catalog.Category{ID: 3, Nombre: "Calzado"}},
	}
}

// Categories returns the category fixture matching Products.
func Categories() []catalog.Category {
	return []catalog.Category{
		{ID: 1, Nombre: "Damas"},
		{ID: 2, Nombre: "Caballeros"},
		{ID: 3, Nombre: "Calzado"},
	}
}

// Customers returns the customer fixture. The first entry is the expected
// default selection.
func Customers() []catalog.Customer {
	return []catalog.Customer{
		{ID: 5, Nombre: "Cliente Ejemplo", Email: "cliente@boutique.test"},
		{ID: 6, Nombre: "Ana Pérez", Email: "ana@boutique.test"},
	}
}

// FakeLister implements catalog.Lister from in-memory fixtures, with
// per-endpoint error injection.
type FakeLister struct {
	ProductsValue   []catalog.Product
	CategoriesValue []catalog.Category
	CustomersValue  []catalog.Customer

	ProductsErr   error
	CategoriesErr error
	CustomersErr  error

	ProductCalls int
}

// NewFakeLister builds a FakeLister preloaded with the package fixtures.
func NewFakeLister() *FakeLister {
	return &FakeLister{
		ProductsValue:   Products(),
		CategoriesValue: Categories(),
		CustomersValue:  Customers(),
	}
}

func (f *FakeLister) ListProducts(context.Context) ([]catalog.Product, error) {
	f.ProductCalls++
	if f.ProductsErr != nil {
		return nil, f.ProductsErr
	}
	return f.ProductsValue, nil
}

func (f *FakeLister) ListCategories(context.Context) ([]catalog.Category, error) {
	if f.CategoriesErr != nil {
		return nil, f.CategoriesErr
	}
	return f.CategoriesValue, nil
}

func (f *FakeLister) ListCustomers(context.Context) ([]catalog.Customer, error) {
	if f.CustomersErr != nil {
		return nil, f.CustomersErr
	}
	return f.CustomersValue, nil
}

// CatalogServer is an httptest-backed stand-in for the backend API.
type CatalogServer struct {
	*httptest.Server

	// OrderRequests counts POSTs to the order endpoint.
	OrderRequests atomic.Int64
	// LastOrderBody holds the most recent raw order payload.
	LastOrderBody []byte
	// LastOrderRequestID holds the X-Request-ID header of the most recent
	// order submission.
	LastOrderRequestID string

	// OrderStatus and OrderResponse control the order endpoint's reply.
	OrderStatus   int
	OrderResponse string
}

// NewCatalogServer serves the three list endpoints from fixtures and accepts
// order submissions. Callers adjust OrderStatus/OrderResponse to simulate
// failures.
func NewCatalogServer(t testing.TB) *CatalogServer {
	t.Helper()

	cs := &CatalogServer{OrderStatus: http.StatusCreated, OrderResponse: `{"id":"00000000-0000-0000-0000-000000000001","estado":"PAGADO"}`}
	mux := http.NewServeMux()
	mux.HandleFunc("/productos/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		writeList(t, w, Products())
	})
	mux.HandleFunc("/categorias/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		writeList(t, w, Categories())
	})
	mux.HandleFunc("/clientes/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		writeList(t, w, Customers())
	})
	mux.HandleFunc("/ventas/crear/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		cs.OrderRequests.Add(1)
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read order body: %v", err)
		}
		cs.LastOrderBody = body
		cs.LastOrderRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(cs.OrderStatus)
		_, _ = w.Write([]byte(cs.OrderResponse))
	})

	cs.Server = httptest.NewServer(mux)
	t.Cleanup(cs.Server.Close)
	return cs
}

func writeList(t testing.TB, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode fixture: %v", err)
	}
}
