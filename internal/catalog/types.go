package catalog

import (
	"bytes"
	"fmt"
	"strconv"
)

// Price tolerates both JSON numbers and the string form the backend's
// decimal fields serialize to ("120.00").
type Price float64

// UnmarshalJSON accepts either a bare number or a quoted decimal string.
func (p *Price) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = 0
		return nil
	}
	value, err := strconv.ParseFloat(string(trimmed), 64)
	if err != nil {
		return fmt.Errorf("parse price %q: %w", data, err)
	}
	*p = Price(value)
	return nil
}

// MarshalJSON renders the price as a plain number.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(p), 'f', -1, 64)), nil
}

// Category groups products for filtering. There is no hierarchy.
type Category struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

// Product is a catalog entry. Immutable from the client's perspective except
// for Stock, which only changes through server-side effects observed by
// re-fetching the list after checkout.
type Product struct {
	ID          int64    `json:"id"`
	Nombre      string   `json:"nombre"`
	Descripcion string   `json:"descripcion,omitempty"`
	Precio      Price    `json:"precio"`
	Stock       int      `json:"stock"`
	Categoria   Category `json:"categoria"`
	ImagenURL   string   `json:"imagen_url"`
}

// Customer is a registered buyer selectable at checkout.
type Customer struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
}
