// Package admin serves the back-office views. The production system manages
// this data elsewhere; the client renders a fixed snapshot for demonstration.
package admin

import "fmt"

// ProductRow is one row of the product management table.
type ProductRow struct {
	ID     int64
	Nombre string
	Precio float64
	Stock  int
}

// UserRow is one row of the user management table.
type UserRow struct {
	ID     int64
	Nombre string
	Email  string
	Rol    string
}

// ReportRow is one row of the monthly sales report.
type ReportRow struct {
	Mes      string
	Ventas   int
	Ingresos float64
}

// Products returns the demonstration product inventory.
func Products() []ProductRow {
	rows := make([]ProductRow, 0, 3)
	for i := int64(1); i <= 3; i++ {
		rows = append(rows, ProductRow{
			ID:     i,
			Nombre: fmt.Sprintf("Producto %d", i),
			Precio: float64(i) * 10,
			Stock:  int(i) * 5,
		})
	}
	return rows
}

// Users returns the demonstration user accounts.
func Users() []UserRow {
	return []UserRow{
		{ID: 1, Nombre: "Ana Pérez", Email: "ana@gmail.com", Rol: "admin"},
		{ID: 2, Nombre: "Luis Gómez", Email: "luis@gmail.com", Rol: "cliente"},
	}
}

// Reports returns the demonstration monthly sales figures.
func Reports() []ReportRow {
	return []ReportRow{
		{Mes: "Enero", Ventas: 12, Ingresos: 1450.50},
		{Mes: "Febrero", Ventas: 18, Ingresos: 2210.00},
		{Mes: "Marzo", Ventas: 9, Ingresos: 980.75},
	}
}
