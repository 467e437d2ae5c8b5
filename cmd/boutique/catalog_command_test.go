package main

import (
	"encoding/json"
	"strings"
	"testing"

	"smartboutique/internal/catalog"
)

func TestCatalogCommandListsProducts(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, "catalog")
	if err != nil {
		t.Fatalf("catalog: %v\n%s", err, out)
	}
	for _, want := range []string{"Vestido Floral", "Camisa Azul Casual", "Bs. 120.00", "Damas"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCatalogCommandFiltersByCategory(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, "catalog", "--category", "3")
	if err != nil {
		t.Fatalf("catalog --category: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Zapatillas Urbanas") {
		t.Fatalf("expected category 3 product:\n%s", out)
	}
	if strings.Contains(out, "Vestido Floral") {
		t.Fatalf("unexpected product outside category:\n%s", out)
	}
}

func TestCatalogCommandJSON(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, "catalog", "--json")
	if err != nil {
		t.Fatalf("catalog --json: %v\n%s", err, out)
	}
	var products []catalog.Product
	if err := json.Unmarshal([]byte(out), &products); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(products) != 4 {
		t.Fatalf("len(products) = %d, want 4", len(products))
	}
}

func TestCustomersCommandMarksDefault(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, "customers")
	if err != nil {
		t.Fatalf("customers: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Cliente Ejemplo") || !strings.Contains(out, "Ana Pérez") {
		t.Fatalf("customer rows missing:\n%s", out)
	}
	if !strings.Contains(out, "default customer for checkout") {
		t.Fatalf("default marker legend missing:\n%s", out)
	}
}
