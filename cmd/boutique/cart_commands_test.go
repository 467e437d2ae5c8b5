package main

import (
	"strings"
	"testing"
)

func TestCartAddPersistsAcrossRuns(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, "cart", "add", "1")
	if err != nil {
		t.Fatalf("cart add: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Vestido Floral added to cart.") {
		t.Fatalf("add status missing:\n%s", out)
	}

	out, err = runCLI(t, "cart", "show")
	if err != nil {
		t.Fatalf("cart show: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Vestido Floral") || !strings.Contains(out, "Total: Bs. 120.00") {
		t.Fatalf("persisted cart not shown:\n%s", out)
	}
}

func TestCartSetAndRemove(t *testing.T) {
	setupCLITestEnv(t)

	if out, err := runCLI(t, "cart", "add", "2"); err != nil {
		t.Fatalf("cart add: %v\n%s", err, out)
	}
	out, err := runCLI(t, "cart", "set", "2", "3")
	if err != nil {
		t.Fatalf("cart set: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Total: Bs. 270.00 (3 items)") {
		t.Fatalf("quantity not applied:\n%s", out)
	}

	out, err = runCLI(t, "cart", "remove", "2")
	if err != nil {
		t.Fatalf("cart remove: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Your cart is empty.") {
		t.Fatalf("cart not emptied:\n%s", out)
	}
}

func TestCartClear(t *testing.T) {
	setupCLITestEnv(t)

	if out, err := runCLI(t, "cart", "add", "1"); err != nil {
		t.Fatalf("cart add: %v\n%s", err, out)
	}
	out, err := runCLI(t, "cart", "clear")
	if err != nil {
		t.Fatalf("cart clear: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Cart cleared.") || !strings.Contains(out, "Your cart is empty.") {
		t.Fatalf("clear output unexpected:\n%s", out)
	}
}

func TestCartAddRejectsUnknownProduct(t *testing.T) {
	setupCLITestEnv(t)

	if _, err := runCLI(t, "cart", "add", "999"); err == nil {
		t.Fatal("expected error for unknown product")
	}
	if _, err := runCLI(t, "cart", "add", "zero"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}
