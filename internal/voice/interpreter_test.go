package voice_test

import (
	"errors"
	"testing"

	"smartboutique/internal/services"
	"smartboutique/internal/testsupport"
	"smartboutique/internal/voice"
)

func TestInterpretMatchesSubstringCaseInsensitively(t *testing.T) {
	products := testsupport.Products()

	p, err := voice.Interpret("agregar camisa azul", products)
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if p.Nombre != "Camisa Azul Casual" {
		t.Fatalf("expected Camisa Azul Casual, got %+v", p)
	}
}

func TestInterpretAcceptsAllTriggerWords(t *testing.T) {
	products := testsupport.Products()
	for _, transcript := range []string{"agregar vestido", "añadir vestido", "dame vestido", "Por favor DAME vestido"} {
		p, err := voice.Interpret(transcript, products)
		if err != nil {
			t.Fatalf("interpret %q: %v", transcript, err)
		}
		if p.ID != 1 {
			t.Fatalf("interpret %q: expected product 1, got %+v", transcript, p)
		}
	}
}

func TestInterpretFirstMatchWinsInCatalogOrder(t *testing.T) {
	products := testsupport.Products()

	// Both "Vestido Floral" and "Pantalón Jeans" are in category Damas, but
	// the fragment "a" is contained in several names; catalog order decides.
	p, err := voice.Interpret("dame a", products)
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if p.ID != products[0].ID {
		t.Fatalf("expected first product in catalog order, got %+v", p)
	}
}

func TestInterpretRejectsMissingTrigger(t *testing.T) {
	_, err := voice.Interpret("hola", testsupport.Products())
	if !errors.Is(err, services.ErrUnrecognized) {
		t.Fatalf("expected unrecognized command, got %v", err)
	}
}

func TestInterpretRejectsEmptyFragment(t *testing.T) {
	_, err := voice.Interpret("agregar ", testsupport.Products())
	if !errors.Is(err, services.ErrUnrecognized) {
		t.Fatalf("expected unrecognized command, got %v", err)
	}
}

func TestInterpretReportsMissingProductWithFragment(t *testing.T) {
	_, err := voice.Interpret("dame zapatos", testsupport.Products())

	var notFound *voice.ProductNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ProductNotFoundError, got %v", err)
	}
	if notFound.Fragment != "zapatos" {
		t.Fatalf("expected fragment zapatos, got %q", notFound.Fragment)
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found classification, got %v", err)
	}
}
