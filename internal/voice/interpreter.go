package voice

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"smartboutique/internal/catalog"
	"smartboutique/internal/services"
)

// commandPattern recognizes the first "<trigger> <rest>" occurrence in a
// transcript. The trigger words are fixed Spanish add-to-cart verbs.
var commandPattern = regexp.MustCompile(`(agregar|añadir|dame) (.*)`)

// ErrUnrecognized is returned when the transcript carries no trigger word.
var ErrUnrecognized = services.ErrUnrecognized

// ProductNotFoundError reports a recognized command whose fragment matched
// no product name.
type ProductNotFoundError struct {
	Fragment string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.Fragment)
}

// Is lets callers classify the error with the shared not-found marker.
func (e *ProductNotFoundError) Is(target error) bool {
	return target == services.ErrNotFound
}

// Interpret maps a transcript to the product it asks for. Matching is
// case-insensitive substring containment against product names; the first
// product in catalog order wins, even when several names contain the
// fragment.
func Interpret(transcript string, products []catalog.Product) (catalog.Product, error) {
	transcript = strings.ToLower(transcript)
	match := commandPattern.FindStringSubmatch(transcript)
	if match == nil {
		return catalog.Product{}, ErrUnrecognized
	}
	fragment := strings.TrimSpace(match[2])
	if fragment == "" {
		return catalog.Product{}, ErrUnrecognized
	}

	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Nombre), fragment) {
			return p, nil
		}
	}
	return catalog.Product{}, &ProductNotFoundError{Fragment: fragment}
}

// IsUnrecognized reports whether the error is the no-trigger case.
func IsUnrecognized(err error) bool {
	return errors.Is(err, services.ErrUnrecognized)
}
