package advisor

import (
	"fmt"
	"strings"

	"smartboutique/internal/cart"
)

// EmptyCartMessage is shown without calling the model when the cart holds no
// lines.
const EmptyCartMessage = "Add items to your cart first to get advice."

// FallbackMessage is shown when the model call fails for any reason.
const FallbackMessage = "Sorry, I could not generate a recommendation right now. Please try again later."

// systemPrompt frames the model as the boutique's stylist. The reply stays
// short so it fits the status area.
const systemPrompt = "You are a friendly fashion stylist for a clothing boutique. " +
	"Given the items in a customer's shopping cart, suggest how to combine them " +
	"and recommend one or two complementary pieces. Answer in at most three " +
	"sentences, in the same language as the item names."

// SystemPrompt returns the stylist instruction given to the model.
func SystemPrompt() string {
	return systemPrompt
}

// CartDescription flattens cart lines into "2 x Camisa Azul, 1 x Pantalón"
// form for the model query.
func CartDescription(lines []cart.Line) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%d x %s", line.Cantidad, line.Nombre))
	}
	return strings.Join(parts, ", ")
}

// BuildQuery produces the user query sent alongside the system prompt.
func BuildQuery(lines []cart.Line) string {
	return "My shopping cart contains: " + CartDescription(lines) + ". What do you suggest?"
}
