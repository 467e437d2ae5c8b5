package storefront

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"smartboutique/internal/advisor"
	"smartboutique/internal/cart"
	"smartboutique/internal/catalog"
	"smartboutique/internal/services"
	"smartboutique/internal/voice"
)

// Status messages surfaced in the storefront status line.
const (
	statusLoading      = "Loading products..."
	statusLoadFailed   = "Could not load products. Is the server running?"
	statusOrderPlaced  = "Order placed successfully."
	statusMicListening = "Microphone: listening..."
	statusMicIdle      = "Say \"agregar <product>\" to add items by voice."
)

// Advisor generates a styling suggestion for a user query.
type Advisor interface {
	Generate(ctx context.Context, systemPrompt, userQuery string) (string, error)
}

// CartPersister saves and restores cart lines across sessions.
type CartPersister interface {
	Load(ctx context.Context) ([]cart.Line, error)
	Replace(ctx context.Context, lines []cart.Line) error
}

// Submitter posts an order built from the current cart.
type Submitter interface {
	Submit(ctx context.Context, customerID int64, paymentMethod string, lines []cart.Line) error
}

// Session ties the catalog, cart, checkout, and advisor together behind a
// single status line, mirroring what a shopper sees in one sitting.
type Session struct {
	catalog       *catalog.Store
	cart          *cart.Cart
	persister     CartPersister
	submitter     Submitter
	advisor       Advisor
	logger        *slog.Logger
	paymentMethod string

	status   string
	advice   string
	advising bool
}

// Params collects the session's collaborators. Persister and Advisor may be
// nil; the session then skips persistence and reports advice as unavailable.
type Params struct {
	Catalog       *catalog.Store
	Cart          *cart.Cart
	Persister     CartPersister
	Submitter     Submitter
	Advisor       Advisor
	Logger        *slog.Logger
	PaymentMethod string
}

// NewSession builds a storefront session. A nil cart gets a fresh one.
func NewSession(p Params) *Session {
	if p.Cart == nil {
		p.Cart = cart.New()
	}
	if p.Logger == nil {
		p.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		catalog:       p.Catalog,
		cart:          p.Cart,
		persister:     p.Persister,
		submitter:     p.Submitter,
		advisor:       p.Advisor,
		logger:        p.Logger,
		paymentMethod: p.PaymentMethod,
		status:        statusMicIdle,
	}
}

// Status returns the current status line.
func (s *Session) Status() string {
	return s.status
}

// Advice returns the latest styling suggestion, or "" when none is shown.
func (s *Session) Advice() string {
	return s.advice
}

// Advising reports whether an advisory request is in flight.
func (s *Session) Advising() bool {
	return s.advising
}

// Cart exposes the session's cart.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}

// Catalog exposes the session's catalog store.
func (s *Session) Catalog() *catalog.Store {
	return s.catalog
}

// Load fetches the catalog and restores any persisted cart lines. Restoring
// the cart does not count as a mutation, so a previously running advisory is
// unaffected.
func (s *Session) Load(ctx context.Context) error {
	s.status = statusLoading
	if err := s.catalog.Load(ctx); err != nil {
		s.status = statusLoadFailed
		return err
	}
	s.status = statusMicIdle

	if s.persister != nil {
		lines, err := s.persister.Load(ctx)
		if err != nil {
			s.logger.Warn("cart restore failed", "error", err)
		} else {
			s.cart.Restore(lines)
		}
	}
	return nil
}

// AddToCart adds one unit of the product with the given id.
func (s *Session) AddToCart(ctx context.Context, productID int64) error {
	product, ok := s.catalog.FindProduct(productID)
	if !ok {
		return services.Wrap(services.ErrNotFound, "storefront", "add",
			fmt.Sprintf("product %d is not in the catalog", productID), nil)
	}
	s.AddProduct(ctx, product)
	return nil
}

// AddProduct adds one unit of a known product, clears any advisory, and
// persists the cart.
func (s *Session) AddProduct(ctx context.Context, product catalog.Product) {
	s.cart.Add(product)
	s.afterMutation(ctx)
	s.status = fmt.Sprintf("%s added to cart.", product.Nombre)
}

// RemoveFromCart drops a product line entirely.
func (s *Session) RemoveFromCart(ctx context.Context, productID int64) {
	s.cart.Remove(productID)
	s.afterMutation(ctx)
	s.status = "Item removed from cart."
}

// SetQuantity updates a line's quantity; zero or less removes the line.
func (s *Session) SetQuantity(ctx context.Context, productID int64, qty int) {
	s.cart.SetQuantity(productID, qty)
	s.afterMutation(ctx)
	s.status = "Cart updated."
}

// ClearCart empties the cart.
func (s *Session) ClearCart(ctx context.Context) {
	s.cart.Clear()
	s.afterMutation(ctx)
	s.status = "Cart cleared."
}

func (s *Session) afterMutation(ctx context.Context) {
	s.advice = ""
	s.persist(ctx)
}

func (s *Session) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Replace(ctx, s.cart.Lines()); err != nil {
		s.logger.Warn("cart persist failed", "error", err)
	}
}

// Checkout submits the cart for the selected customer. On success the cart
// and any advisory are cleared and the product list is refreshed so stock
// figures stay current; a refresh failure overwrites the success status.
func (s *Session) Checkout(ctx context.Context) error {
	customer, _ := s.catalog.SelectedCustomer()

	if err := s.submitter.Submit(ctx, customer.ID, s.paymentMethod, s.cart.Lines()); err != nil {
		if errors.Is(err, services.ErrPrecondition) || errors.Is(err, services.ErrTransport) {
			s.status = services.Message(err)
		} else {
			s.status = err.Error()
		}
		return err
	}

	s.cart.Clear()
	s.advice = ""
	s.persist(ctx)
	s.status = statusOrderPlaced

	if err := s.catalog.ReloadProducts(ctx); err != nil {
		s.status = statusLoadFailed
		s.logger.Warn("product reload after checkout failed", "error", err)
	}
	return nil
}

// Advise asks the advisor for a suggestion based on the current cart. An
// empty cart short-circuits without a call; a reply arriving after the cart
// changed is discarded.
func (s *Session) Advise(ctx context.Context) string {
	if s.cart.Empty() {
		s.advice = advisor.EmptyCartMessage
		return s.advice
	}
	if s.advisor == nil {
		s.advice = advisor.FallbackMessage
		return s.advice
	}

	s.advising = true
	defer func() { s.advising = false }()

	version := s.cart.Version()
	text, err := s.advisor.Generate(ctx, advisor.SystemPrompt(), advisor.BuildQuery(s.cart.Lines()))
	if s.cart.Version() != version {
		return s.advice
	}
	if err != nil {
		s.logger.Warn("advisory request failed", "error", err)
		s.advice = advisor.FallbackMessage
		return s.advice
	}
	s.advice = text
	return s.advice
}

// HandleTranscript interprets a voice transcript and applies its effect.
func (s *Session) HandleTranscript(ctx context.Context, transcript string) {
	product, err := voice.Interpret(transcript, s.catalog.Products())
	switch {
	case err == nil:
		s.AddProduct(ctx, product)
	case voice.IsUnrecognized(err):
		s.status = fmt.Sprintf("Command not recognized: %q", transcript)
	default:
		var notFound *voice.ProductNotFoundError
		if errors.As(err, &notFound) {
			s.status = notFound.Error()
		} else {
			s.status = err.Error()
		}
	}
}

// voiceHandler adapts the session to the voice event stream.
type voiceHandler struct {
	ctx     context.Context
	session *Session
}

func (h *voiceHandler) Listening() {
	h.session.status = statusMicListening
}

func (h *voiceHandler) Transcript(text string) {
	h.session.HandleTranscript(h.ctx, text)
}

func (h *voiceHandler) EngineError(err error) {
	h.session.status = fmt.Sprintf("Microphone error: %v", err)
}

func (h *voiceHandler) Ended() {
	h.session.status = statusMicIdle
}

// ListenVoice runs the recognizer until it ends, feeding transcripts through
// the interpreter.
func (s *Session) ListenVoice(ctx context.Context, rec voice.Recognizer) error {
	return voice.Listen(ctx, rec, &voiceHandler{ctx: ctx, session: s})
}
