package storefront

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"smartboutique/internal/advisor"
	"smartboutique/internal/cart"
	"smartboutique/internal/catalog"
	"smartboutique/internal/checkout"
	"smartboutique/internal/testsupport"
	"smartboutique/internal/voice"
)

type memoryPersister struct {
	lines    []cart.Line
	replaces int
}

func (m *memoryPersister) Load(context.Context) ([]cart.Line, error) {
	return m.lines, nil
}

func (m *memoryPersister) Replace(_ context.Context, lines []cart.Line) error {
	m.replaces++
	m.lines = lines
	return nil
}

type fakeAdvisor struct {
	reply  string
	err    error
	calls  int
	during func()
}

func (f *fakeAdvisor) Generate(_ context.Context, _, _ string) (string, error) {
	f.calls++
	if f.during != nil {
		f.during()
	}
	return f.reply, f.err
}

type sessionFixture struct {
	session   *Session
	lister    *testsupport.FakeLister
	server    *testsupport.CatalogServer
	persister *memoryPersister
	advisor   *fakeAdvisor
}

func newFixture(t *testing.T) *sessionFixture {
	t.Helper()
	lister := testsupport.NewFakeLister()
	server := testsupport.NewCatalogServer(t)
	persister := &memoryPersister{}
	adv := &fakeAdvisor{reply: "Pair the dress with the sneakers."}

	session := NewSession(Params{
		Catalog:       catalog.NewStore(lister),
		Persister:     persister,
		Submitter:     checkout.NewSubmitter(server.URL, filepath.Join(t.TempDir(), "checkout.lock")),
		Advisor:       adv,
		PaymentMethod: "PAYPAL",
	})
	if err := session.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return &sessionFixture{session: session, lister: lister, server: server, persister: persister, advisor: adv}
}

func TestLoadRestoresPersistedCart(t *testing.T) {
	lister := testsupport.NewFakeLister()
	persister := &memoryPersister{lines: []cart.Line{
		{ProductID: 2, Nombre: "Camisa Azul Casual", Precio: 90, Cantidad: 3},
	}}
	session := NewSession(Params{Catalog: catalog.NewStore(lister), Persister: persister})

	if err := session.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := session.Cart().ItemCount(); got != 3 {
		t.Fatalf("restored item count = %d, want 3", got)
	}
}

func TestLoadFailureSetsStatus(t *testing.T) {
	lister := testsupport.NewFakeLister()
	lister.ProductsErr = errors.New("connection refused")
	session := NewSession(Params{Catalog: catalog.NewStore(lister)})

	if err := session.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if got := session.Status(); got != statusLoadFailed {
		t.Fatalf("status = %q, want %q", got, statusLoadFailed)
	}
}

func TestAddToCartPersistsAndAnnounces(t *testing.T) {
	fx := newFixture(t)

	if err := fx.session.AddToCart(context.Background(), 1); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if got := fx.session.Status(); got != "Vestido Floral added to cart." {
		t.Fatalf("status = %q", got)
	}
	if fx.persister.replaces == 0 {
		t.Fatal("expected cart persistence after mutation")
	}
	if err := fx.session.AddToCart(context.Background(), 999); err == nil {
		t.Fatal("expected error for unknown product")
	}
}

func TestCartMutationClearsAdvice(t *testing.T) {
	fx := newFixture(t)
	_ = fx.session.AddToCart(context.Background(), 1)

	if got := fx.session.Advise(context.Background()); got != "Pair the dress with the sneakers." {
		t.Fatalf("advice = %q", got)
	}
	_ = fx.session.AddToCart(context.Background(), 2)
	if got := fx.session.Advice(); got != "" {
		t.Fatalf("advice after mutation = %q, want empty", got)
	}
}

func TestAdviseEmptyCartSkipsAdvisor(t *testing.T) {
	fx := newFixture(t)

	if got := fx.session.Advise(context.Background()); got != advisor.EmptyCartMessage {
		t.Fatalf("advice = %q", got)
	}
	if fx.advisor.calls != 0 {
		t.Fatalf("advisor calls = %d, want 0", fx.advisor.calls)
	}
}

func TestAdviseFallsBackOnError(t *testing.T) {
	fx := newFixture(t)
	fx.advisor.err = errors.New("quota exceeded")
	fx.advisor.reply = ""
	_ = fx.session.AddToCart(context.Background(), 1)

	if got := fx.session.Advise(context.Background()); got != advisor.FallbackMessage {
		t.Fatalf("advice = %q, want fallback", got)
	}
}

func TestAdviseDiscardsStaleReply(t *testing.T) {
	fx := newFixture(t)
	_ = fx.session.AddToCart(context.Background(), 1)
	fx.advisor.during = func() {
		product, _ := fx.session.Catalog().FindProduct(2)
		fx.session.Cart().Add(product)
	}

	if got := fx.session.Advise(context.Background()); got != "" {
		t.Fatalf("stale advice surfaced: %q", got)
	}
}

func TestCheckoutSuccessClearsCartAndReloads(t *testing.T) {
	fx := newFixture(t)
	_ = fx.session.AddToCart(context.Background(), 1)
	fx.session.SetQuantity(context.Background(), 1, 2)
	before := fx.lister.ProductCalls

	if err := fx.session.Checkout(context.Background()); err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if !fx.session.Cart().Empty() {
		t.Fatal("cart not cleared after checkout")
	}
	if got := fx.session.Status(); got != statusOrderPlaced {
		t.Fatalf("status = %q", got)
	}
	if got := fx.server.OrderRequests.Load(); got != 1 {
		t.Fatalf("order requests = %d, want 1", got)
	}
	if fx.lister.ProductCalls != before+1 {
		t.Fatal("expected product reload after checkout")
	}
	if len(fx.persister.lines) != 0 {
		t.Fatal("persisted cart not cleared")
	}
}

func TestCheckoutEmptyCartNeverSubmits(t *testing.T) {
	fx := newFixture(t)

	if err := fx.session.Checkout(context.Background()); err == nil {
		t.Fatal("expected precondition error")
	}
	if got := fx.session.Status(); got != "cart is empty" {
		t.Fatalf("status = %q, want %q", got, "cart is empty")
	}
	if got := fx.server.OrderRequests.Load(); got != 0 {
		t.Fatalf("order requests = %d, want 0", got)
	}
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	fx := newFixture(t)
	fx.server.OrderStatus = 400
	fx.server.OrderResponse = `{"detalles": "Stock insuficiente"}`
	_ = fx.session.AddToCart(context.Background(), 1)

	if err := fx.session.Checkout(context.Background()); err == nil {
		t.Fatal("expected checkout failure")
	}
	if fx.session.Cart().Empty() {
		t.Fatal("cart cleared despite failure")
	}
	if got := fx.session.Status(); got != "Stock insuficiente" {
		t.Fatalf("status = %q", got)
	}
}

func TestListenVoiceProcessesUtterances(t *testing.T) {
	fx := newFixture(t)
	rec := voice.NewLineRecognizer(strings.NewReader("agregar vestido\n"))

	if err := fx.session.ListenVoice(context.Background(), rec); err != nil {
		t.Fatalf("ListenVoice: %v", err)
	}
	if got := fx.session.Cart().ItemCount(); got != 1 {
		t.Fatalf("item count = %d, want 1", got)
	}
	if got := fx.session.Status(); got != statusMicIdle {
		t.Fatalf("status = %q, want idle prompt", got)
	}
}

func TestHandleTranscriptAddsMatchedProduct(t *testing.T) {
	fx := newFixture(t)

	fx.session.HandleTranscript(context.Background(), "Agregar camisa azul")
	if got := fx.session.Status(); got != "Camisa Azul Casual added to cart." {
		t.Fatalf("status = %q", got)
	}
	if got := fx.session.Cart().ItemCount(); got != 1 {
		t.Fatalf("item count = %d, want 1", got)
	}
}

func TestHandleTranscriptRejectsUnknownCommand(t *testing.T) {
	fx := newFixture(t)

	fx.session.HandleTranscript(context.Background(), "hola tienda")
	if got := fx.session.Status(); !strings.Contains(got, "Command not recognized") {
		t.Fatalf("status = %q", got)
	}
	if !fx.session.Cart().Empty() {
		t.Fatal("unrecognized transcript mutated the cart")
	}
}

func TestHandleTranscriptReportsMissingProduct(t *testing.T) {
	fx := newFixture(t)

	fx.session.HandleTranscript(context.Background(), "dame zapatos de tacon")
	if got := fx.session.Status(); got != "product not found: zapatos de tacon" {
		t.Fatalf("status = %q", got)
	}
	if !fx.session.Cart().Empty() {
		t.Fatal("missing product transcript mutated the cart")
	}
}
