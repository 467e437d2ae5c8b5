package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"smartboutique/internal/cart"
	"smartboutique/internal/services"
)

const defaultHTTPTimeout = 30 * time.Second

// genericFailureMessage is used when the server response carries no usable
// detail.
const genericFailureMessage = "failed to process the order"

// State tracks a submitter through a single order attempt.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// OrderLine is one cart line in the wire payload.
type OrderLine struct {
	ProductoID int64 `json:"producto_id"`
	Cantidad   int   `json:"cantidad"`
}

// OrderRequest is the payload posted to the sales endpoint. The customer id
// travels as a string.
type OrderRequest struct {
	ClienteID  string      `json:"cliente_id"`
	MetodoPago string      `json:"metodo_pago"`
	Detalles   []OrderLine `json:"detalles"`
}

// BuildOrder maps cart lines and the selected customer into the wire payload.
func BuildOrder(customerID int64, paymentMethod string, lines []cart.Line) OrderRequest {
	detalles := make([]OrderLine, 0, len(lines))
	for _, line := range lines {
		detalles = append(detalles, OrderLine{ProductoID: line.ProductID, Cantidad: line.Cantidad})
	}
	return OrderRequest{
		ClienteID:  strconv.FormatInt(customerID, 10),
		MetodoPago: paymentMethod,
		Detalles:   detalles,
	}
}

// Submitter posts orders to the boutique backend. One submitter handles one
// attempt at a time, guarded by a file lock so concurrent invocations cannot
// double-submit the same cart.
type Submitter struct {
	baseURL    string
	lockPath   string
	httpClient *http.Client
	state      State
}

// Option customizes the submitter.
type Option func(*Submitter)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Submitter) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Submitter) {
		if timeout > 0 {
			s.httpClient.Timeout = timeout
		}
	}
}

// NewSubmitter creates a submitter posting to baseURL and serializing
// attempts through the lock file at lockPath.
func NewSubmitter(baseURL, lockPath string, opts ...Option) *Submitter {
	submitter := &Submitter{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		lockPath:   lockPath,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		state:      StateIdle,
	}
	for _, opt := range opts {
		opt(submitter)
	}
	return submitter
}

// State reports the outcome of the most recent attempt.
func (s *Submitter) State() State {
	return s.state
}

// Submit validates preconditions, posts the order, and classifies the
// outcome. Precondition failures never reach the network.
func (s *Submitter) Submit(ctx context.Context, customerID int64, paymentMethod string, lines []cart.Line) error {
	if len(lines) == 0 {
		return services.Wrap(services.ErrPrecondition, "checkout", "submit", "cart is empty", nil)
	}
	if customerID <= 0 {
		return services.Wrap(services.ErrPrecondition, "checkout", "submit", "select a customer", nil)
	}

	lock := flock.New(s.lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("checkout submit: acquire lock: %w", err)
	}
	if !locked {
		return services.Wrap(services.ErrPrecondition, "checkout", "submit",
			"another checkout is already in progress", nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	s.state = StateSubmitting
	if err := s.post(ctx, BuildOrder(customerID, paymentMethod, lines)); err != nil {
		s.state = StateFailed
		return err
	}
	s.state = StateSucceeded
	return nil
}

func (s *Submitter) post(ctx context.Context, order OrderRequest) error {
	encoded, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("checkout submit: encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/ventas/crear/", bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("checkout submit: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if id, ok := services.RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", id)
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return services.Wrap(services.ErrTransport, "checkout", "submit",
			fmt.Sprintf("after %s", time.Since(start).Round(time.Millisecond)), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return services.Wrap(services.ErrTransport, "checkout", "submit", "read response", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return services.Wrap(services.ErrTransport, "checkout", "submit",
			extractErrorDetail(body), nil)
	}
	return nil
}

// extractErrorDetail pulls a human-readable message out of a failure body.
// The backend reports validation problems under "detalles" (a string, a list
// of strings, or a field map) and framework errors under "detail".
func extractErrorDetail(body []byte) string {
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(body, &decoded); err != nil {
		return genericFailureMessage
	}

	if raw, ok := decoded["detalles"]; ok {
		if msg := flattenDetail(raw); msg != "" {
			return msg
		}
	}
	if raw, ok := decoded["detail"]; ok {
		if msg := flattenDetail(raw); msg != "" {
			return msg
		}
	}
	return genericFailureMessage
}

func flattenDetail(raw json.RawMessage) string {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return strings.TrimSpace(asString)
	}

	var asList []string
	if err := json.Unmarshal(raw, &asList); err == nil {
		return strings.TrimSpace(strings.Join(asList, "; "))
	}

	var asMap map[string][]string
	if err := json.Unmarshal(raw, &asMap); err == nil {
		fields := make([]string, 0, len(asMap))
		for field := range asMap {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(asMap[field], "; ")))
		}
		return strings.TrimSpace(strings.Join(parts, "; "))
	}
	return ""
}
