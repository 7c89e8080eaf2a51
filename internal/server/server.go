package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/moodbite/moodbite/internal/chat"
	"github.com/moodbite/moodbite/internal/eventlog"
	"github.com/moodbite/moodbite/internal/model"
	"github.com/moodbite/moodbite/internal/store"
)

// Server is the virtual server: request dispatcher, latency simulator, and
// owner of the application state.
//
// CRITICAL: the state is the single source of truth and is persisted
// write-through - every handler that mutates it saves before returning,
// so persisted and in-memory state never drift.
//
// INVARIANTS:
//   - Order ids are pairwise distinct for the store lifetime
//   - User streaks never decrease
//   - At most one handler mutates state at a time (mu)
type Server struct {
	mu         sync.Mutex
	store      *store.Store
	state      *model.State
	events     *eventlog.Log
	clock      Clock
	delay      DelayStrategy
	readDelay  time.Duration
	writeDelay time.Duration
	orderIDs   OrderIDGenerator
	chat       chat.Responder
}

// Option allows configuration of server parameters.
type Option func(*Server)

// WithClock substitutes the wall clock. Tests use a deterministic clock.
func WithClock(clock Clock) Option {
	return func(s *Server) { s.clock = clock }
}

// WithDelayStrategy substitutes the latency simulation. Tests use a
// zero-delay strategy for determinism.
func WithDelayStrategy(delay DelayStrategy) Option {
	return func(s *Server) { s.delay = delay }
}

// WithReadDelay overrides the simulated latency of read endpoints.
func WithReadDelay(d time.Duration) Option {
	return func(s *Server) { s.readDelay = d }
}

// WithWriteDelay overrides the simulated latency of write endpoints.
func WithWriteDelay(d time.Duration) Option {
	return func(s *Server) { s.writeDelay = d }
}

// WithOrderIDGenerator substitutes the order id generator.
func WithOrderIDGenerator(gen OrderIDGenerator) Option {
	return func(s *Server) { s.orderIDs = gen }
}

// WithChatResponder substitutes the ai/chat reply source.
func WithChatResponder(responder chat.Responder) Option {
	return func(s *Server) { s.chat = responder }
}

// New creates a Server backed by the given store. Prior state is loaded
// wholesale; if none exists the default state is materialized and
// persisted exactly once.
func New(ctx context.Context, st *store.Store, opts ...Option) (*Server, error) {
	s := &Server{
		store:      st,
		clock:      SystemClock(),
		delay:      SleepDelay(),
		readDelay:  DefaultReadDelay,
		writeDelay: DefaultWriteDelay,
		orderIDs:   RandomOrderIDGenerator{},
		chat:       chat.NewCanned(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.events = eventlog.New(eventlog.WithNow(s.clock.Now))

	state, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	s.state = state

	s.events.Append("Virtual server initialized. Ready for requests.")
	slog.Info("virtual server initialized",
		"users", len(state.Users),
		"orders", len(state.Orders),
		"menu_items", len(state.Menu),
	)

	return s, nil
}

// Events returns the server's activity log for subscription and display.
func (s *Server) Events() *eventlog.Log {
	return s.events
}

// Session returns a copy of the currently logged-in user, or nil when no
// session is active.
func (s *Server) Session() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentUser == nil {
		return nil
	}
	u := copyUser(*s.state.CurrentUser)
	return &u
}

// Get dispatches a read request by its URL-like path.
// Unknown paths - including write endpoints - return UNKNOWN_ROUTE.
func (s *Server) Get(ctx context.Context, path string) (any, error) {
	ep, err := ParseEndpoint(path)
	if err != nil {
		return nil, err
	}

	switch ep {
	case EndpointMenu:
		return s.Menu(ctx)
	case EndpointOrders:
		return s.Orders(ctx)
	case EndpointStats:
		return s.Stats(ctx)
	case EndpointSuggest:
		return s.Suggest(ctx)
	default:
		return nil, NewUnknownRouteError(path)
	}
}

// Post dispatches a write request by its URL-like path with a JSON payload.
// Unknown paths - including read endpoints - return UNKNOWN_ROUTE; payloads
// that fail to decode return INVALID_PAYLOAD before any handler runs.
func (s *Server) Post(ctx context.Context, path string, payload []byte) (any, error) {
	ep, err := ParseEndpoint(path)
	if err != nil {
		return nil, err
	}

	if len(payload) == 0 {
		payload = []byte("{}")
	}

	switch ep {
	case EndpointLogin:
		var req LoginRequest
		if err := decodePayload(ep, payload, &req); err != nil {
			return nil, err
		}
		return s.Login(ctx, req)
	case EndpointLogout:
		return s.Logout(ctx)
	case EndpointPlaceOrder:
		var req OrderRequest
		if err := decodePayload(ep, payload, &req); err != nil {
			return nil, err
		}
		return s.PlaceOrder(ctx, req)
	case EndpointRecommend:
		var req RecommendRequest
		if err := decodePayload(ep, payload, &req); err != nil {
			return nil, err
		}
		return s.Recommend(ctx, req)
	case EndpointChat:
		var req ChatRequest
		if err := decodePayload(ep, payload, &req); err != nil {
			return nil, err
		}
		return s.Chat(ctx, req)
	default:
		return nil, NewUnknownRouteError(path)
	}
}

// Login starts a session for the user matching the identifier.
func (s *Server) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	if err := req.validate(); err != nil {
		return LoginResult{}, err
	}
	if err := s.begin(ctx, EndpointLogin); err != nil {
		return LoginResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handleLogin(ctx, req)
}

// Logout ends the current session, if any.
func (s *Server) Logout(ctx context.Context) (LogoutResult, error) {
	if err := s.begin(ctx, EndpointLogout); err != nil {
		return LogoutResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handleLogout(ctx)
}

// PlaceOrder appends a new order and updates the session user's streak.
func (s *Server) PlaceOrder(ctx context.Context, req OrderRequest) (OrderResult, error) {
	if err := req.validate(); err != nil {
		return OrderResult{}, err
	}
	if err := s.begin(ctx, EndpointPlaceOrder); err != nil {
		return OrderResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handlePlaceOrder(ctx, req)
}

// Recommend returns up to three catalog entries matching the mood.
func (s *Server) Recommend(ctx context.Context, req RecommendRequest) (RecommendResult, error) {
	if err := req.validate(); err != nil {
		return RecommendResult{}, err
	}
	if err := s.begin(ctx, EndpointRecommend); err != nil {
		return RecommendResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handleRecommend(req), nil
}

// Chat relays a message to the chat responder. A responder failure is not
// fatal: it yields a Success=false result, mirroring how every other
// handler reports recoverable failures.
func (s *Server) Chat(ctx context.Context, req ChatRequest) (ChatResult, error) {
	if err := req.validate(); err != nil {
		return ChatResult{}, err
	}
	if err := s.begin(ctx, EndpointChat); err != nil {
		return ChatResult{}, err
	}

	// No state access: the responder call happens outside the mutex so a
	// slow provider never blocks dispatch.
	reply, err := s.chat.Reply(ctx, req.Message)
	if err != nil {
		slog.Error("chat responder failed", "error", err)
		s.events.Append("Chef AI is unavailable right now.")
		return ChatResult{Success: false}, nil
	}

	return ChatResult{Success: true, Reply: reply}, nil
}

// Menu returns the full catalog.
func (s *Server) Menu(ctx context.Context) ([]model.MenuItem, error) {
	if err := s.begin(ctx, EndpointMenu); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.MenuSnapshot(), nil
}

// Orders returns the order history in placement order.
func (s *Server) Orders(ctx context.Context) ([]model.Order, error) {
	if err := s.begin(ctx, EndpointOrders); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.OrdersSnapshot(), nil
}

// Stats returns the seeded dashboard aggregate.
func (s *Server) Stats(ctx context.Context) (model.Stats, error) {
	if err := s.begin(ctx, EndpointStats); err != nil {
		return model.Stats{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.StatsSnapshot(), nil
}

// Suggest returns time-of-day suggestions from the catalog.
func (s *Server) Suggest(ctx context.Context) (SuggestResult, error) {
	if err := s.begin(ctx, EndpointSuggest); err != nil {
		return SuggestResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handleSuggest(), nil
}

// begin logs the request intent and waits the simulated network latency
// for the endpoint's verb. The delay happens before the dispatch mutex is
// taken, so overlapping callers serialize handlers, not latency.
func (s *Server) begin(ctx context.Context, ep Endpoint) error {
	s.events.Append(fmt.Sprintf("%s request to %s...", ep.Verb(), ep.Path()))
	slog.Debug("dispatching request", "verb", ep.Verb().String(), "endpoint", ep.Path())

	d := s.readDelay
	if ep.Verb() == VerbWrite {
		d = s.writeDelay
	}
	if err := s.delay.Wait(ctx, d); err != nil {
		return fmt.Errorf("request to %s interrupted: %w", ep.Path(), err)
	}
	return nil
}

// decodePayload parses a JSON payload into the endpoint's typed request.
func decodePayload(ep Endpoint, payload []byte, req any) error {
	if err := json.Unmarshal(payload, req); err != nil {
		return NewInvalidPayloadError(ep, fmt.Sprintf("invalid JSON payload: %v", err))
	}
	return nil
}
