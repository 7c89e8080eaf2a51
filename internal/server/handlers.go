package server

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/cases"

	"github.com/moodbite/moodbite/internal/model"
)

// maxRecommendations caps mood and time-of-day suggestion lists.
const maxRecommendations = 3

// Handlers operate on the state with the dispatch mutex held. Any handler
// that mutates state must persist before returning; a persistence failure
// propagates unrecovered to the caller of the enclosing endpoint.

func (s *Server) handleLogin(ctx context.Context, req LoginRequest) (LoginResult, error) {
	user := s.state.UserByEmail(req.Identifier)
	if user == nil {
		slog.Debug("login rejected", "identifier", req.Identifier)
		return LoginResult{Success: false, Message: "Invalid credentials"}, nil
	}

	// The session holds a snapshot captured now, not a live reference
	// into Users; later mutations must re-point it explicitly.
	session := copyUser(*user)
	s.state.CurrentUser = &session

	if err := s.persist(ctx); err != nil {
		return LoginResult{}, err
	}

	s.events.Append(fmt.Sprintf("User %s logged in.", user.Name))
	slog.Info("session started", "user_id", user.ID, "email", user.Email)

	result := copyUser(session)
	return LoginResult{Success: true, User: &result}, nil
}

func (s *Server) handleLogout(ctx context.Context) (LogoutResult, error) {
	if s.state.CurrentUser == nil {
		// Nothing to clear; no mutation, no save.
		return LogoutResult{Success: true}, nil
	}

	name := s.state.CurrentUser.Name
	s.state.CurrentUser = nil

	if err := s.persist(ctx); err != nil {
		return LogoutResult{}, err
	}

	s.events.Append(fmt.Sprintf("User %s logged out.", name))
	slog.Info("session ended", "user", name)
	return LogoutResult{Success: true}, nil
}

func (s *Server) handlePlaceOrder(ctx context.Context, req OrderRequest) (OrderResult, error) {
	s.events.Append("Processing transaction...")

	order := model.Order{
		ID:            s.uniqueOrderID(),
		Item:          req.Item,
		Total:         req.Total,
		GST:           req.GST,
		PaymentMethod: req.PaymentMethod,
		Date:          s.clock.Now(),
	}
	s.state.Orders = append(s.state.Orders, order)

	if cur := s.state.CurrentUser; cur != nil {
		if user := s.state.UserByID(cur.ID); user != nil {
			user.Streak++
			now := s.clock.Now()
			user.LastOrder = &now

			// The session snapshot was captured at login time and does
			// not track the Users collection; re-point it at the
			// updated user.
			session := copyUser(*user)
			s.state.CurrentUser = &session
		}
	}

	if err := s.persist(ctx); err != nil {
		return OrderResult{}, err
	}

	s.events.Append(fmt.Sprintf("Order %s confirmed. Total: $%.2f", order.ID, order.Total))
	slog.Info("order placed",
		"order_id", order.ID,
		"item", order.Item,
		"total", order.Total,
	)

	return OrderResult{Success: true, OrderID: order.ID}, nil
}

func (s *Server) handleRecommend(req RecommendRequest) RecommendResult {
	s.events.Append(fmt.Sprintf("AI Engine: Analyzing mood %q...", req.Mood))

	// Unicode case folding so "happy", "HAPPY" and "Happy" all match.
	fold := cases.Fold()
	want := fold.String(req.Mood)

	recommendations := make([]model.MenuItem, 0, maxRecommendations)
	for _, item := range s.state.Menu {
		if len(recommendations) == maxRecommendations {
			break
		}
		for _, mood := range item.Moods {
			if fold.String(mood) == want {
				recommendations = append(recommendations, copyMenuItem(item))
				break
			}
		}
	}

	return RecommendResult{Success: true, Recommendations: recommendations}
}

func (s *Server) handleSuggest() SuggestResult {
	hour := s.clock.Now().Hour()

	var message string
	var categories []string
	switch {
	case hour >= 6 && hour < 11:
		message = "Start your day with these!"
		categories = []string{"Drinks"}
	case hour >= 11 && hour < 17:
		message = "Perfect for Lunch!"
		categories = []string{"Veg", "Non-Veg"}
	default:
		message = "Relax with these Dinner options!"
		categories = []string{"Dessert"}
	}

	items := make([]model.MenuItem, 0, maxRecommendations)
	for _, item := range s.state.Menu {
		if len(items) == maxRecommendations {
			break
		}
		for _, category := range categories {
			if item.Category == category {
				items = append(items, copyMenuItem(item))
				break
			}
		}
	}

	return SuggestResult{Message: message, Items: items}
}

// uniqueOrderID draws candidate ids until one is free. Ids stay unique for
// the store lifetime even if the generator repeats itself.
func (s *Server) uniqueOrderID() string {
	for {
		id := s.orderIDs.Generate()
		if !s.state.HasOrderID(id) {
			return id
		}
	}
}

// persist writes the whole state through to the store.
func (s *Server) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.state); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}

// copyUser returns a deep copy so session snapshots and results never
// alias the Users collection.
func copyUser(u model.User) model.User {
	if u.LastOrder != nil {
		t := *u.LastOrder
		u.LastOrder = &t
	}
	return u
}

// copyMenuItem returns a deep copy of a catalog entry.
func copyMenuItem(item model.MenuItem) model.MenuItem {
	item.Moods = append([]string(nil), item.Moods...)
	return item
}
