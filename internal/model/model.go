package model

import "time"

// User is a registered diner. Users are created by seeding (registration is
// an external precondition) and never deleted. Streak only grows: each
// successful order placed while the user's session is active adds one.
type User struct {
	ID        int        `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Streak    int        `json:"streak"`
	LastOrder *time.Time `json:"lastOrder,omitempty"`
}

// MenuItem is an immutable catalog entry. The Moods set drives the
// mood-based recommendation endpoint.
type MenuItem struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	Calories int      `json:"calories"`
	PrepTime int      `json:"prepTime"` // minutes
	Moods    []string `json:"mood"`
	Image    string   `json:"image,omitempty"`
}

// Order is an immutable record of a placed order. IDs are unique for the
// lifetime of the store.
type Order struct {
	ID            string    `json:"id"`
	Item          string    `json:"item"`
	Total         float64   `json:"total"`
	GST           float64   `json:"gst"`
	PaymentMethod string    `json:"paymentMethod"`
	Date          time.Time `json:"date"`
}

// Stats is the seeded dashboard aggregate. It is sample data: nothing
// recomputes it from Orders.
type Stats struct {
	DailyRevenue []float64 `json:"dailyRevenue"`
	Categories   []float64 `json:"categories"`
}

// State is the whole application state, persisted wholesale as a single
// record. CurrentUser is a snapshot of the logged-in user captured at login
// time; it is NOT kept in sync with Users automatically, so handlers that
// mutate a user must re-point it explicitly.
type State struct {
	Users       []User     `json:"users"`
	Orders      []Order    `json:"orders"`
	Menu        []MenuItem `json:"menu"`
	CurrentUser *User      `json:"currentUser"`
	Stats       Stats      `json:"stats"`
}

// UserByEmail returns a pointer into Users for the user with the given
// email, or nil if no user matches. Lookup is exact.
func (s *State) UserByEmail(email string) *User {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i]
		}
	}
	return nil
}

// UserByID returns a pointer into Users for the user with the given id,
// or nil if no user matches.
func (s *State) UserByID(id int) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// HasOrderID reports whether an order with the given id already exists.
func (s *State) HasOrderID(id string) bool {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return true
		}
	}
	return false
}

// MenuSnapshot returns a deep copy of the catalog. Callers may mutate the
// result without affecting the state.
func (s *State) MenuSnapshot() []MenuItem {
	items := make([]MenuItem, len(s.Menu))
	for i, item := range s.Menu {
		items[i] = item
		items[i].Moods = append([]string(nil), item.Moods...)
	}
	return items
}

// OrdersSnapshot returns a copy of the order history in insertion order.
func (s *State) OrdersSnapshot() []Order {
	orders := make([]Order, len(s.Orders))
	copy(orders, s.Orders)
	return orders
}

// StatsSnapshot returns a copy of the seeded stats.
func (s *State) StatsSnapshot() Stats {
	return Stats{
		DailyRevenue: append([]float64(nil), s.Stats.DailyRevenue...),
		Categories:   append([]float64(nil), s.Stats.Categories...),
	}
}
