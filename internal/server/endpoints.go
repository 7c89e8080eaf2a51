package server

import (
	"strings"

	"github.com/moodbite/moodbite/internal/model"
)

// Verb distinguishes read endpoints from write endpoints.
type Verb int

const (
	// VerbRead endpoints take no payload and never mutate state.
	VerbRead Verb = iota + 1
	// VerbWrite endpoints take a typed payload and may mutate state.
	VerbWrite
)

// String returns the HTTP-style name of the verb.
func (v Verb) String() string {
	switch v {
	case VerbRead:
		return "GET"
	case VerbWrite:
		return "POST"
	default:
		return "UNKNOWN"
	}
}

// Endpoint is a closed enumeration of the operations the virtual server
// supports. Routing over this enumeration (rather than free-form strings)
// means an unknown route is an explicit error, never a silent absent
// result.
type Endpoint int

const (
	EndpointLogin Endpoint = iota + 1
	EndpointLogout
	EndpointPlaceOrder
	EndpointRecommend
	EndpointChat
	EndpointMenu
	EndpointOrders
	EndpointStats
	EndpointSuggest
)

// endpointInfo carries the wire-level identity of an endpoint.
type endpointInfo struct {
	path string
	verb Verb
}

var endpoints = map[Endpoint]endpointInfo{
	EndpointLogin:      {path: "/api/auth/login", verb: VerbWrite},
	EndpointLogout:     {path: "/api/auth/logout", verb: VerbWrite},
	EndpointPlaceOrder: {path: "/api/orders/place", verb: VerbWrite},
	EndpointRecommend:  {path: "/api/ai/recommend", verb: VerbWrite},
	EndpointChat:       {path: "/api/ai/chat", verb: VerbWrite},
	EndpointMenu:       {path: "/api/menu", verb: VerbRead},
	EndpointOrders:     {path: "/api/orders", verb: VerbRead},
	EndpointStats:      {path: "/api/stats", verb: VerbRead},
	EndpointSuggest:    {path: "/api/ai/suggest", verb: VerbRead},
}

// Path returns the URL-like name of the endpoint.
func (e Endpoint) Path() string {
	return endpoints[e].path
}

// Verb returns the verb the endpoint is reached through.
func (e Endpoint) Verb() Verb {
	return endpoints[e].verb
}

// String returns the endpoint path for logging.
func (e Endpoint) String() string {
	if info, ok := endpoints[e]; ok {
		return info.path
	}
	return "unknown"
}

// ParseEndpoint resolves a URL-like path against the routing table.
// Trailing slashes are ignored. Unknown paths return an UNKNOWN_ROUTE
// request error.
func ParseEndpoint(path string) (Endpoint, error) {
	trimmed := strings.TrimRight(path, "/")
	for e, info := range endpoints {
		if info.path == trimmed {
			return e, nil
		}
	}
	return 0, NewUnknownRouteError(path)
}

// LoginRequest identifies the user starting a session. The identifier is
// matched exactly against user emails.
type LoginRequest struct {
	Identifier string `json:"identifier"`
}

func (r LoginRequest) validate() error {
	if r.Identifier == "" {
		return NewInvalidPayloadError(EndpointLogin, "identifier is required")
	}
	return nil
}

// LoginResult reports the outcome of a session-start call. On failure,
// Message carries the user-facing reason and User is nil.
type LoginResult struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user,omitempty"`
	Message string      `json:"message,omitempty"`
}

// LogoutResult reports the outcome of a session-end call.
type LogoutResult struct {
	Success bool `json:"success"`
}

// OrderRequest is the order-placement payload.
type OrderRequest struct {
	Item          string  `json:"item"`
	Total         float64 `json:"total"`
	GST           float64 `json:"gst"`
	PaymentMethod string  `json:"paymentMethod"`
}

func (r OrderRequest) validate() error {
	switch {
	case r.Item == "":
		return NewInvalidPayloadError(EndpointPlaceOrder, "item is required")
	case r.Total <= 0:
		return NewInvalidPayloadError(EndpointPlaceOrder, "total must be positive")
	case r.GST < 0:
		return NewInvalidPayloadError(EndpointPlaceOrder, "gst must not be negative")
	case r.PaymentMethod == "":
		return NewInvalidPayloadError(EndpointPlaceOrder, "paymentMethod is required")
	}
	return nil
}

// OrderResult carries the generated order id of a successful placement.
type OrderResult struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

// RecommendRequest asks for catalog entries matching a mood.
type RecommendRequest struct {
	Mood string `json:"mood"`
}

func (r RecommendRequest) validate() error {
	if r.Mood == "" {
		return NewInvalidPayloadError(EndpointRecommend, "mood is required")
	}
	return nil
}

// RecommendResult holds up to three matching catalog entries in catalog
// order. An unmatched mood yields Success true with an empty list.
type RecommendResult struct {
	Success         bool             `json:"success"`
	Recommendations []model.MenuItem `json:"recommendations"`
}

// ChatRequest is a single message to Chef AI.
type ChatRequest struct {
	Message string `json:"message"`
}

func (r ChatRequest) validate() error {
	if r.Message == "" {
		return NewInvalidPayloadError(EndpointChat, "message is required")
	}
	return nil
}

// ChatResult carries the reply, or Success false when the responder is
// unavailable.
type ChatResult struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply,omitempty"`
}

// SuggestResult holds the time-of-day suggestion banner and up to three
// catalog entries from the matching categories.
type SuggestResult struct {
	Message string           `json:"message"`
	Items   []model.MenuItem `json:"items"`
}
