package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/moodbite/moodbite/internal/model"
)

// Golden snapshots pin the default state layout and the activity narration
// of the canonical login-then-order flow. Regenerate with:
//
//	go test ./internal/server -update
func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestGolden_DefaultState(t *testing.T) {
	data, err := json.MarshalIndent(model.DefaultState(), "", "  ")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "default_state", data)
}

func TestGolden_LoginOrderTrace(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUsers(t, st)
	srv := newTestServer(t, st, WithOrderIDGenerator(NewFixedOrderIDGenerator("ORDA1B2C3")))

	_, err := srv.Login(ctx, LoginRequest{Identifier: "ana@example.com"})
	require.NoError(t, err)
	_, err = srv.PlaceOrder(ctx, OrderRequest{
		Item: "Dragon Fire wings", Total: 18.88, GST: 2.88, PaymentMethod: "Credit Card",
	})
	require.NoError(t, err)

	// Narration in chronological order; ids and timestamps vary per run
	// and stay out of the snapshot.
	entries := srv.Events().Entries()
	messages := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		messages = append(messages, entries[i].Message)
	}

	data, err := json.MarshalIndent(messages, "", "  ")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "login_order_trace", data)
}
