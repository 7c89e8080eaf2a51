package server

import (
	"crypto/rand"
	"fmt"
	"sync"
)

// OrderIDPrefix is the fixed prefix of every generated order id.
const OrderIDPrefix = "ORD"

// orderIDAlphabet is the uppercase alphanumeric suffix alphabet.
const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// orderIDSuffixLen is the number of random characters after the prefix.
const orderIDSuffixLen = 6

// OrderIDGenerator generates candidate order ids. Implemented by
// RandomOrderIDGenerator (production) and FixedOrderIDGenerator (tests).
// The order handler retries against the existing history, so a generator
// may occasionally repeat itself without breaking the uniqueness invariant.
type OrderIDGenerator interface {
	Generate() string
}

// RandomOrderIDGenerator produces ids of the form ORD followed by six
// random uppercase alphanumerics ("ORDA1B2C3").
//
// Thread-safety: RandomOrderIDGenerator is stateless and safe for
// concurrent use.
type RandomOrderIDGenerator struct{}

// Generate creates a new random order id.
// Panics if the system randomness source fails (should never happen in
// practice).
func (RandomOrderIDGenerator) Generate() string {
	buf := make([]byte, orderIDSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("order id generation: %v", err))
	}
	for i, b := range buf {
		buf[i] = orderIDAlphabet[int(b)%len(orderIDAlphabet)]
	}
	return OrderIDPrefix + string(buf)
}

// FixedOrderIDGenerator returns predetermined ids for testing.
//
// This enables deterministic scenarios and golden trace comparison.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedOrderIDGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedOrderIDGenerator creates a generator that returns ids in order.
//
// Panics when all ids are consumed - a fail-fast guard against test
// misconfiguration (the test placed more orders than expected).
func NewFixedOrderIDGenerator(ids ...string) *FixedOrderIDGenerator {
	return &FixedOrderIDGenerator{ids: ids}
}

// Generate returns the next predetermined id.
func (g *FixedOrderIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedOrderIDGenerator: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
