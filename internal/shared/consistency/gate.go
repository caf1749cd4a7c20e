// Package consistency coordinates operations that span more than one store.
package consistency

import "sync"

// Gate serializes cross-store writers against cross-store readers.
//
// Order creation and the removal of users or dishes run as writers, so an
// order can never be accepted against an entity that is being removed. Order
// enrichment and aggregation run as readers and always observe either the
// state before a removal or the state after it.
type Gate struct {
	mu sync.RWMutex
}

// NewGate returns an open gate.
func NewGate() *Gate {
	return &Gate{}
}

// Write runs fn while no other reader or writer holds the gate.
func (g *Gate) Write(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn()
}

// Read runs fn concurrently with other readers but never alongside a writer.
func (g *Gate) Read(fn func() error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return fn()
}
