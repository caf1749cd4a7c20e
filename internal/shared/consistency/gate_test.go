package consistency

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGatePropagatesErrors(t *testing.T) {
	g := NewGate()
	boom := errors.New("boom")
	require.ErrorIs(t, g.Write(func() error { return boom }), boom)
	require.ErrorIs(t, g.Read(func() error { return boom }), boom)
	require.NoError(t, g.Read(func() error { return nil }))
}

func TestGateSerializesWriters(t *testing.T) {
	g := NewGate()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = g.Write(func() error {
				counter++
				return nil
			})
		}()
		go func() {
			defer wg.Done()
			_ = g.Read(func() error {
				_ = counter
				return nil
			})
		}()
	}
	wg.Wait()
	require.Equal(t, 50, counter)
}
