package probably

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSynchronizedCheckAndSetOnce(t *testing.T) {
	s := NewSynchronized(New[string](1024))

	var wg sync.WaitGroup
	var unseen atomic.Int32
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !s.CheckAndSet("request-1") {
				unseen.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), unseen.Load())
	require.True(t, s.Check("request-1"))
}

func TestSynchronizedConcurrentSet(t *testing.T) {
	s := NewSynchronized(New[string](1 << 12))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Set(fmt.Sprintf("w%d-%d", w, i))
			}
		}(w)
	}
	wg.Wait()

	for w := 0; w < 8; w++ {
		for i := 0; i < 100; i++ {
			require.True(t, s.Check(fmt.Sprintf("w%d-%d", w, i)))
		}
	}
	require.NotZero(t, s.Count())

	s.Clear()
	require.Zero(t, s.Count())
}
