package generator

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontierDrainsTree(t *testing.T) {
	// Every popped state spawns two children until depth runs out, so the
	// workers must see 2^(depth+1)-1 states in total.
	const depth = 8
	f := newFrontier(state{path: "root", depth: depth})

	var (
		mu   sync.Mutex
		seen int
		wg   sync.WaitGroup
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				st, ok := f.pop()
				if !ok {
					return
				}
				var children []state
				if st.depth > 0 {
					children = []state{{depth: st.depth - 1}, {depth: st.depth - 1}}
				}
				mu.Lock()
				seen++
				mu.Unlock()
				f.finish(children)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1<<(depth+1)-1, seen)
	_, ok := f.pop()
	assert.False(t, ok)
}

func TestFrontierStopWakesWaiters(t *testing.T) {
	f := newFrontier(state{path: "root"})
	st, ok := f.pop()
	require.True(t, ok)
	assert.Equal(t, "root", st.path)

	// The root is still busy, so a second pop has to wait.
	woke := make(chan bool)
	go func() {
		_, ok := f.pop()
		woke <- ok
	}()

	select {
	case <-woke:
		t.Fatal("pop returned while a directory was still being populated")
	case <-time.After(50 * time.Millisecond):
	}

	f.stop()
	select {
	case ok := <-woke:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("stop did not wake the waiting pop")
	}

	f.finish([]state{{path: "late"}})
	_, ok = f.pop()
	assert.False(t, ok)
}
