package generator

import "sync"

// frontier holds directories that exist on disk but have not been populated
// yet. It is a stack, so workers walk the tree depth-first and the backlog
// stays proportional to depth times fan-out rather than to the tree size.
type frontier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []state
	busy    int
	done    bool
}

func newFrontier(root state) *frontier {
	f := &frontier{pending: []state{root}}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// pop blocks until a directory is available. It reports false once every
// directory has been populated or the frontier was stopped.
func (f *frontier) pop() (state, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for !f.done && len(f.pending) == 0 {
		if f.busy == 0 {
			// Nothing queued and nobody left to queue more.
			f.done = true
			f.cond.Broadcast()
			break
		}
		f.cond.Wait()
	}
	if f.done {
		return state{}, false
	}

	last := len(f.pending) - 1
	st := f.pending[last]
	f.pending[last] = state{}
	f.pending = f.pending[:last]
	f.busy++
	return st, true
}

// finish marks a popped directory as done and queues its children.
func (f *frontier) finish(children []state) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pending = append(f.pending, children...)
	f.busy--
	if len(children) > 0 || f.busy == 0 {
		f.cond.Broadcast()
	}
}

// stop wakes every waiting worker and makes further pops fail.
func (f *frontier) stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.done = true
	f.cond.Broadcast()
}
