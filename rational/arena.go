// SPDX-License-Identifier: MIT

package rational

import "sync"

// Arena owns every vector registered with it for the duration of one
// relaxation call. Release clears them all at once; vectors must not be used
// afterwards. An Arena is safe for concurrent Adopt calls so per-orthant
// workers can register their vertices directly.
type Arena struct {
	mu       sync.Mutex
	owned    []Vec
	released bool
}

// NewArena returns an empty arena.
func NewArena() *Arena { return &Arena{} }

// Adopt transfers ownership of vs to the arena.
// Errors: ErrReleased.
func (a *Arena) Adopt(vs ...Vec) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		return ErrReleased
	}
	a.owned = append(a.owned, vs...)

	return nil
}

// Len returns the number of vectors currently owned.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.owned)
}

// Release drops every owned entry. It is idempotent so it can be deferred
// alongside explicit early releases.
func (a *Arena) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		return
	}
	for _, v := range a.owned {
		for i := range v {
			v[i] = nil
		}
	}
	a.owned = nil
	a.released = true
}
