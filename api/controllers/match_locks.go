package controllers

import "sync"

// Vote mutations are read-modify-write over a JSON voter column, so two
// interleaved requests for the same match would lose one update. A
// per-match mutex serializes them within the process.
var (
	matchLocks   = make(map[string]*sync.Mutex)
	matchLocksMu sync.Mutex
)

func lockMatch(id string) *sync.Mutex {
	matchLocksMu.Lock()
	mu, exists := matchLocks[id]
	if !exists {
		mu = &sync.Mutex{}
		matchLocks[id] = mu
	}
	matchLocksMu.Unlock()

	mu.Lock()
	return mu
}
