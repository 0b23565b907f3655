package mover

import (
	"os"
	"sync"
)

// claimTable is the in-memory set of destination paths reserved during a
// run, guarding against two source files with identical base names
// colliding in-flight even under dry-run.
type claimTable struct {
	mu      sync.Mutex
	claimed map[string]bool
}

func newClaimTable() *claimTable {
	return &claimTable{claimed: make(map[string]bool)}
}

// isFree reports whether path is neither already on disk nor already
// claimed by an earlier candidate in this run.
func (c *claimTable) isFree(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.claimed[path] {
		return false
	}
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}

// claim reserves path for the duration of the run.
func (c *claimTable) claim(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.claimed[path] = true
}
