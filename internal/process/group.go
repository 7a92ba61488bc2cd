// Package process terminates the headless browser trees spawned for PDF
// export. Chrome forks renderer and GPU helpers that outlive their parent
// when only the launcher is killed.
package process

import "sync"

// Group tracks browser process ids so they can be killed together.
type Group struct {
	mu   sync.Mutex
	pids map[int]struct{}
}

// Track records pid. Non-positive ids are ignored.
func (g *Group) Track(pid int) {
	if pid <= 0 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pids == nil {
		g.pids = make(map[int]struct{})
	}
	g.pids[pid] = struct{}{}
}

// Len returns the number of tracked processes.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pids)
}

// KillAll kills every tracked process tree and forgets them. Best effort:
// processes that already exited are ignored.
func (g *Group) KillAll() {
	g.mu.Lock()
	pids := g.pids
	g.pids = nil
	g.mu.Unlock()

	for pid := range pids {
		killTree(pid)
	}
}
