package restsvc

import "sync"

// Sequencer hands out a monotonic token per resource so a view can discard
// responses that were superseded while in flight (a slow 30s poll racing a
// user-triggered refresh). Issue a token before each fetch; apply the
// result only while the token is still the latest for that resource.
type Sequencer struct {
	mu   sync.Mutex
	last map[string]uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{last: make(map[string]uint64)}
}

// Next issues the token for a new request on resource.
func (s *Sequencer) Next(resource string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last[resource]++
	return s.last[resource]
}

// Latest reports whether token is still the newest issued for resource.
func (s *Sequencer) Latest(resource string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last[resource] == token
}
