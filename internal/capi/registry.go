package capi

import "sync"

// Registry records the addresses of output buffers currently owned by C
// callers.
type Registry struct {
	mu   sync.Mutex
	live map[uintptr]struct{}
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{live: map[uintptr]struct{}{}}
}

// Track records addr as handed out. The zero address is ignored.
func (r *Registry) Track(addr uintptr) {
	if addr == 0 {
		return
	}
	r.mu.Lock()
	r.live[addr] = struct{}{}
	r.mu.Unlock()
}

// Release forgets addr and reports whether it was outstanding. A false result
// means the caller is freeing a buffer twice or one the library never issued.
func (r *Registry) Release(addr uintptr) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live[addr]; !ok {
		return false
	}
	delete(r.live, addr)
	return true
}

// Outstanding returns the number of buffers not yet freed.
func (r *Registry) Outstanding() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}
