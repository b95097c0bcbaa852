package store

// Ticket identifies one request against a logical resource, such as the key
// list or a single key.
type Ticket struct {
	Resource string
	Seq      uint64
}

// Begin issues the next ticket for resource.
func (s *Store) Begin(resource string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued[resource]++
	return Ticket{Resource: resource, Seq: s.issued[resource]}
}

// Commit runs fn unless a newer ticket for the same resource has already
// been committed, and reports whether fn ran. Stale responses are dropped.
func (s *Store) Commit(t Ticket, fn func(*Store)) bool {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	if t.Seq <= s.committed[t.Resource] {
		s.mu.Unlock()
		return false
	}
	s.committed[t.Resource] = t.Seq
	s.mu.Unlock()

	fn(s)
	return true
}

// Retire invalidates every ticket issued so far for resource and then runs
// fn. Writes that must win over in-flight reads, such as a delete, go
// through Retire instead of Commit. No Commit callback runs concurrently
// with fn.
func (s *Store) Retire(resource string, fn func(*Store)) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	s.committed[resource] = s.issued[resource]
	s.mu.Unlock()

	fn(s)
}
