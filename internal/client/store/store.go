// Package store keeps the in-memory mirror of the signed-in user's security
// keys and notifies subscribers whenever it changes.
//
// A Store is created with New and injected where it is needed; it is safe
// for concurrent use. Subscribers run on the mutating goroutine after the
// internal lock has been released, so they may read the store freely.
package store

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/securevault/internal/client/models"
)

// State is a point-in-time copy of the store contents.
type State struct {
	Keys     []*models.SecurityKey
	Selected *models.SecurityKey
	Loading  bool
	Error    string
}

// Listener receives the state after every change.
type Listener func(State)

type Store struct {
	// commitMu serializes ticket callbacks; it is always taken before mu.
	commitMu sync.Mutex
	mu       sync.Mutex
	keys     []*models.SecurityKey
	selected *models.SecurityKey
	loading  bool
	errMsg   string

	listeners map[int]Listener
	nextID    int

	issued    map[string]uint64
	committed map[string]uint64
}

func New() *Store {
	return &Store{
		listeners: make(map[int]Listener),
		issued:    make(map[string]uint64),
		committed: make(map[string]uint64),
	}
}

// SetAll replaces the whole collection.
func (s *Store) SetAll(keys []*models.SecurityKey) {
	s.mutate(func() bool {
		s.keys = make([]*models.SecurityKey, 0, len(keys))
		for _, k := range keys {
			if k != nil {
				s.keys = append(s.keys, k.Clone())
			}
		}
		return true
	})
}

// Add appends k, or replaces the entry with the same ID in place. A focused
// record with that ID is refreshed as well.
func (s *Store) Add(k *models.SecurityKey) {
	if k == nil {
		return
	}
	s.mutate(func() bool {
		if i := s.indexOf(k.ID); i >= 0 {
			s.keys[i] = k.Clone()
			if s.selected != nil && s.selected.ID == k.ID {
				s.selected = k.Clone()
			}
			return true
		}
		s.keys = append(s.keys, k.Clone())
		return true
	})
}

// Update replaces the entry whose ID matches k. Unknown IDs are ignored and
// do not notify.
func (s *Store) Update(k *models.SecurityKey) {
	if k == nil {
		return
	}
	s.mutate(func() bool {
		i := s.indexOf(k.ID)
		if i < 0 {
			return false
		}
		s.keys[i] = k.Clone()
		if s.selected != nil && s.selected.ID == k.ID {
			s.selected = k.Clone()
		}
		return true
	})
}

// Remove drops the entry with the given ID and clears the focus if it points
// at that ID. Removing an absent ID is a no-op.
func (s *Store) Remove(id string) {
	s.mutate(func() bool {
		changed := false
		if i := s.indexOf(id); i >= 0 {
			s.keys = slices.Delete(s.keys, i, i+1)
			changed = true
		}
		if s.selected != nil && s.selected.ID == id {
			s.selected = nil
			changed = true
		}
		return changed
	})
}

// Select sets the focused record. It does not need to be part of the
// collection; nil clears the focus.
func (s *Store) Select(k *models.SecurityKey) {
	s.mutate(func() bool {
		s.selected = k.Clone()
		return true
	})
}

func (s *Store) SetLoading(v bool) {
	s.mutate(func() bool {
		if s.loading == v {
			return false
		}
		s.loading = v
		return true
	})
}

func (s *Store) SetError(msg string) {
	s.mutate(func() bool {
		s.errMsg = msg
		return true
	})
}

func (s *Store) ClearError() {
	s.mutate(func() bool {
		if s.errMsg == "" {
			return false
		}
		s.errMsg = ""
		return true
	})
}

// Reset empties the store, e.g. on sign out.
func (s *Store) Reset() {
	s.mutate(func() bool {
		s.keys = nil
		s.selected = nil
		s.loading = false
		s.errMsg = ""
		return true
	})
}

// Get returns a copy of the entry with the given ID.
func (s *Store) Get(id string) (*models.SecurityKey, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.keys[i].Clone(), true
	}
	return nil, false
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn and returns a func that removes it. The returned
// func may be called more than once.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) mutate(fn func() bool) {
	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return
	}
	st := s.snapshotLocked()
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.mu.Unlock()

	for _, l := range ls {
		l(st)
	}
}

func (s *Store) snapshotLocked() State {
	keys := make([]*models.SecurityKey, len(s.keys))
	for i, k := range s.keys {
		keys[i] = k.Clone()
	}
	return State{
		Keys:     keys,
		Selected: s.selected.Clone(),
		Loading:  s.loading,
		Error:    s.errMsg,
	}
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.keys, func(k *models.SecurityKey) bool { return k.ID == id })
}
