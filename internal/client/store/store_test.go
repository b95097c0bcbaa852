package store

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/dmitrijs2005/securevault/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(id, name string) *models.SecurityKey {
	return &models.SecurityKey{ID: id, Name: name, Type: models.KeyTypePassword, Value: "v"}
}

func ids(st State) []string {
	out := make([]string, len(st.Keys))
	for i, k := range st.Keys {
		out[i] = k.ID
	}
	return out
}

func TestStore_AddPreservesInsertionOrder(t *testing.T) {
	s := New()
	s.Add(key("b", "B"))
	s.Add(key("a", "A"))
	s.Add(key("c", "C"))
	assert.Equal(t, []string{"b", "a", "c"}, ids(s.Snapshot()))
}

func TestStore_AddIsUpsertByID(t *testing.T) {
	s := New()
	s.Add(key("1", "first"))
	s.Add(key("2", "second"))
	s.Add(key("1", "again"))

	st := s.Snapshot()
	require.Equal(t, []string{"1", "2"}, ids(st))
	assert.Equal(t, "again", st.Keys[0].Name)
}

func TestStore_UpdateMissingIsNoop(t *testing.T) {
	s := New()
	s.Add(key("1", "one"))

	calls := 0
	s.Subscribe(func(State) { calls++ })

	s.Update(key("404", "ghost"))

	assert.Equal(t, []string{"1"}, ids(s.Snapshot()))
	assert.Zero(t, calls)
}

func TestStore_UpdateReplacesAndRefreshesSelection(t *testing.T) {
	s := New()
	s.Add(key("42", "old"))
	s.Select(key("42", "old"))

	s.Update(key("42", "Renamed"))

	st := s.Snapshot()
	assert.Equal(t, "Renamed", st.Keys[0].Name)
	assert.Equal(t, "Renamed", st.Selected.Name)
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	s := New()
	s.Add(key("7", "seven"))
	s.Add(key("8", "eight"))

	s.Remove("7")
	s.Remove("7")

	assert.Equal(t, []string{"8"}, ids(s.Snapshot()))
}

func TestStore_RemoveClearsSelection(t *testing.T) {
	s := New()
	s.Add(key("7", "seven"))
	s.Select(key("7", "seven"))

	s.Remove("7")
	assert.Nil(t, s.Snapshot().Selected)

	s.Select(key("9", "detached"))
	calls := 0
	unsub := s.Subscribe(func(State) { calls++ })
	defer unsub()
	s.Remove("9")
	assert.Nil(t, s.Snapshot().Selected)
	assert.Equal(t, 1, calls)
}

func TestStore_AddUpsertRefreshesSelection(t *testing.T) {
	s := New()
	s.Add(key("1", "a"))
	s.Add(key("2", "b"))
	s.Select(key("1", "a"))

	s.Add(key("1", "a2"))
	assert.Equal(t, "a2", s.Snapshot().Selected.Name)

	s.Add(key("2", "b2"))
	assert.Equal(t, "a2", s.Snapshot().Selected.Name)
}

func TestStore_SetAllReplaces(t *testing.T) {
	s := New()
	s.Add(key("old", "x"))
	s.SetAll([]*models.SecurityKey{key("1", "a"), nil, key("2", "b")})
	assert.Equal(t, []string{"1", "2"}, ids(s.Snapshot()))
}

func TestStore_SelectIndependentOfCollection(t *testing.T) {
	s := New()
	s.Select(key("99", "detached"))
	st := s.Snapshot()
	require.NotNil(t, st.Selected)
	assert.Empty(t, st.Keys)

	s.Select(nil)
	assert.Nil(t, s.Snapshot().Selected)
}

func TestStore_StatusFlags(t *testing.T) {
	s := New()
	s.SetLoading(true)
	s.SetError("boom")

	st := s.Snapshot()
	assert.True(t, st.Loading)
	assert.Equal(t, "boom", st.Error)

	s.ClearError()
	s.SetLoading(false)
	st = s.Snapshot()
	assert.False(t, st.Loading)
	assert.Empty(t, st.Error)
}

func TestStore_SnapshotDoesNotAlias(t *testing.T) {
	s := New()
	k := key("1", "orig")
	s.Add(k)

	k.Name = "mutated by caller"
	st := s.Snapshot()
	st.Keys[0].Name = "mutated by view"

	got, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "orig", got.Name)
}

func TestStore_Reset(t *testing.T) {
	s := New()
	s.Add(key("1", "a"))
	s.Select(key("1", "a"))
	s.SetError("e")
	s.Reset()
	assert.Equal(t, State{Keys: []*models.SecurityKey{}}, s.Snapshot())
}

func TestStore_SubscribeAndUnsubscribe(t *testing.T) {
	s := New()
	var got []State
	unsub := s.Subscribe(func(st State) { got = append(got, st) })

	s.Add(key("1", "a"))
	unsub()
	unsub()
	s.Add(key("2", "b"))

	require.Len(t, got, 1)
	assert.Equal(t, []string{"1"}, ids(got[0]))
}

func TestStore_ListenerMayReadStore(t *testing.T) {
	s := New()
	var seen int
	s.Subscribe(func(State) { seen = len(s.Snapshot().Keys) })
	s.Add(key("1", "a"))
	assert.Equal(t, 1, seen)
}

// Any sequence of add/update/remove leaves exactly one entry per ID that was
// added and not removed since, and update never changes an ID.
func TestStore_RandomSequencesKeepOneEntryPerID(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 200; round++ {
		s := New()
		live := map[string]bool{}
		for op := 0; op < 50; op++ {
			id := fmt.Sprint(rng.Intn(8))
			switch rng.Intn(3) {
			case 0:
				s.Add(key(id, "add"))
				live[id] = true
			case 1:
				s.Update(key(id, "upd"))
			case 2:
				s.Remove(id)
				delete(live, id)
			}
		}

		st := s.Snapshot()
		seen := map[string]int{}
		for _, k := range st.Keys {
			seen[k.ID]++
		}
		require.Len(t, seen, len(live), "round %d", round)
		for id := range live {
			require.Equal(t, 1, seen[id], "round %d id %s", round, id)
		}
	}
}

func TestStore_ConcurrentWriters(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprint(i % 5)
			s.Add(key(id, "x"))
			s.Update(key(id, "y"))
			_ = s.Snapshot()
		}(i)
	}
	wg.Wait()
	assert.Len(t, s.Snapshot().Keys, 5)
}
