package systems

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func TestLifetimeScoreRoundTrip(t *testing.T) {
	s := newMemStore()
	SetItemStore(s)
	t.Cleanup(func() { SetItemStore(nil) })

	assert.Equal(t, 0, LoadLifetimeScore())

	SaveLifetimeScore(42)
	assert.JSONEq(t, `{"eaten":42}`, string(s.items[lifetimeKey]))
	assert.Equal(t, 42, LoadLifetimeScore())
}

func TestLifetimeScoreIgnoresBadData(t *testing.T) {
	s := newMemStore()
	s.items[lifetimeKey] = []byte("not json")
	SetItemStore(s)
	t.Cleanup(func() { SetItemStore(nil) })

	assert.Equal(t, 0, LoadLifetimeScore())

	s.saveErr = errors.New("disk full")
	assert.NotPanics(t, func() { SaveLifetimeScore(1) })
}

func TestEatingUpdatesLifetimeScore(t *testing.T) {
	w := newTestWorld(t)
	s := newMemStore()
	s.items[lifetimeKey] = []byte(`{"eaten":7}`)
	SetItemStore(s)
	t.Cleanup(func() { SetItemStore(nil) })

	score := GetOrCreateScore(w)
	score.Lifetime = LoadLifetimeScore()

	RecordEaten(w)
	RecordEaten(w)

	assert.Equal(t, 2, score.Eaten)
	assert.Equal(t, 9, score.Lifetime)
	require.Contains(t, s.items, lifetimeKey)
	assert.Equal(t, 9, LoadLifetimeScore())
}

func TestWithoutStoreLifetimeIsSessionOnly(t *testing.T) {
	SetItemStore(nil)
	assert.Equal(t, 0, LoadLifetimeScore())
	assert.NotPanics(t, func() { SaveLifetimeScore(3) })
}
