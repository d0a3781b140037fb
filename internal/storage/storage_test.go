package storage_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeaccessories/internal/domain"
	"bikeaccessories/internal/storage"
)

var domainNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// backends returns every Store implementation reachable from the test
// environment.
func backends(t *testing.T) map[string]storage.Store {
	t.Helper()
	sq, err := storage.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })

	out := map[string]storage.Store{
		"memory": storage.NewMemory(),
		"sqlite": sq,
	}
	if dsn := os.Getenv("TEST_POSTGRES_DSN"); dsn != "" {
		pg, err := storage.OpenPostgres(dsn)
		require.NoError(t, err)
		t.Cleanup(func() { _ = pg.Close() })
		out["postgres"] = pg
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	order := domain.NewOrder("order-1", []domain.CartItem{{ProductID: "a", Name: "A", Price: 2.5, Quantity: 2}},
		domain.CustomerInfo{Name: "Ada", Email: "ada@example.com"}, domainNow)

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			inv := domain.DefaultInventory()
			storage.SaveSlice(s, "test.inventory", inv)
			assert.Equal(t, inv, storage.LoadSlice[domain.InventoryItem](s, "test.inventory", nil))

			places := domain.DefaultPlaces()
			storage.SaveSlice(s, "test.places", places)
			assert.Equal(t, places, storage.LoadSlice[domain.Place](s, "test.places", nil))

			orders := []domain.Order{order}
			storage.SaveSlice(s, "test.orders", orders)
			assert.Equal(t, orders, storage.LoadSlice[domain.Order](s, "test.orders", nil))

			cart := []domain.CartItem{}
			storage.SaveSlice(s, "test.cart", cart)
			assert.Equal(t, cart, storage.LoadSlice(s, "test.cart", []domain.CartItem{{ProductID: "default"}}))

			keys, err := storage.Keys(s)
			require.NoError(t, err)
			assert.Contains(t, keys, "test.cart")
			assert.Contains(t, keys, "test.orders")

			storage.Remove(s, "test.cart")
			_, ok, err := s.Get("test.cart")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	def := []domain.Place{{ID: "default"}}

	cases := map[string]string{
		"not json":   "{{nope",
		"object":     `{"id":"x"}`,
		"null":       "null",
		"string":     `"[]"`,
		"number":     "42",
		"empty text": "",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			s := storage.NewMemory()
			require.NoError(t, s.Set("k", raw))
			assert.Equal(t, def, storage.LoadSlice(s, "k", def))
		})
	}

	t.Run("missing key", func(t *testing.T) {
		assert.Equal(t, def, storage.LoadSlice(storage.NewMemory(), "k", def))
	})
	t.Run("nil store", func(t *testing.T) {
		assert.Equal(t, def, storage.LoadSlice(nil, "k", def))
	})
	t.Run("unavailable store", func(t *testing.T) {
		assert.Equal(t, def, storage.LoadSlice(storage.Unavailable{}, "k", def))
	})
	t.Run("shape check", func(t *testing.T) {
		s := storage.NewMemory()
		require.NoError(t, s.Set("k", "[]"))
		nonEmpty := func(v []domain.Place) bool { return len(v) > 0 }
		assert.Equal(t, def, storage.Load(s, "k", def, nonEmpty))
	})
}

type failingStore struct{ storage.Memory }

func (f *failingStore) Set(string, string) error { return errors.New("disk on fire") }

func TestSaveSwallowsFailures(t *testing.T) {
	q := storage.NewMemory()
	q.Quota = 16
	assert.NotPanics(t, func() {
		storage.SaveSlice(q, "bikeaccessories.inventory.v1", domain.DefaultInventory())
		storage.SaveSlice(&failingStore{}, "k", []int{1})
		storage.SaveSlice(storage.Unavailable{}, "k", []int{1})
		storage.Save(storage.NewMemory(), "k", func() {}) // not encodable
		storage.Remove(storage.Unavailable{}, "k")
	})
	_, ok, _ := q.Get("bikeaccessories.inventory.v1")
	assert.False(t, ok, "over-quota write is dropped")
}

func TestMemoryQuota(t *testing.T) {
	m := storage.NewMemory()
	m.Quota = 10
	require.NoError(t, m.Set("ab", "12345678"))
	assert.ErrorIs(t, m.Set("c", "1"), storage.ErrQuotaExceeded)
	require.NoError(t, m.Set("ab", "1234"), "overwrite frees the old value")
	require.NoError(t, m.Set("c", "1"))
	require.NoError(t, m.Remove("ab"))
	require.NoError(t, m.Set("d", "1234567"))
}

func TestOpen(t *testing.T) {
	b, err := storage.Open("")
	require.NoError(t, err)
	assert.IsType(t, &storage.Memory{}, b)

	b, err = storage.Open(":memory:")
	require.NoError(t, err)
	assert.IsType(t, &storage.SQLite{}, b)
	require.NoError(t, b.Set("k", "v"))
	keys, err := storage.Keys(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
	require.NoError(t, b.Close())
}

func TestKeys(t *testing.T) {
	m := storage.NewMemory()
	require.NoError(t, m.Set("b", "2"))
	require.NoError(t, m.Set("a", "1"))
	keys, err := storage.Keys(m)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	_, err = storage.Keys(storage.Unavailable{})
	assert.ErrorIs(t, err, storage.ErrUnavailable)
}
