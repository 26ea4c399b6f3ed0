package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expiringValue struct {
	Name string
	TTL  time.Duration
}

func (v expiringValue) Expiration() time.Duration {
	return v.TTL
}

func Test_MemoryStore_SaveLoad(t *testing.T) {
	svc := NewMemoryService()
	store := svc.NewStore("report", "AAPL", "1y")

	var missing expiringValue
	assert.ErrorIs(t, store.Load(&missing), ErrPersistenceNotExists)

	require.NoError(t, store.Save(expiringValue{Name: "hello"}))

	var loaded expiringValue
	require.NoError(t, store.Load(&loaded))
	assert.Equal(t, "hello", loaded.Name)
}

func Test_MemoryStore_TTL(t *testing.T) {
	svc := NewMemoryService()
	store := svc.NewStore("report", "AAPL", "1y")

	require.NoError(t, store.Save(expiringValue{Name: "short-lived", TTL: 10 * time.Millisecond}))

	var loaded expiringValue
	require.NoError(t, store.Load(&loaded))

	time.Sleep(30 * time.Millisecond)
	assert.ErrorIs(t, store.Load(&loaded), ErrPersistenceNotExists)
}

func Test_MemoryStore_Reset(t *testing.T) {
	svc := NewMemoryService()
	store := svc.NewStore("report", "AAPL", "1y")

	require.NoError(t, store.Save(expiringValue{Name: "x"}))
	require.NoError(t, store.Reset())

	var loaded expiringValue
	assert.ErrorIs(t, store.Load(&loaded), ErrPersistenceNotExists)
}

func Test_MemoryStore_KeyIsolation(t *testing.T) {
	svc := NewMemoryService()
	a := svc.NewStore("report", "AAPL", "1y")
	b := svc.NewStore("report", "AAPL", "6mo")

	require.NoError(t, a.Save(expiringValue{Name: "a"}))

	var loaded expiringValue
	assert.ErrorIs(t, b.Load(&loaded), ErrPersistenceNotExists)
}
