package service

import (
	"reflect"
	"strings"
	"sync"
	"time"
)

type memorySlot struct {
	value    interface{}
	deadline time.Time
}

type MemoryService struct {
	mu    sync.Mutex
	slots map[string]memorySlot
}

func NewMemoryService() *MemoryService {
	return &MemoryService{
		slots: make(map[string]memorySlot),
	}
}

func (s *MemoryService) NewStore(id string, subIDs ...string) Store {
	key := strings.Join(append([]string{id}, subIDs...), ":")
	return &MemoryStore{
		Key:    key,
		memory: s,
	}
}

type MemoryStore struct {
	Key    string
	memory *MemoryService
}

func (store *MemoryStore) Save(val interface{}) error {
	slot := memorySlot{value: val}
	if expiring, ok := val.(Expirable); ok {
		if ttl := expiring.Expiration(); ttl > 0 {
			slot.deadline = time.Now().Add(ttl)
		}
	}

	store.memory.mu.Lock()
	defer store.memory.mu.Unlock()
	store.memory.slots[store.Key] = slot
	return nil
}

func (store *MemoryStore) Load(val interface{}) error {
	store.memory.mu.Lock()
	defer store.memory.mu.Unlock()

	slot, ok := store.memory.slots[store.Key]
	if !ok {
		return ErrPersistenceNotExists
	}
	if !slot.deadline.IsZero() && time.Now().After(slot.deadline) {
		delete(store.memory.slots, store.Key)
		return ErrPersistenceNotExists
	}

	reflect.ValueOf(val).Elem().Set(reflect.ValueOf(slot.value))
	return nil
}

func (store *MemoryStore) Reset() error {
	store.memory.mu.Lock()
	defer store.memory.mu.Unlock()
	delete(store.memory.slots, store.Key)
	return nil
}
