package service

import "sync"

// familyLocks hands out one mutex per family so concurrent writes to the
// same record serialize while different families proceed independently.
// The guest list is small and fixed, so entries are never evicted.
type familyLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newFamilyLocks() *familyLocks {
	return &familyLocks{locks: make(map[string]*sync.Mutex)}
}

func (f *familyLocks) get(familyName string) *sync.Mutex {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.locks[familyName]
	if !ok {
		l = &sync.Mutex{}
		f.locks[familyName] = l
	}
	return l
}
