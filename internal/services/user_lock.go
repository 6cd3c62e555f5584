package services

import "sync"

// Locker grants exclusive access scoped to one user id.
type Locker interface {
	Lock(userID int64) (unlock func())
}

// UserLocks lazily creates one mutex per user and keeps it for the registry's
// lifetime. Distinct users never contend on the same mutex.
type UserLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *UserLocks) Lock(userID int64) func() {
	m := l.get(userID)
	m.Lock()
	return m.Unlock
}

func (l *UserLocks) get(userID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}

// Len reports how many users have a lock.
func (l *UserLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

var _ Locker = (*UserLocks)(nil)
