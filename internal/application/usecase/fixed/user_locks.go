package fixed

import (
	"sync"

	"github.com/google/uuid"
)

// userLocks serializes ensure-snapshot calls per user. The check-then-act
// between ExistsForMonth and CreateForMonth would otherwise let two
// concurrent callers (two browser tabs crossing the month boundary) both
// observe "no snapshot" and double-write the month. The repository's
// transactional re-check and the unique index are the durable guards;
// this keeps the common case from ever reaching them.
type userLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// get returns the mutex for a user, creating it on first use. Mutexes
// are never removed; the map grows with the set of active users, which
// is bounded and small per process.
func (l *userLocks) get(userID uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}
