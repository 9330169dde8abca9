package taskkeeper

import "sync"

// taskLocks serializes mutating operations per task id. Entries are
// dropped once nobody holds or waits on them.
type taskLocks struct {
	mu    sync.Mutex
	locks map[int64]*taskLock
}

type taskLock struct {
	mu   sync.Mutex
	refs int
}

// lock blocks until id is free and returns the matching unlock
func (l *taskLocks) lock(id int64) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[int64]*taskLock)
	}
	tl, ok := l.locks[id]
	if !ok {
		tl = &taskLock{}
		l.locks[id] = tl
	}
	tl.refs++
	l.mu.Unlock()

	tl.mu.Lock()
	return func() {
		tl.mu.Unlock()

		l.mu.Lock()
		tl.refs--
		if tl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
