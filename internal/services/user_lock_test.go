package services

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserLocks_SameUserSharesMutex(t *testing.T) {
	l := NewUserLocks()

	assert.Same(t, l.get(1), l.get(1))
	assert.NotSame(t, l.get(1), l.get(2))
	assert.Equal(t, 2, l.Len())
}

func TestUserLocks_ExclusivePerUser(t *testing.T) {
	l := NewUserLocks()
	var (
		inside  int32
		maxSeen int32
		wg      sync.WaitGroup
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock(5)
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			if n > atomic.LoadInt32(&maxSeen) {
				atomic.StoreInt32(&maxSeen, n)
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen)
	assert.Equal(t, 1, l.Len())
}

func TestUserLocks_ConcurrentFirstAccess(t *testing.T) {
	l := NewUserLocks()
	var wg sync.WaitGroup
	for i := int64(0); i < 100; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			unlock := l.Lock(id % 10)
			unlock()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, l.Len())
}
