//go:build unit

package commands

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionLocksSerializePerSession(t *testing.T) {
	locks := newSessionLocks()
	id := uuid.New()

	var wg sync.WaitGroup
	counter := 0
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock(id)
			defer unlock()
			v := counter
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, locks.size())
}

func TestSessionLocksIndependentSessions(t *testing.T) {
	locks := newSessionLocks()
	a, b := uuid.New(), uuid.New()

	unlockA := locks.lock(a)
	unlockB := locks.lock(b)
	assert.Equal(t, 2, locks.size())

	unlockA()
	unlockB()
	assert.Equal(t, 0, locks.size())
}
