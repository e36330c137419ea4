package restsvc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencer(t *testing.T) {
	seq := NewSequencer()

	first := seq.Next("students")
	second := seq.Next("students")
	other := seq.Next("inventory")

	// the slow first response must be discarded, the newer one applied
	assert.False(t, seq.Latest("students", first))
	assert.True(t, seq.Latest("students", second))

	// resources sequence independently
	assert.True(t, seq.Latest("inventory", other))

	// a token is only the latest until the next issue
	assert.True(t, seq.Latest("students", seq.Next("students")))
	assert.False(t, seq.Latest("students", second))
}

func TestSequencerConcurrent(t *testing.T) {
	seq := NewSequencer()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq.Next("students")
		}()
	}
	wg.Wait()

	assert.True(t, seq.Latest("students", 100))
}
