package override

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsNotOverridden(t *testing.T) {
	v := New("default")
	assert.False(t, v.IsOverridden())
	assert.Equal(t, "default", v.Value())
}

func TestOverrideAndReset(t *testing.T) {
	v := New(1)

	v.Override(5)
	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 5, got)

	// Idempotent.
	v.Override(5)
	assert.True(t, v.IsOverridden())
	assert.Equal(t, 5, v.Value())

	v.Reset()
	assert.False(t, v.IsOverridden())
	// Reset leaves the last assigned value in place.
	assert.Equal(t, 5, v.Value())
}

func TestUnset(t *testing.T) {
	v := Unset[string]()
	got, ok := v.Get()
	assert.False(t, ok)
	assert.Empty(t, got)

	v.Override(`C:\Temp\Secrets`)
	got, ok = v.Get()
	assert.True(t, ok)
	assert.Equal(t, `C:\Temp\Secrets`, got)
}

func TestConcurrentAccess(t *testing.T) {
	v := New(false)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				v.Override(true)
			} else {
				v.Reset()
			}
		}(i)
		go func() {
			defer wg.Done()
			_, _ = v.Get()
		}()
	}
	wg.Wait()
}
