package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"max.ks1230/fx-converter/internal/model/converter"
)

func newState() *converter.State {
	return converter.New("USD", "PHP", "1")
}

func Test_OnCheckout_ShouldCreateOncePerUser(t *testing.T) {
	s := NewInMemStorage()

	st1, release := s.Checkout(1, newState)
	st1.SetAmount("5")
	release()

	st2, release := s.Checkout(1, newState)
	defer release()
	assert.Same(t, st1, st2)
	assert.Equal(t, "5", st2.Amount())

	other, release2 := s.Checkout(2, newState)
	defer release2()
	assert.NotSame(t, st1, other)
}

func Test_OnDrop_ShouldCloseState(t *testing.T) {
	s := NewInMemStorage()
	st, release := s.Checkout(1, newState)
	release()

	s.Drop(1)

	assert.True(t, st.Closed())

	fresh, release := s.Checkout(1, newState)
	defer release()
	assert.NotSame(t, st, fresh)
	assert.False(t, fresh.Closed())
}

func Test_OnConcurrentCheckout_ShouldSerializePerUser(t *testing.T) {
	s := NewInMemStorage()
	var wg sync.WaitGroup
	counter := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, release := s.Checkout(7, newState)
			counter++
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}
