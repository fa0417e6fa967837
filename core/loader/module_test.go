package loader_test

import (
	"sync"
	"testing"

	"feature-catalog/core/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Register(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		table := loader.NewTable()
		require.NoError(t, table.Register("US-0002", plain("US-0002")))
		require.NoError(t, table.Register("US-0001", plain("US-0001")))

		assert.Equal(t, 2, table.Len())
		assert.Equal(t, []string{"US-0001", "US-0002"}, table.IDs())

		f, ok := table.Lookup("US-0001")
		require.True(t, ok)
		mod, err := f()
		require.NoError(t, err)
		assert.Equal(t, "US-0001", mod.Name())
	})

	t.Run("EmptyID", func(t *testing.T) {
		err := loader.NewTable().Register("", plain("x"))
		assert.Error(t, err)
	})

	t.Run("NilFactory", func(t *testing.T) {
		err := loader.NewTable().Register("US-0001", nil)
		assert.Error(t, err)
	})

	t.Run("Duplicate", func(t *testing.T) {
		table := loader.NewTable()
		require.NoError(t, table.Register("US-0001", plain("US-0001")))
		err := table.Register("US-0001", plain("US-0001"))
		assert.ErrorContains(t, err, "already registered")
		assert.Panics(t, func() { table.MustRegister("US-0001", plain("US-0001")) })
	})

	t.Run("Missing", func(t *testing.T) {
		_, ok := loader.NewTable().Lookup("US-0404")
		assert.False(t, ok)
	})
}

func TestTable_ConcurrentRegister(t *testing.T) {
	table := loader.NewTable()
	var wg sync.WaitGroup
	errs := make(chan error, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- table.Register("US-0001", plain("US-0001"))
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, table.Len())
}
