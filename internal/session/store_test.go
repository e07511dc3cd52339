// internal/session/store_test.go
package session

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriiizz/Poly-U-Nap/internal/model"
)

func Test_memoryStore_CreateAndDo(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := model.NewSession("tester")
	require.NoError(t, store.Create(ctx, sess))

	// Creating the same id again is a conflict.
	err := store.Create(ctx, sess)
	assert.ErrorIs(t, err, model.ErrConflict)

	// Mutations inside Do are visible to the next Do.
	err = store.Do(ctx, sess.SessionID, func(s *model.Session) error {
		s.XP += 100
		return nil
	})
	require.NoError(t, err)

	err = store.Do(ctx, sess.SessionID, func(s *model.Session) error {
		assert.Equal(t, 100, s.XP)
		return nil
	})
	require.NoError(t, err)
}

func Test_memoryStore_Do_UnknownSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	err := store.Do(ctx, uuid.New(), func(s *model.Session) error {
		t.Fatal("fn must not run for unknown sessions")
		return nil
	})
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func Test_memoryStore_Do_FnErrorPassesThrough(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := model.NewSession("tester")
	require.NoError(t, store.Create(ctx, sess))

	err := store.Do(ctx, sess.SessionID, func(s *model.Session) error {
		return model.ErrInvalidInput
	})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func Test_memoryStore_Do_SerializesPerSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := model.NewSession("tester")
	require.NoError(t, store.Create(ctx, sess))

	// 100 concurrent unsynchronized increments; the per-session lock must
	// make them all land.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Do(ctx, sess.SessionID, func(s *model.Session) error {
				s.XP++
				return nil
			})
		}()
	}
	wg.Wait()

	err := store.Do(ctx, sess.SessionID, func(s *model.Session) error {
		assert.Equal(t, 100, s.XP)
		return nil
	})
	require.NoError(t, err)
}
