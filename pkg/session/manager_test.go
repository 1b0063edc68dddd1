package session_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/editor"
	"github.com/aretw0/menutree/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestManager_Locking(t *testing.T) {
	manager := session.NewManager()
	ctx := context.Background()

	id, err := manager.Create(ctx, "race-test")
	require.NoError(t, err)
	require.Equal(t, "race-test", id)

	var rootID string
	err = manager.WithSession(ctx, id, func(ed *editor.Editor) error {
		n, err := ed.AddRootButton()
		rootID = n.ID
		return err
	})
	require.NoError(t, err)

	// Concurrent AddCarouselCard calls must each see the previous card
	const workers = 20
	var wg sync.WaitGroup
	indexes := make(chan int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = manager.WithSession(ctx, id, func(ed *editor.Editor) error {
				idx, err := ed.AddCarouselCard(rootID)
				time.Sleep(time.Millisecond)
				indexes <- idx
				return err
			})
		}()
	}
	wg.Wait()
	close(indexes)

	seen := make(map[int]bool)
	for idx := range indexes {
		assert.False(t, seen[idx], "index %d handed out twice", idx)
		seen[idx] = true
	}
	assert.Len(t, seen, workers)
	assert.Equal(t, 0, manager.ActiveLocks(), "lock entries should be released")
}

func TestManager_Lifecycle(t *testing.T) {
	manager := session.NewManager(session.WithSessionIDGenerator(func() string { return "generated" }))
	ctx := context.Background()

	id, err := manager.Create(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "generated", id)

	_, err = manager.Create(ctx, "generated")
	assert.ErrorIs(t, err, domain.ErrSessionExists)

	info, err := manager.Info(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, info.Nodes)
	assert.Equal(t, 0, info.Roots)

	assert.Equal(t, []string{"generated"}, manager.List(ctx))

	require.NoError(t, manager.Delete(ctx, id))
	assert.Empty(t, manager.List(ctx))

	err = manager.Delete(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	err = manager.WithSession(ctx, id, func(*editor.Editor) error { return nil })
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_Isolation(t *testing.T) {
	manager := session.NewManager()
	ctx := context.Background()

	a, _ := manager.Create(ctx, "a")
	b, _ := manager.Create(ctx, "b")

	require.NoError(t, manager.WithSession(ctx, a, func(ed *editor.Editor) error {
		_, err := ed.AddRootButton()
		return err
	}))

	infoA, _ := manager.Info(ctx, a)
	infoB, _ := manager.Info(ctx, b)
	assert.Equal(t, 1, infoA.Roots)
	assert.Equal(t, 0, infoB.Roots)
}

func TestManager_ErrorPropagates(t *testing.T) {
	manager := session.NewManager()
	ctx := context.Background()
	id, _ := manager.Create(ctx, "s")

	err := manager.WithSession(ctx, id, func(ed *editor.Editor) error {
		return ed.SetButtonText("missing", "x")
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestManager_CancelledContext(t *testing.T) {
	manager := session.NewManager()
	id, _ := manager.Create(context.Background(), "s")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := manager.WithSession(ctx, id, func(*editor.Editor) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	_, err = manager.Create(ctx, "late")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrSessionExists)
	assert.Equal(t, []string{"s"}, manager.List(context.Background()))
}

func TestManager_Prune(t *testing.T) {
	manager := session.NewManager()
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	manager.SetClock(func() time.Time { return now })

	for i := 0; i < 3; i++ {
		_, err := manager.Create(ctx, fmt.Sprintf("s%d", i))
		require.NoError(t, err)
	}

	now = now.Add(time.Hour)
	require.NoError(t, manager.WithSession(ctx, "s1", func(*editor.Editor) error { return nil }))

	now = now.Add(10 * time.Minute)
	removed := manager.Prune(ctx, 30*time.Minute)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"s1"}, manager.List(ctx))
}

func TestManager_CountHook(t *testing.T) {
	var counts []int
	manager := session.NewManager(session.WithCountHook(func(n int) { counts = append(counts, n) }))
	ctx := context.Background()

	_, _ = manager.Create(ctx, "a")
	_, _ = manager.Create(ctx, "b")
	_ = manager.Delete(ctx, "a")

	assert.Equal(t, []int{1, 2, 1}, counts)
}
