package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/menutree/pkg/adapters/redis"
	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/export"
	"github.com/aretw0/menutree/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSink(t *testing.T, opts ...redis.Option) (*redis.Sink, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	sink := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = sink.Close() })
	return sink, mr
}

func emptyDoc(text string) *export.Document {
	return &export.Document{Root: export.Root{StageID: "0", StringButtonList: []string{text}, Buttons: []export.Button{}}}
}

func TestRedisSink_Contract(t *testing.T) {
	sink, _ := newSink(t)
	ports.RunExportSinkContract(t, sink)
}

func TestRedisSink_TTL_Expiration(t *testing.T) {
	sink, mr := newSink(t, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	sessionID := "session-ttl"

	// 1. Publish
	require.NoError(t, sink.Publish(ctx, sessionID, emptyDoc("A")))

	// 2. Verify List (immediately)
	sessions, err := sink.List(ctx)
	assert.NoError(t, err)
	assert.Contains(t, sessions, sessionID)

	// 3. Fast Forward time in miniredis (for Key Expiration)
	mr.FastForward(2 * time.Second)

	// 4. Verify Fetch (should fail)
	_, err = sink.Fetch(ctx, sessionID)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

	// 5. Verify List (lazily cleaned up)
	// The index score is based on wall-clock time, so wait for it to pass.
	time.Sleep(2100 * time.Millisecond)

	sessions, err = sink.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestRedisSink_Prefix(t *testing.T) {
	sink, mr := newSink(t, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, sink.Publish(ctx, "my-session", emptyDoc("A")))

	// Verify keys in Redis directly
	assert.True(t, mr.Exists("custom:app:doc:my-session"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:rev:my-session"), "Expected revisions with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")
}

func TestRedisSink_Revisions(t *testing.T) {
	sink, _ := newSink(t, redis.WithHistory(2))
	ctx := context.Background()

	first, err := sink.PublishRevision(ctx, "s1", emptyDoc("1"))
	require.NoError(t, err)
	second, err := sink.PublishRevision(ctx, "s1", emptyDoc("2"))
	require.NoError(t, err)
	third, err := sink.PublishRevision(ctx, "s1", emptyDoc("3"))
	require.NoError(t, err)

	revs, err := sink.Revisions(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{third, second}, revs)
	assert.NotContains(t, revs, first)

	require.NoError(t, sink.Delete(ctx, "s1"))
	revs, err = sink.Revisions(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, revs)
}

func TestRedisSink_SessionIDsCannotCollideWithKeys(t *testing.T) {
	sink, _ := newSink(t)
	ctx := context.Background()

	// Each ID would land on another key kind if all keys shared one namespace
	ids := []string{"a", "index", "x", "x:revisions", "doc:x", "rev:x"}
	for _, id := range ids {
		require.NoError(t, sink.Publish(ctx, id, emptyDoc(id)), "publish %q", id)
	}

	for _, id := range ids {
		doc, err := sink.Fetch(ctx, id)
		require.NoError(t, err, "fetch %q", id)
		assert.Equal(t, []string{id}, doc.Root.StringButtonList)

		revs, err := sink.Revisions(ctx, id)
		require.NoError(t, err)
		assert.Len(t, revs, 1, "revisions of %q", id)
	}

	sessions, err := sink.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, ids, sessions)

	require.NoError(t, sink.Publish(ctx, "b", emptyDoc("b")))
}
