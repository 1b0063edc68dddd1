package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/export"
	"github.com/oklog/ulid/v2"
	backend "github.com/redis/go-redis/v9"
)

// Sink implements ports.ExportSink using Redis.
// Keys are namespaced by kind so no session ID can collide with another key:
// <prefix>doc:<sessionID> holds the latest document, <prefix>rev:<sessionID> a capped
// list of recent revision IDs, and the <prefix>index ZSET tracks sessions.
type Sink struct {
	client  *backend.Client
	prefix  string
	ttl     time.Duration
	history int64
}

type Option func(*Sink)

// WithTTL sets the expiration for published documents.
func WithTTL(ttl time.Duration) Option {
	return func(s *Sink) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Sink) {
		s.prefix = prefix
	}
}

// WithHistory sets how many revision IDs are kept per session.
func WithHistory(n int64) Option {
	return func(s *Sink) {
		s.history = n
	}
}

// New creates a new Redis sink with options.
func New(address, password string, db int, opts ...Option) *Sink {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis sink from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Sink {
	sink := &Sink{
		client:  client,
		prefix:  "menutree:export:",
		ttl:     0, // No expiration by default
		history: 20,
	}

	for _, opt := range opts {
		opt(sink)
	}

	return sink
}

func (s *Sink) key(sessionID string) string {
	return s.prefix + "doc:" + sessionID
}

func (s *Sink) revisionsKey(sessionID string) string {
	return s.prefix + "rev:" + sessionID
}

func (s *Sink) indexKey() string {
	return s.prefix + "index"
}

// Publish stores the document and records a new revision ID.
func (s *Sink) Publish(ctx context.Context, sessionID string, doc *export.Document) error {
	_, err := s.PublishRevision(ctx, sessionID, doc)
	return err
}

// PublishRevision is Publish returning the ULID assigned to this revision.
func (s *Sink) PublishRevision(ctx context.Context, sessionID string, doc *export.Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}

	revision := ulid.Make().String()
	pipe := s.client.TxPipeline()

	// 1. Save JSON with TTL
	// Use 0 for no expiration if ttl is not set.
	pipe.Set(ctx, s.key(sessionID), data, s.ttl)

	// 2. Record revision (newest first, capped)
	pipe.LPush(ctx, s.revisionsKey(sessionID), revision)
	pipe.LTrim(ctx, s.revisionsKey(sessionID), 0, s.history-1)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.revisionsKey(sessionID), s.ttl)
	}

	// 3. Add to Index (ZSET)
	// Score = Now + TTL. If TTL = 0, Score = far future.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: sessionID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to publish to redis: %w", err)
	}
	return revision, nil
}

// Fetch retrieves the latest document.
func (s *Sink) Fetch(ctx context.Context, sessionID string) (*export.Document, error) {
	val, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var doc export.Document
	if err := json.Unmarshal(val, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &doc, nil
}

// Revisions returns the recorded revision IDs, newest first.
func (s *Sink) Revisions(ctx context.Context, sessionID string) ([]string, error) {
	revs, err := s.client.LRange(ctx, s.revisionsKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}
	return revs, nil
}

// Delete removes the document, its revisions and its index entry.
func (s *Sink) Delete(ctx context.Context, sessionID string) error {
	pipe := s.client.TxPipeline()

	pipe.Del(ctx, s.key(sessionID), s.revisionsKey(sessionID))
	pipe.ZRem(ctx, s.indexKey(), sessionID)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns sessions with a live document.
// Expired entries are pruned from the index lazily.
func (s *Sink) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())

	// ZREMRANGEBYSCORE key -inf (now)
	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("(%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired exports: %w", err)
	}

	sessions, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	return sessions, nil
}

// Close closes the redis client.
func (s *Sink) Close() error {
	return s.client.Close()
}
