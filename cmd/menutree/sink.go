package main

import (
	"fmt"

	"github.com/aretw0/menutree/internal/config"
	"github.com/aretw0/menutree/internal/sanitize"
	"github.com/aretw0/menutree/pkg/adapters/file"
	"github.com/aretw0/menutree/pkg/adapters/memory"
	"github.com/aretw0/menutree/pkg/adapters/redis"
	"github.com/aretw0/menutree/pkg/ports"
	"github.com/spf13/pflag"
)

// addInputFlags registers the limits applied to every text field, whether it
// arrives over a transport or from an outline file.
func addInputFlags(f *pflag.FlagSet) {
	f.Int("input-max-size", sanitize.DefaultMaxSize, "Maximum size in bytes of a text field")
}

// addSinkFlags registers the flags shared by the commands that edit sessions.
func addSinkFlags(f *pflag.FlagSet) {
	addInputFlags(f)
	f.String("export-sink", config.SinkFile, "Where published documents go: memory, file or redis")
	f.String("export-dir", ".menutree/exports", "Directory of the file sink")
	f.String("redis-addr", "localhost:6379", "Redis address of the redis sink")
	f.String("redis-password", "", "Redis password")
	f.Int("redis-db", 0, "Redis database")
	f.String("redis-prefix", "menutree:export:", "Key prefix of published documents")
	f.Duration("redis-ttl", 0, "Expiration of published documents (0 keeps them)")
}

// newSink builds the export sink selected by cfg. The returned close func is never nil.
func newSink(cfg *config.Config) (ports.ExportSink, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Export.Sink {
	case config.SinkMemory:
		return memory.NewSink(), noop, nil
	case config.SinkFile:
		return file.New(cfg.Export.Dir), noop, nil
	case config.SinkRedis:
		sink := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
		)
		return sink, sink.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown export sink %q", cfg.Export.Sink)
}
