/*
Package observability turns editor and exporter hooks into Prometheus metrics.

A Metrics value owns its own registry, so several hosts (or tests) can run in one
process without colliding on the default registerer. Wire it in with Hooks and
ExportHook, and expose it with Handler.
*/
package observability
