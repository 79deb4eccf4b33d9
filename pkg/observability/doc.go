/*
Package observability turns record lifecycle hooks into Prometheus metrics and
structured log lines.

Both helpers return record.Hooks, so they compose with record.CombineHooks and
attach to any variant with record.WithHooks.
*/
package observability
