// Package variants provides the built-in record variants: Rectangle and
// Student. Each wraps a *record.Record[string] and adds its own operations.
package variants
