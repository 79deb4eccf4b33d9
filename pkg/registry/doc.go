// Package registry keeps record variants addressable by name for the CLI and
// the HTTP API.
package registry
