// Package tui holds terminal presentation helpers: the banner, markdown
// rendering and variant descriptions.
package tui
