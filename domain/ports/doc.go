// Package ports defines interfaces for the plugin runtime's collaborators.
// These ports enable dependency inversion - resolution logic depends on
// abstractions, and infrastructure adapters implement these interfaces.
package ports
