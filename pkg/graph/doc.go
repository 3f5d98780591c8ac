// Package graph builds the node and edge collections behind the
// relationship view.
package graph
