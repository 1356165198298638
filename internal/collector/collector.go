// Package collector implements the statistics counters driven by syntax-tree
// traversals: annotation coverage and suppression-marker tallies.
package collector

import "pystats/internal/syntax"

// Collector accumulates counters while syntax trees are visited and
// serializes them to a flat string-to-int mapping. A collector instance is
// created zero-initialized, driven through exactly one pass over each tree
// of a batch, then read via Report.
type Collector interface {
	// Handlers returns the node-kind callbacks that mutate the collector's
	// state. Node kinds without a registered handler never reach the
	// collector.
	Handlers() syntax.HandlerMap

	// Report returns the counters accumulated so far. It is safe to call
	// at any point; before any traversal every counter is zero.
	Report() map[string]int
}

// Run drives one collector over every tree in sequence order. Each tree is
// fully visited before the next begins, and the same instance accumulates
// across the whole batch. Returns the collector it was given.
func Run(trees []*syntax.Tree, c Collector) Collector {
	handlers := c.Handlers()
	for _, tree := range trees {
		syntax.Visit(tree, handlers)
	}
	return c
}
