// Package system assembles the host-wide snapshot behind the DS view.
package system

import (
	"github.com/psdsmon/psdsmon/internal/backend"
	"github.com/psdsmon/psdsmon/internal/models"
)

// Enricher adds an optional section to a snapshot. Enrichers are
// best-effort: one that cannot answer leaves the snapshot untouched.
type Enricher interface {
	Enrich(snap *models.SystemSnapshot)
}

// Collector builds system snapshots from the active backend plus any
// probe-gated enrichers (containers, services).
type Collector struct {
	backend   backend.Backend
	enrichers []Enricher
}

// NewCollector creates a collector over the given backend.
func NewCollector(b backend.Backend, enrichers ...Enricher) *Collector {
	return &Collector{backend: b, enrichers: enrichers}
}

// Snapshot returns a fresh snapshot. Nothing is cached: every call
// re-reads the host, so two calls over unchanged input produce equal
// snapshots and a refresh is just another call.
func (c *Collector) Snapshot() models.SystemSnapshot {
	snap := c.backend.SnapshotSystem()
	for _, e := range c.enrichers {
		e.Enrich(&snap)
	}
	return snap
}
