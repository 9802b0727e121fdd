// Package process produces the normalized, ordered process listing behind
// the PS view.
package process

import (
	"sort"

	"github.com/psdsmon/psdsmon/internal/backend"
	"github.com/psdsmon/psdsmon/internal/models"
)

// Collector turns raw backend records into the listing contract: string
// fields defaulted, rows ordered by CPU usage.
type Collector struct {
	backend backend.Backend
}

// NewCollector creates a collector over the given backend.
func NewCollector(b backend.Backend) *Collector {
	return &Collector{backend: b}
}

// List returns all visible processes sorted by CPU usage descending. The
// sort is stable, so backends that cannot measure CPU keep their original
// order among the zero rows.
func (c *Collector) List() (*models.ProcessList, error) {
	records, err := c.backend.ListProcesses()
	if err != nil {
		return nil, err
	}

	for i := range records {
		applyDefaults(&records[i])
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CPUPercent > records[j].CPUPercent
	})

	return &models.ProcessList{
		Processes: records,
		Total:     len(records),
	}, nil
}

// applyDefaults fills the string fields every record must carry.
func applyDefaults(rec *models.ProcessRecord) {
	if rec.Name == "" {
		rec.Name = "unknown"
	}
	if rec.Status == "" {
		rec.Status = "unknown"
	}
	if rec.Username == "" {
		rec.Username = "unknown"
	}
}
