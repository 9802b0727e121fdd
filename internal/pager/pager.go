// Package pager provides fixed-order paging over a process listing plus
// the session-wide intensity counts shown in the footer.
package pager

import (
	"strings"

	"github.com/psdsmon/psdsmon/internal/models"
)

// DefaultPageSize is the PS view's page length.
const DefaultPageSize = 50

// intensiveThreshold is the percentage above which a process counts as
// CPU or memory intensive.
const intensiveThreshold = 10.0

// Direction is a navigation command.
type Direction int

const (
	Next Direction = iota
	Previous
	First
	Last
	Quit
)

// Pager walks a fixed snapshot of records page by page. The sequence
// never changes during a session; a new collection gets a new pager.
type Pager struct {
	records  []models.ProcessRecord
	pageSize int
	page     int

	cpuIntensive int
	memIntensive int
}

// New creates a pager positioned on the first page. A non-positive size
// falls back to DefaultPageSize. The intensity counts cover the whole
// sequence and are computed once.
func New(records []models.ProcessRecord, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	p := &Pager{records: records, pageSize: pageSize}
	for _, rec := range records {
		if rec.CPUPercent > intensiveThreshold {
			p.cpuIntensive++
		}
		if rec.MemoryPercent > intensiveThreshold {
			p.memIntensive++
		}
	}
	return p
}

// Advance applies one navigation command, clamping at the ends. Quit is a
// no-op here so the caller can feed every command through the same path.
func (p *Pager) Advance(d Direction) {
	switch d {
	case Next:
		if (p.page+1)*p.pageSize < len(p.records) {
			p.page++
		}
	case Previous:
		if p.page > 0 {
			p.page--
		}
	case First:
		p.page = 0
	case Last:
		p.page = p.lastPage()
	}
}

// Page returns the records visible on the current page.
func (p *Pager) Page() []models.ProcessRecord {
	start := p.page * p.pageSize
	if start >= len(p.records) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.records) {
		end = len(p.records)
	}
	return p.records[start:end]
}

// PageNumber returns the current page, 1-based for display.
func (p *Pager) PageNumber() int { return p.page + 1 }

// PageCount returns the total number of pages, at least 1.
func (p *Pager) PageCount() int { return p.lastPage() + 1 }

// Range returns the 1-based index range shown on the current page.
func (p *Pager) Range() (start, end int) {
	if len(p.records) == 0 {
		return 0, 0
	}
	start = p.page*p.pageSize + 1
	end = start + len(p.Page()) - 1
	return start, end
}

// Total returns the record count across all pages.
func (p *Pager) Total() int { return len(p.records) }

// CPUIntensive counts records above the CPU threshold over the whole
// sequence, not just the visible page.
func (p *Pager) CPUIntensive() int { return p.cpuIntensive }

// MemIntensive counts records above the memory threshold over the whole
// sequence.
func (p *Pager) MemIntensive() int { return p.memIntensive }

func (p *Pager) lastPage() int {
	if len(p.records) == 0 {
		return 0
	}
	return (len(p.records) - 1) / p.pageSize
}

// ParseDirection maps a navigation key (n, p, f, l, q in either case) to
// its Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n":
		return Next, true
	case "p":
		return Previous, true
	case "f":
		return First, true
	case "l":
		return Last, true
	case "q":
		return Quit, true
	}
	return 0, false
}
