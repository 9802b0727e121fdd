package backend

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/psdsmon/psdsmon/internal/models"
	"github.com/psdsmon/psdsmon/internal/units"
)

// psBackend is the portable Unix command tier built on ps. It serves
// macOS and any Unix where neither the introspection library nor /proc
// is usable.
type psBackend struct {
	run runner
}

func (b *psBackend) Kind() Kind { return KindPSCommand }

func (b *psBackend) ListProcesses() ([]models.ProcessRecord, error) {
	out, err := b.run("ps", "axo", "pid,comm,pcpu,pmem,stat,user")
	if err != nil {
		return nil, err
	}

	lines := splitLines(string(out))
	if len(lines) > 0 {
		lines = lines[1:] // column header
	}

	return parseRows(lines, psRow), nil
}

// psRow parses one fixed-order ps line. The split is capped at six fields
// so a user name containing spaces survives in the last column.
func psRow(line string) (models.ProcessRecord, error) {
	parts := splitFieldsN(line, 6)
	if len(parts) < 5 {
		return models.ProcessRecord{}, ErrSkipRow
	}

	pid, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return models.ProcessRecord{}, ErrSkipRow
	}
	cpuPercent, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return models.ProcessRecord{}, ErrSkipRow
	}
	memPercent, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return models.ProcessRecord{}, ErrSkipRow
	}

	rec := models.ProcessRecord{
		PID:           int32(pid),
		Name:          parts[1],
		CPUPercent:    units.Percent(cpuPercent),
		MemoryPercent: units.Percent(memPercent),
		Status:        parts[4],
	}
	if len(parts) > 5 {
		rec.Username = strings.TrimSpace(parts[5])
	}

	return rec, nil
}

// SnapshotSystem reports what a command-only host can know: the platform
// basics and the logical core count. On macOS a vm_stat run is probed and
// its success recorded; the page counters themselves are not folded in at
// this tier.
func (b *psBackend) SnapshotSystem() models.SystemSnapshot {
	snap := platformBasics()
	snap.LogicalCores = models.IntPtr(runtime.NumCPU())

	if runtime.GOOS == "darwin" {
		if _, err := b.run("vm_stat"); err == nil {
			snap.VMStatAvailable = true
		}
	}

	return snap
}
