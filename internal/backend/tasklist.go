package backend

import (
	"encoding/csv"
	"runtime"
	"strconv"
	"strings"

	"github.com/psdsmon/psdsmon/internal/models"
	"github.com/psdsmon/psdsmon/internal/units"
)

// tasklistBackend is the Windows command tier, built on tasklist and wmic.
// tasklist does not expose CPU or memory percentages, so those stay zero.
type tasklistBackend struct {
	run runner
}

func (b *tasklistBackend) Kind() Kind { return KindTasklist }

func (b *tasklistBackend) ListProcesses() ([]models.ProcessRecord, error) {
	out, err := b.run("tasklist", "/fo", "csv", "/nh")
	if err != nil {
		return nil, err
	}

	return parseRows(splitLines(string(out)), tasklistRow), nil
}

// tasklistRow parses one CSV row: image name, pid, session name, session
// number, memory usage such as "10,240 K". The session number doubles as
// the status column, which is all tasklist offers.
func tasklistRow(line string) (models.ProcessRecord, error) {
	fields, err := csv.NewReader(strings.NewReader(line)).Read()
	if err != nil || len(fields) < 5 {
		return models.ProcessRecord{}, ErrSkipRow
	}

	pid, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 32)
	if err != nil {
		return models.ProcessRecord{}, ErrSkipRow
	}

	memKB, err := tasklistMemoryKB(fields[4])
	if err != nil {
		return models.ProcessRecord{}, ErrSkipRow
	}

	return models.ProcessRecord{
		PID:           int32(pid),
		Name:          fields[0],
		Status:        strings.TrimSpace(fields[3]),
		ResidentBytes: uint64(memKB * 1024),
	}, nil
}

// tasklistMemoryKB turns a memory column such as "10,240 K" into
// kilobytes.
func tasklistMemoryKB(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "K"))
	return strconv.ParseFloat(s, 64)
}

// SnapshotSystem reports what wmic can tell about the host: total
// physical memory plus the platform basics.
func (b *tasklistBackend) SnapshotSystem() models.SystemSnapshot {
	snap := platformBasics()
	snap.LogicalCores = models.IntPtr(runtime.NumCPU())

	out, err := b.run("wmic", "computersystem", "get", "TotalPhysicalMemory", "/value")
	if err != nil {
		return snap
	}

	for _, line := range splitLines(string(out)) {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "TotalPhysicalMemory=") {
			continue
		}
		memBytes, err := strconv.ParseUint(strings.TrimPrefix(line, "TotalPhysicalMemory="), 10, 64)
		if err != nil {
			continue
		}
		snap.MemoryTotalGB = models.FloatPtr(units.BytesToGB(memBytes))
		break
	}

	return snap
}
