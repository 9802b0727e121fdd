package backend

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/psdsmon/psdsmon/internal/models"
	"github.com/psdsmon/psdsmon/internal/units"
)

// procfsBackend is the Linux kernel-filesystem tier, reading /proc
// directly. True CPU percentages need two timed stat samples, which this
// tier does not take, so they stay zero.
type procfsBackend struct {
	// root is /proc in production; tests point it at a fixture tree.
	root string
}

func (b *procfsBackend) Kind() Kind { return KindProcFS }

func (b *procfsBackend) ListProcesses() ([]models.ProcessRecord, error) {
	entries, err := os.ReadDir(b.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", b.root, err)
	}

	var records []models.ProcessRecord
	for _, entry := range entries {
		pid, err := strconv.ParseInt(entry.Name(), 10, 32)
		if err != nil {
			continue
		}
		rec, err := b.readProcess(int32(pid))
		if err != nil {
			// the process vanished between the walk and the read
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

func (b *procfsBackend) readProcess(pid int32) (models.ProcessRecord, error) {
	dir := filepath.Join(b.root, strconv.Itoa(int(pid)))

	data, err := os.ReadFile(filepath.Join(dir, "stat"))
	if err != nil {
		return models.ProcessRecord{}, err
	}

	name, state, err := parseStatLine(string(data))
	if err != nil {
		return models.ProcessRecord{}, err
	}

	rec := models.ProcessRecord{
		PID:    pid,
		Name:   name,
		Status: state,
	}

	// VmRSS is missing for kernel threads; leave the record at zero then.
	if status, err := os.ReadFile(filepath.Join(dir, "status")); err == nil {
		if kb, ok := vmRSSKilobytes(string(status)); ok {
			rec.ResidentBytes = kb * 1024
		}
	}

	return rec, nil
}

// parseStatLine extracts the comm and state fields from a stat line. The
// comm is wrapped in parentheses and may itself contain spaces or
// parentheses, so the scan anchors on the last closing parenthesis.
func parseStatLine(line string) (name, state string, err error) {
	start := strings.IndexByte(line, '(')
	end := strings.LastIndexByte(line, ')')
	if start < 0 || end < start {
		return "", "", ErrSkipRow
	}

	rest := strings.Fields(line[end+1:])
	if len(rest) < 1 {
		return "", "", ErrSkipRow
	}

	return line[start+1 : end], rest[0], nil
}

// vmRSSKilobytes scans a status file for the first VmRSS line, reported
// in kilobytes.
func vmRSSKilobytes(status string) (uint64, bool) {
	for _, line := range strings.Split(status, "\n") {
		if !strings.HasPrefix(line, "VmRSS:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, false
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, false
		}
		return kb, true
	}
	return 0, false
}

// SnapshotSystem reads what the kernel filesystem offers host-wide:
// memory totals from meminfo and the load averages.
func (b *procfsBackend) SnapshotSystem() models.SystemSnapshot {
	snap := platformBasics()
	snap.LogicalCores = models.IntPtr(runtime.NumCPU())

	if data, err := os.ReadFile(filepath.Join(b.root, "meminfo")); err == nil {
		total, available := parseMeminfo(string(data))
		snap.MemoryTotalGB = total
		snap.MemoryAvailableGB = available
	}

	if data, err := os.ReadFile(filepath.Join(b.root, "loadavg")); err == nil {
		snap.LoadAverage = parseLoadAvg(string(data))
	}

	return snap
}

// parseMeminfo reads the MemTotal and MemAvailable lines, both reported
// in kilobytes. The first match per key wins.
func parseMeminfo(meminfo string) (total, available *float64) {
	for _, line := range strings.Split(meminfo, "\n") {
		switch {
		case total == nil && strings.HasPrefix(line, "MemTotal:"):
			if kb, ok := meminfoKilobytes(line); ok {
				total = models.FloatPtr(units.KBToGB(kb))
			}
		case available == nil && strings.HasPrefix(line, "MemAvailable:"):
			if kb, ok := meminfoKilobytes(line); ok {
				available = models.FloatPtr(units.KBToGB(kb))
			}
		}
	}
	return total, available
}

func meminfoKilobytes(line string) (float64, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, false
	}
	kb, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, false
	}
	return kb, true
}

// parseLoadAvg returns the three load figures from a loadavg line, or nil
// when the line is malformed.
func parseLoadAvg(s string) []float64 {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return nil
	}

	loads := make([]float64, 0, 3)
	for _, f := range fields[:3] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil
		}
		loads = append(loads, v)
	}
	return loads
}
