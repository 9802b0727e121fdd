package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProcFile(t *testing.T, root, pid, name, content string) {
	t.Helper()
	dir := filepath.Join(root, pid)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestProcfsBackend_ListProcesses(t *testing.T) {
	root := t.TempDir()

	writeProcFile(t, root, "123", "stat",
		"123 (myproc) S 1 123 123 0 -1 4194304 100 0 0 0 2 1 0 0 20 0 1 0 500 1000000 50 18446744073709551615\n")
	writeProcFile(t, root, "123", "status",
		"Name:\tmyproc\nState:\tS (sleeping)\nVmSize:\t  10000 kB\nVmRSS:\t   2048 kB\n")

	// kernel thread: stat only, no VmRSS
	writeProcFile(t, root, "2", "stat",
		"2 (kthreadd) S 0 0 0 0 -1 2129984 0 0 0 0 0 0 0 0 20 0 1 0 10 0 0 18446744073709551615\n")

	// non-numeric entries are not processes
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sys"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "meminfo"), []byte("MemTotal: 1 kB\n"), 0o644))

	b := &procfsBackend{root: root}
	records, err := b.ListProcesses()
	require.NoError(t, err)
	require.Len(t, records, 2)

	byPID := make(map[int32]int)
	for i, rec := range records {
		byPID[rec.PID] = i
	}

	proc := records[byPID[123]]
	assert.Equal(t, "myproc", proc.Name)
	assert.Equal(t, "S", proc.Status)
	assert.Equal(t, uint64(2048*1024), proc.ResidentBytes)
	assert.Equal(t, 0.0, proc.CPUPercent)

	kthread := records[byPID[2]]
	assert.Equal(t, "kthreadd", kthread.Name)
	assert.Equal(t, uint64(0), kthread.ResidentBytes)
}

func TestProcfsBackend_SkipsMalformedStat(t *testing.T) {
	root := t.TempDir()

	writeProcFile(t, root, "10", "stat", "garbage without parens\n")
	writeProcFile(t, root, "11", "stat", "11 (ok) R 0 11 11 0 -1 4194304 0\n")

	b := &procfsBackend{root: root}
	records, err := b.ListProcesses()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int32(11), records[0].PID)
}

func TestParseStatLine_NameWithSpacesAndParens(t *testing.T) {
	name, state, err := parseStatLine("124 (Web Content) S 1 124 124 0 -1 0\n")
	require.NoError(t, err)
	assert.Equal(t, "Web Content", name)
	assert.Equal(t, "S", state)

	name, state, err = parseStatLine("125 (a) b) R 1 125 125 0 -1 0\n")
	require.NoError(t, err)
	assert.Equal(t, "a) b", name)
	assert.Equal(t, "R", state)
}

func TestVmRSSKilobytes(t *testing.T) {
	kb, ok := vmRSSKilobytes("Name:\tx\nVmRSS:\t   2048 kB\nVmRSS:\t 9999 kB\n")
	require.True(t, ok)
	assert.Equal(t, uint64(2048), kb)

	_, ok = vmRSSKilobytes("Name:\tx\nVmSwap:\t 12 kB\n")
	assert.False(t, ok)
}

func TestProcfsBackend_Snapshot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "meminfo"),
		[]byte("MemTotal:       16777216 kB\nMemFree:        4194304 kB\nMemAvailable:   8388608 kB\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "loadavg"),
		[]byte("0.52 0.58 0.59 1/257 12345\n"), 0o644))

	b := &procfsBackend{root: root}
	snap := b.SnapshotSystem()

	require.NotNil(t, snap.MemoryTotalGB)
	assert.Equal(t, 16.0, *snap.MemoryTotalGB)
	require.NotNil(t, snap.MemoryAvailableGB)
	assert.Equal(t, 8.0, *snap.MemoryAvailableGB)
	assert.Equal(t, []float64{0.52, 0.58, 0.59}, snap.LoadAverage)
	require.NotNil(t, snap.LogicalCores)
	assert.Nil(t, snap.MemoryUsedGB)
	assert.Nil(t, snap.CPUPercent)
}

func TestProcfsBackend_SnapshotMissingFiles(t *testing.T) {
	b := &procfsBackend{root: t.TempDir()}
	snap := b.SnapshotSystem()

	assert.Nil(t, snap.MemoryTotalGB)
	assert.Nil(t, snap.LoadAverage)
	assert.NotEmpty(t, snap.OS)
	assert.NotEmpty(t, snap.Architecture)
}
