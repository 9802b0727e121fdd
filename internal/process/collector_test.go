package process

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psdsmon/psdsmon/internal/backend"
	"github.com/psdsmon/psdsmon/internal/models"
)

type stubBackend struct {
	records []models.ProcessRecord
	err     error
}

func (s *stubBackend) Kind() backend.Kind { return backend.KindProcFS }

func (s *stubBackend) ListProcesses() ([]models.ProcessRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.ProcessRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *stubBackend) SnapshotSystem() models.SystemSnapshot {
	return models.SystemSnapshot{}
}

func TestList_SortsByCPUDescending(t *testing.T) {
	c := NewCollector(&stubBackend{records: []models.ProcessRecord{
		{PID: 1, Name: "low", CPUPercent: 5.0},
		{PID: 2, Name: "idle-a", CPUPercent: 0.0},
		{PID: 3, Name: "high", CPUPercent: 10.0},
		{PID: 4, Name: "idle-b", CPUPercent: 0.0},
		{PID: 5, Name: "idle-c", CPUPercent: 0.0},
	}})

	list, err := c.List()
	require.NoError(t, err)
	require.Equal(t, 5, list.Total)

	var pids []int32
	for _, rec := range list.Processes {
		pids = append(pids, rec.PID)
	}

	// ties keep their original order
	assert.Equal(t, []int32{3, 1, 2, 4, 5}, pids)
}

func TestList_DefaultsUnknownFields(t *testing.T) {
	c := NewCollector(&stubBackend{records: []models.ProcessRecord{
		{PID: 7},
	}})

	list, err := c.List()
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)

	rec := list.Processes[0]
	assert.Equal(t, int32(7), rec.PID)
	assert.Equal(t, "unknown", rec.Name)
	assert.Equal(t, "unknown", rec.Status)
	assert.Equal(t, "unknown", rec.Username)
	assert.Equal(t, 0.0, rec.CPUPercent)
	assert.Equal(t, 0.0, rec.MemoryPercent)
	assert.Equal(t, uint64(0), rec.ResidentBytes)
	assert.Equal(t, int32(0), rec.NumThreads)
}

func TestList_Idempotent(t *testing.T) {
	c := NewCollector(&stubBackend{records: []models.ProcessRecord{
		{PID: 1, Name: "a", CPUPercent: 1.5},
		{PID: 2, Name: "b", CPUPercent: 1.5},
		{PID: 3, Name: "c", CPUPercent: 9.0},
	}})

	first, err := c.List()
	require.NoError(t, err)
	second, err := c.List()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestList_PropagatesBackendError(t *testing.T) {
	wantErr := &backend.CommandError{Command: "ps", Err: errors.New("exec failed")}
	c := NewCollector(&stubBackend{err: wantErr})

	list, err := c.List()
	assert.Nil(t, list)

	var cmdErr *backend.CommandError
	require.ErrorAs(t, err, &cmdErr)
}

func TestList_EmptyBackend(t *testing.T) {
	c := NewCollector(&stubBackend{})

	list, err := c.List()
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.Empty(t, list.Processes)
}
