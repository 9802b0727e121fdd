package backend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPSRow(t *testing.T) {
	rec, err := psRow("  345 firefox         12.5  3.4 R    jane doe")
	require.NoError(t, err)

	assert.Equal(t, int32(345), rec.PID)
	assert.Equal(t, "firefox", rec.Name)
	assert.Equal(t, 12.5, rec.CPUPercent)
	assert.Equal(t, 3.4, rec.MemoryPercent)
	assert.Equal(t, "R", rec.Status)
	assert.Equal(t, "jane doe", rec.Username)
}

func TestPSRow_MissingUser(t *testing.T) {
	rec, err := psRow("1 launchd 0.0 0.1 Ss")
	require.NoError(t, err)
	assert.Equal(t, "launchd", rec.Name)
	assert.Equal(t, "", rec.Username)
}

func TestPSRow_Malformed(t *testing.T) {
	_, err := psRow("too short")
	assert.ErrorIs(t, err, ErrSkipRow)

	// a comm with spaces shifts the columns and fails numeric conversion
	_, err = psRow("  400 Web Content  1.0  2.0 S    root")
	assert.ErrorIs(t, err, ErrSkipRow)
}

func TestPSBackend_ListProcesses(t *testing.T) {
	output := "  PID COMM            %CPU %MEM STAT USER\n" +
		"    1 launchd          0.0  0.1 Ss   root\n" +
		"  345 firefox         12.5  3.4 R    jane\n" +
		"  broken row\n"

	b := &psBackend{run: func(name string, args ...string) ([]byte, error) {
		assert.Equal(t, "ps", name)
		assert.Equal(t, []string{"axo", "pid,comm,pcpu,pmem,stat,user"}, args)
		return []byte(output), nil
	}}

	records, err := b.ListProcesses()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int32(1), records[0].PID)
	assert.Equal(t, "firefox", records[1].Name)
}

func TestPSBackend_CommandFailure(t *testing.T) {
	b := &psBackend{run: func(name string, args ...string) ([]byte, error) {
		return nil, &CommandError{Command: "ps", Err: errors.New("exec: not found")}
	}}

	records, err := b.ListProcesses()
	assert.Nil(t, records)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
}

func TestSplitFieldsN(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c d e"}, splitFieldsN(" a  b\tc d e ", 3))
	assert.Equal(t, []string{"a", "b"}, splitFieldsN("a b", 4))
	assert.Empty(t, splitFieldsN("   ", 4))
}
