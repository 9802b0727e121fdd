package pager

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psdsmon/psdsmon/internal/models"
)

func makeRecords(n int) []models.ProcessRecord {
	records := make([]models.ProcessRecord, n)
	for i := range records {
		records[i] = models.ProcessRecord{
			PID:  int32(i + 1),
			Name: fmt.Sprintf("proc-%d", i+1),
		}
	}
	return records
}

func TestPager_PageCount(t *testing.T) {
	p := New(makeRecords(120), 50)

	assert.Equal(t, 3, p.PageCount())
	assert.Equal(t, 120, p.Total())
	assert.Equal(t, 1, p.PageNumber())
	assert.Len(t, p.Page(), 50)
}

func TestPager_Navigation(t *testing.T) {
	p := New(makeRecords(120), 50)

	p.Advance(Next)
	assert.Equal(t, 2, p.PageNumber())

	p.Advance(Next)
	assert.Equal(t, 3, p.PageNumber())
	assert.Len(t, p.Page(), 20)

	// clamped at the last page
	p.Advance(Next)
	assert.Equal(t, 3, p.PageNumber())

	p.Advance(First)
	assert.Equal(t, 1, p.PageNumber())

	// clamped at the first page
	p.Advance(Previous)
	assert.Equal(t, 1, p.PageNumber())

	p.Advance(Last)
	assert.Equal(t, 3, p.PageNumber())

	p.Advance(Previous)
	assert.Equal(t, 2, p.PageNumber())

	// quit never moves the pager
	p.Advance(Quit)
	assert.Equal(t, 2, p.PageNumber())
}

func TestPager_Range(t *testing.T) {
	p := New(makeRecords(120), 50)

	start, end := p.Range()
	assert.Equal(t, 1, start)
	assert.Equal(t, 50, end)

	p.Advance(Last)
	start, end = p.Range()
	assert.Equal(t, 101, start)
	assert.Equal(t, 120, end)
}

func TestPager_PageContents(t *testing.T) {
	p := New(makeRecords(120), 50)
	p.Advance(Next)

	page := p.Page()
	require.Len(t, page, 50)
	assert.Equal(t, int32(51), page[0].PID)
	assert.Equal(t, int32(100), page[49].PID)
}

func TestPager_IntensiveCounts(t *testing.T) {
	records := []models.ProcessRecord{
		{PID: 1, CPUPercent: 55.0, MemoryPercent: 1.0},
		{PID: 2, CPUPercent: 10.0, MemoryPercent: 12.0},
		{PID: 3, CPUPercent: 10.1, MemoryPercent: 0.0},
		{PID: 4, CPUPercent: 0.0, MemoryPercent: 10.0},
	}

	// a page size of 1 shows the counts still span the whole sequence
	p := New(records, 1)
	p.Advance(Last)

	// strictly greater than the threshold counts
	assert.Equal(t, 2, p.CPUIntensive())
	assert.Equal(t, 1, p.MemIntensive())
}

func TestPager_DefaultPageSize(t *testing.T) {
	p := New(makeRecords(60), 0)
	assert.Equal(t, 2, p.PageCount())
	assert.Len(t, p.Page(), DefaultPageSize)

	p = New(makeRecords(60), -5)
	assert.Equal(t, 2, p.PageCount())
}

func TestPager_Empty(t *testing.T) {
	p := New(nil, 50)

	assert.Equal(t, 1, p.PageCount())
	assert.Equal(t, 0, p.Total())
	assert.Empty(t, p.Page())

	start, end := p.Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)

	p.Advance(Next)
	assert.Equal(t, 1, p.PageNumber())
}

func TestPager_ExactMultiple(t *testing.T) {
	p := New(makeRecords(100), 50)
	assert.Equal(t, 2, p.PageCount())

	p.Advance(Last)
	assert.Equal(t, 2, p.PageNumber())
	assert.Len(t, p.Page(), 50)
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"n": Next, "N": Next,
		"p": Previous,
		"f": First,
		"l": Last,
		"q": Quit, " Q ": Quit,
	}
	for input, want := range cases {
		got, ok := ParseDirection(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, ok := ParseDirection("x")
	assert.False(t, ok)
	_, ok = ParseDirection("")
	assert.False(t, ok)
}
