// Package view renders the PS and DS reports as fixed-width text.
package view

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/psdsmon/psdsmon/internal/models"
	"github.com/psdsmon/psdsmon/internal/pager"
)

const (
	psWidth = 100
	dsWidth = 80
)

// ClearScreen wipes the terminal with ANSI escapes.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[2J\033[H")
}

// RenderProcessPage writes one page of the process table with its paging
// header, footer statistics and the navigation help line.
func RenderProcessPage(w io.Writer, p *pager.Pager) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", psWidth))
	fmt.Fprintf(w, "PS - PROCESS STATUS (Page %d/%d)\n", p.PageNumber(), p.PageCount())
	fmt.Fprintln(w, strings.Repeat("=", psWidth))

	writeProcessColumns(w)
	for _, rec := range p.Page() {
		writeProcessRow(w, rec)
	}

	start, end := p.Range()
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", psWidth))
	fmt.Fprintf(w, "Total Processes: %d | Showing %d-%d | CPU Intensive: %d | Memory Intensive: %d\n",
		p.Total(), start, end, p.CPUIntensive(), p.MemIntensive())
	fmt.Fprintln(w, "\nNavigation: [N]ext page | [P]revious page | [F]irst page | [L]ast page | [Q]uit to menu")
}

// RenderProcessTable writes the whole listing at once, for the one-shot
// ps command where paging makes no sense.
func RenderProcessTable(w io.Writer, p *pager.Pager) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", psWidth))
	fmt.Fprintln(w, "PS - PROCESS STATUS")
	fmt.Fprintln(w, strings.Repeat("=", psWidth))

	writeProcessColumns(w)
	for _, rec := range p.Page() {
		writeProcessRow(w, rec)
	}

	fmt.Fprintln(w, strings.Repeat("-", psWidth))
	fmt.Fprintf(w, "Total Processes: %d | CPU Intensive: %d | Memory Intensive: %d\n",
		p.Total(), p.CPUIntensive(), p.MemIntensive())
}

func writeProcessColumns(w io.Writer) {
	fmt.Fprintf(w, "%-8s %-25s %-8s %-8s %-12s %-15s %-8s\n",
		"PID", "NAME", "CPU%", "MEM%", "STATUS", "USER", "THREADS")
	fmt.Fprintln(w, strings.Repeat("-", psWidth))
}

func writeProcessRow(w io.Writer, rec models.ProcessRecord) {
	// fallback tiers cannot count threads; show nothing instead of zero
	threads := ""
	if rec.NumThreads > 0 {
		threads = strconv.Itoa(int(rec.NumThreads))
	}

	fmt.Fprintf(w, "%-8d %-25s %-8.1f %-8.1f %-12s %-15s %-8s\n",
		rec.PID,
		truncate(rec.Name, 24),
		rec.CPUPercent,
		rec.MemoryPercent,
		truncate(rec.Status, 11),
		truncate(rec.Username, 14),
		threads)
}

// RenderSystemReport writes the DS report. Sections whose values the
// active backend could not measure are omitted rather than shown as zero.
func RenderSystemReport(w io.Writer, snap models.SystemSnapshot) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", dsWidth))
	fmt.Fprintln(w, "DS - DETAILED SYSTEM STATUS")
	fmt.Fprintln(w, strings.Repeat("=", dsWidth))

	fmt.Fprintf(w, "System: %s\n", snap.OS)
	fmt.Fprintf(w, "Platform: %s\n", snap.Platform)
	fmt.Fprintf(w, "Architecture: %s\n", snap.Architecture)
	if snap.BootTime != "" {
		fmt.Fprintf(w, "Boot Time: %s\n", snap.BootTime)
	}

	fmt.Fprintln(w, "\nCPU Information:")
	if snap.PhysicalCores != nil {
		fmt.Fprintf(w, "  Physical Cores: %d\n", *snap.PhysicalCores)
	}
	if snap.LogicalCores != nil {
		fmt.Fprintf(w, "  Logical Cores: %d\n", *snap.LogicalCores)
	}
	if snap.CPUPercent != nil {
		fmt.Fprintf(w, "  CPU Usage: %g%%\n", *snap.CPUPercent)
	}

	fmt.Fprintln(w, "\nMemory Information:")
	if snap.MemoryTotalGB != nil {
		fmt.Fprintf(w, "  Total Memory: %g GB\n", *snap.MemoryTotalGB)
	}
	if snap.MemoryUsedGB != nil {
		fmt.Fprintf(w, "  Used Memory: %g GB\n", *snap.MemoryUsedGB)
	}
	if snap.MemoryAvailableGB != nil {
		fmt.Fprintf(w, "  Available Memory: %g GB\n", *snap.MemoryAvailableGB)
	}
	if snap.MemoryPercent != nil {
		fmt.Fprintf(w, "  Memory Usage: %g%%\n", *snap.MemoryPercent)
	}

	if snap.SwapTotalGB != nil && *snap.SwapTotalGB > 0 {
		fmt.Fprintln(w, "\nSwap Information:")
		fmt.Fprintf(w, "  Total Swap: %g GB\n", *snap.SwapTotalGB)
		if snap.SwapUsedGB != nil {
			fmt.Fprintf(w, "  Used Swap: %g GB\n", *snap.SwapUsedGB)
		}
		if snap.SwapPercent != nil {
			fmt.Fprintf(w, "  Swap Usage: %g%%\n", *snap.SwapPercent)
		}
	}

	if snap.ProcessCount != nil {
		fmt.Fprintln(w, "\nProcess Information:")
		fmt.Fprintf(w, "  Total Processes: %d\n", *snap.ProcessCount)
		if len(snap.StatusCounts) > 0 {
			fmt.Fprintln(w, "  Process Status Distribution:")
			for _, status := range sortedKeys(snap.StatusCounts) {
				fmt.Fprintf(w, "    %s: %d\n", status, snap.StatusCounts[status])
			}
		}
	}

	if len(snap.LoadAverage) == 3 {
		fmt.Fprintf(w, "\nLoad Average: %g %g %g\n",
			snap.LoadAverage[0], snap.LoadAverage[1], snap.LoadAverage[2])
	}

	if snap.Containers != nil {
		fmt.Fprintf(w, "\nContainers: %d total, %d running\n",
			snap.Containers.Total, snap.Containers.Running)
		for _, c := range snap.Containers.Containers {
			fmt.Fprintf(w, "  %-12s %-25s %-25s %s\n",
				c.ID, truncate(c.Name, 24), truncate(c.Image, 24), c.Status)
		}
	}

	if snap.Services != nil {
		fmt.Fprintf(w, "\nSystemd Services: %d total, %d active, %d failed\n",
			snap.Services.Total, snap.Services.Active, snap.Services.Failed)
	}
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
