package backend

import (
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/psdsmon/psdsmon/internal/models"
	"github.com/psdsmon/psdsmon/internal/units"
)

// cpuSampleInterval is the blocking window for the system-wide CPU
// percentage, the only built-in wait in a snapshot.
const cpuSampleInterval = 200 * time.Millisecond

// gopsutilBackend is the rich tier, active whenever the introspection
// library answers on this host.
type gopsutilBackend struct{}

func (b *gopsutilBackend) Kind() Kind { return KindGopsutil }

// ListProcesses walks every visible process. Entries that vanish or deny
// access mid-read are skipped; individual field failures degrade to zero
// values instead of dropping the entry.
func (b *gopsutilBackend) ListProcesses() ([]models.ProcessRecord, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	var records []models.ProcessRecord
	for _, p := range procs {
		rec, err := recordFor(p)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

func recordFor(p *process.Process) (models.ProcessRecord, error) {
	// A process that cannot report its name is gone or off limits.
	name, err := p.Name()
	if err != nil {
		return models.ProcessRecord{}, err
	}

	username, _ := p.Username()
	status, _ := p.Status()
	cpuPercent, _ := p.CPUPercent()
	memPercent, _ := p.MemoryPercent()
	memInfo, _ := p.MemoryInfo()
	cmdline, _ := p.Cmdline()
	createTime, _ := p.CreateTime()
	numThreads, _ := p.NumThreads()
	nice, _ := p.Nice()

	var rss, vms uint64
	if memInfo != nil {
		rss = memInfo.RSS
		vms = memInfo.VMS
	}

	var statusStr string
	if len(status) > 0 {
		statusStr = status[0]
	}

	return models.ProcessRecord{
		PID:           p.Pid,
		Name:          name,
		Username:      username,
		Status:        statusStr,
		CPUPercent:    units.Percent(cpuPercent),
		MemoryPercent: units.Percent(float64(memPercent)),
		ResidentBytes: rss,
		VirtualBytes:  vms,
		NumThreads:    numThreads,
		Nice:          nice,
		CreateTime:    time.UnixMilli(createTime),
		Cmdline:       cmdline,
	}, nil
}

// SnapshotSystem gathers host-wide statistics. Every sub-read stands
// alone: a failing one leaves its fields absent and the rest of the
// snapshot intact.
func (b *gopsutilBackend) SnapshotSystem() models.SystemSnapshot {
	snap := platformBasics()

	if info, err := host.Info(); err == nil {
		snap.OS = info.OS
		snap.Platform = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
		snap.Architecture = info.KernelArch
	}

	if physical, err := cpu.Counts(false); err == nil {
		snap.PhysicalCores = models.IntPtr(physical)
	}
	if logical, err := cpu.Counts(true); err == nil {
		snap.LogicalCores = models.IntPtr(logical)
	}
	if percents, err := cpu.Percent(cpuSampleInterval, false); err == nil && len(percents) > 0 {
		snap.CPUPercent = models.FloatPtr(units.Percent(percents[0]))
	}

	if vmem, err := mem.VirtualMemory(); err == nil {
		snap.MemoryTotalGB = models.FloatPtr(units.BytesToGB(vmem.Total))
		snap.MemoryUsedGB = models.FloatPtr(units.BytesToGB(vmem.Used))
		snap.MemoryAvailableGB = models.FloatPtr(units.BytesToGB(vmem.Available))
		snap.MemoryPercent = models.FloatPtr(units.Percent(vmem.UsedPercent))
	}

	if swap, err := mem.SwapMemory(); err == nil {
		snap.SwapTotalGB = models.FloatPtr(units.BytesToGB(swap.Total))
		snap.SwapUsedGB = models.FloatPtr(units.BytesToGB(swap.Used))
		snap.SwapPercent = models.FloatPtr(units.Percent(swap.UsedPercent))
	}

	if procs, err := process.Processes(); err == nil {
		counts := make(map[string]int)
		for _, p := range procs {
			status, err := p.Status()
			if err != nil || len(status) == 0 {
				continue
			}
			counts[status[0]]++
		}
		snap.ProcessCount = models.IntPtr(len(procs))
		if len(counts) > 0 {
			snap.StatusCounts = counts
		}
	}

	if bootTime, err := host.BootTime(); err == nil {
		snap.BootTime = time.Unix(int64(bootTime), 0).Format("2006-01-02 15:04:05")
	}

	return snap
}
