package models

// SystemSnapshot is a point-in-time view of host-wide statistics. Pointer
// fields are nil when the active backend cannot supply the value; that is
// different from a measured zero. GB and percent figures are rounded when
// the snapshot is built and never re-rounded afterwards.
type SystemSnapshot struct {
	OS           string `json:"os"`
	Platform     string `json:"platform"`
	Architecture string `json:"architecture"`

	PhysicalCores *int     `json:"physical_cores,omitempty"`
	LogicalCores  *int     `json:"logical_cores,omitempty"`
	CPUPercent    *float64 `json:"cpu_percent,omitempty"`

	MemoryTotalGB     *float64 `json:"memory_total_gb,omitempty"`
	MemoryUsedGB      *float64 `json:"memory_used_gb,omitempty"`
	MemoryAvailableGB *float64 `json:"memory_available_gb,omitempty"`
	MemoryPercent     *float64 `json:"memory_percent,omitempty"`

	SwapTotalGB *float64 `json:"swap_total_gb,omitempty"`
	SwapUsedGB  *float64 `json:"swap_used_gb,omitempty"`
	SwapPercent *float64 `json:"swap_percent,omitempty"`

	ProcessCount *int           `json:"process_count,omitempty"`
	StatusCounts map[string]int `json:"status_counts,omitempty"`

	LoadAverage []float64 `json:"load_average,omitempty"`
	BootTime    string    `json:"boot_time,omitempty"`

	// VMStatAvailable records a successful vm_stat run on the macOS
	// command tier, which probes the tool without parsing its counters.
	VMStatAvailable bool `json:"vm_stat_available,omitempty"`

	Containers *ContainerSummary `json:"containers,omitempty"`
	Services   *ServiceSummary   `json:"services,omitempty"`
}

// ContainerSummary describes the local Docker containers when the daemon
// socket is reachable
type ContainerSummary struct {
	Total      int             `json:"total"`
	Running    int             `json:"running"`
	Containers []ContainerInfo `json:"containers"`
}

// ContainerInfo represents a single container
type ContainerInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	State  string `json:"state"`
	Status string `json:"status"`
}

// ServiceSummary counts systemd service units by state (Linux only)
type ServiceSummary struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Failed int `json:"failed"`
}

// IntPtr returns a pointer to v, for optional snapshot fields.
func IntPtr(v int) *int { return &v }

// FloatPtr returns a pointer to v, for optional snapshot fields.
func FloatPtr(v float64) *float64 { return &v }
