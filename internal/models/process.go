package models

import "time"

// ProcessRecord represents a single running process in the normalized schema.
// Every backend produces the same shape; fields a backend cannot supply keep
// their zero value ("unknown" for Name, Status and Username after the
// collector's defaulting pass, numeric zero otherwise).
type ProcessRecord struct {
	PID           int32     `json:"pid"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	Status        string    `json:"status"`
	CPUPercent    float64   `json:"cpu_percent"`
	MemoryPercent float64   `json:"memory_percent"`
	ResidentBytes uint64    `json:"resident_bytes"`
	VirtualBytes  uint64    `json:"virtual_bytes"`
	NumThreads    int32     `json:"num_threads"`
	Nice          int32     `json:"nice"`
	CreateTime    time.Time `json:"create_time"`
	Cmdline       string    `json:"cmdline"`
}

// ProcessList contains one collection of processes
type ProcessList struct {
	Processes []ProcessRecord `json:"processes"`
	Total     int             `json:"total"`
}
