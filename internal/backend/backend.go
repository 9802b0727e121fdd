// Package backend selects and implements the process and system data
// sources. One host gets exactly one active variant: the gopsutil library
// when a live probe succeeds, otherwise an OS-specific fallback (tasklist
// on Windows, /proc on Linux, ps elsewhere). Every variant produces the
// same normalized records; values a tier cannot measure stay at their
// zero value or are left absent rather than failing the query.
package backend

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/psdsmon/psdsmon/internal/models"
)

// Kind identifies a backend variant.
type Kind string

const (
	KindGopsutil  Kind = "gopsutil"
	KindTasklist  Kind = "tasklist"
	KindProcFS    Kind = "procfs"
	KindPSCommand Kind = "ps"
)

// Backend is the capability surface shared by all variants. Both query
// operations are read-only and idempotent; calling them never mutates
// host state.
type Backend interface {
	// Kind reports which variant is answering.
	Kind() Kind
	// ListProcesses returns one normalized record per visible process.
	// Unreadable processes are skipped, never fatal.
	ListProcesses() ([]models.ProcessRecord, error)
	// SnapshotSystem returns host-wide statistics. Values the variant
	// cannot measure are left absent.
	SnapshotSystem() models.SystemSnapshot
}

// Capabilities is the result of probing the host, done once at startup
// and again on every explicit refresh.
type Capabilities struct {
	Kind            Kind
	HasDockerSocket bool
	HasDBus         bool
}

const (
	dockerSocket = "/var/run/docker.sock"
	dbusSocket   = "/run/dbus/system_bus_socket"
)

// Probe decides which backend variant serves this host and which optional
// integrations are reachable. It never fails: a broken introspection
// library only demotes the host to a fallback tier.
func Probe() Capabilities {
	caps := Capabilities{
		HasDockerSocket: fileExists(dockerSocket),
		HasDBus:         runtime.GOOS == "linux" && fileExists(dbusSocket),
	}

	if libraryAlive() {
		caps.Kind = KindGopsutil
		return caps
	}

	caps.Kind = fallbackKind(runtime.GOOS)
	return caps
}

// libraryAlive makes one cheap introspection call to prove the library
// works on this host. Errors and panics both count as unavailable.
func libraryAlive() (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	pids, err := process.Pids()
	return err == nil && len(pids) > 0
}

// fallbackKind picks the command or kernel-filesystem tier for a host
// where the introspection library does not answer.
func fallbackKind(goos string) Kind {
	switch goos {
	case "windows":
		return KindTasklist
	case "linux":
		if fileExists("/proc/stat") {
			return KindProcFS
		}
		return KindPSCommand
	default:
		return KindPSCommand
	}
}

// New returns the backend for the given kind.
func New(kind Kind) Backend {
	switch kind {
	case KindTasklist:
		return &tasklistBackend{run: runCommand}
	case KindProcFS:
		return &procfsBackend{root: "/proc"}
	case KindPSCommand:
		return &psBackend{run: runCommand}
	default:
		return &gopsutilBackend{}
	}
}

// ParseKind maps a configuration override to a Kind. The empty string and
// "auto" mean no override.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "auto":
		return "", nil
	case string(KindGopsutil), string(KindTasklist), string(KindProcFS), string(KindPSCommand):
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown backend %q", s)
	}
}

// platformBasics fills the fields every tier can report without help.
func platformBasics() models.SystemSnapshot {
	return models.SystemSnapshot{
		OS:           runtime.GOOS,
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
		Architecture: runtime.GOARCH,
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
