// Package sysdunits contributes a systemd service-state summary to the
// system snapshot on Linux hosts where the D-Bus system socket is
// present. Other platforms get a stub that reports unsupported.
package sysdunits

import "errors"

// ErrUnsupported is returned off Linux, where systemd does not exist.
var ErrUnsupported = errors.New("sysdunits: systemd requires linux")
