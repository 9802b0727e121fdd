//go:build linux

package sysdunits

import (
	"context"
	"fmt"
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/psdsmon/psdsmon/internal/models"
)

// Summarizer counts systemd service units over the D-Bus API.
type Summarizer struct{}

// NewSummarizer returns a summarizer. The D-Bus connection is opened per
// query so a restarted bus never strands a stale handle.
func NewSummarizer() (*Summarizer, error) {
	return &Summarizer{}, nil
}

// Summary counts .service units by active state.
func (s *Summarizer) Summary(ctx context.Context) (*models.ServiceSummary, error) {
	conn, err := dbus.NewWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to systemd: %w", err)
	}
	defer conn.Close()

	units, err := conn.ListUnitsContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	summary := &models.ServiceSummary{}
	for _, unit := range units {
		if !strings.HasSuffix(unit.Name, ".service") {
			continue
		}
		summary.Total++
		switch unit.ActiveState {
		case "active":
			summary.Active++
		case "failed":
			summary.Failed++
		}
	}

	return summary, nil
}

// Enrich attaches the service summary to a snapshot. A bus that does not
// answer leaves the snapshot untouched.
func (s *Summarizer) Enrich(snap *models.SystemSnapshot) {
	summary, err := s.Summary(context.Background())
	if err != nil {
		return
	}
	snap.Services = summary
}
